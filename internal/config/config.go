package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config 服务配置，进程启动时从环境变量装载一次，之后只读。
// 抓取参数（基址、页数、超时）按值注入编排器，不走全局状态。
type Config struct {
	Port        int           `env:"PORT" envDefault:"8080"`
	GubaBaseURL string        `env:"GUBA_BASE_URL" envDefault:"https://guba.eastmoney.com"`
	GubaPages   int           `env:"GUBA_PAGES" envDefault:"5"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`

	OpenAIAPIKey   string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL  string `env:"OPENAI_BASE_URL"`
	SentimentModel string `env:"SENTIMENT_MODEL" envDefault:"gpt-4o-mini"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load 解析环境变量并做基本校验
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("解析环境变量失败: %w", err)
	}
	if cfg.GubaPages <= 0 {
		return Config{}, fmt.Errorf("GUBA_PAGES 必须为正数，当前值: %d", cfg.GubaPages)
	}
	if cfg.HTTPTimeout <= 0 {
		return Config{}, fmt.Errorf("HTTP_TIMEOUT 必须为正数，当前值: %s", cfg.HTTPTimeout)
	}
	return cfg, nil
}
