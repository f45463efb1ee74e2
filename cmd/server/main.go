package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/run-bigpig/guba-mcp/internal/config"
	"github.com/run-bigpig/guba-mcp/internal/logger"
	"github.com/run-bigpig/guba-mcp/internal/server"
	"github.com/run-bigpig/guba-mcp/internal/services/guba"
	"github.com/run-bigpig/guba-mcp/internal/services/sentiment"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}
	logger.SetGlobalLevel(logger.ParseLevel(cfg.LogLevel))
	log := logger.New("main")

	scraper := guba.NewService(guba.Options{
		BaseURL: cfg.GubaBaseURL,
		Pages:   cfg.GubaPages,
		Timeout: cfg.HTTPTimeout,
	})

	var scorer sentiment.Scorer
	if cfg.OpenAIAPIKey != "" {
		scorer = sentiment.NewOpenAIScorer(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.SentimentModel)
		log.Info("情感打分使用外部模型: %s", cfg.SentimentModel)
	} else {
		scorer = sentiment.NewLexiconScorer()
		log.Info("未配置 OPENAI_API_KEY，情感打分使用内置词表")
	}
	aggregator := sentiment.NewAggregator(scorer)

	srv := server.New(scraper, aggregator)

	log.Info("启动服务器，监听端口: %d", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), srv.Handler()); err != nil {
		log.Error("服务器退出: %v", err)
		os.Exit(1)
	}
}
