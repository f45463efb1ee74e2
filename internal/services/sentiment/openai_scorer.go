package sentiment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sashabaranov/go-openai"
)

var ErrNoChoicesInResponse = errors.New("no choices in OpenAI response")

const scoreSystemPrompt = `你是一个金融文本情感分析器。对给定的股民评论，输出一个 0 到 1 之间的小数表示情感极性：0 为极度负面，1 为极度正面，0.5 为中性。只输出数字本身，不要输出任何其他内容。`

// OpenAIScorer 基于 OpenAI 兼容接口的情感打分器。
// 核心聚合逻辑不感知模型细节，本实现由 cmd 装配层在配置了 API key 时选用。
type OpenAIScorer struct {
	client *openai.Client
	model  string
}

// NewOpenAIScorer 创建模型打分器，baseURL 为空时使用官方端点
func NewOpenAIScorer(apiKey, baseURL, model string) *OpenAIScorer {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIScorer{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Score 调用模型对单条评论打分
func (s *OpenAIScorer) Score(ctx context.Context, text string) (float64, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: scoreSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return 0, err
	}
	if len(resp.Choices) == 0 {
		return 0, ErrNoChoicesInResponse
	}
	return parseScore(resp.Choices[0].Message.Content)
}

// parseScore 解析模型输出的小数并收敛到 [0,1]
func parseScore(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("无法解析模型输出 %q: %w", raw, err)
	}
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v, nil
}
