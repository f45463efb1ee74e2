package server

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/run-bigpig/guba-mcp/internal/services/guba"
	"github.com/run-bigpig/guba-mcp/internal/services/sentiment"
)

// GetGubaCommentsInput 抓取股吧评论输入参数
type GetGubaCommentsInput struct {
	StockCode string `json:"stock_code" jsonschema:"股票代码，如 sh600739 或 sz301011"`
}

// GetGubaCommentsOutput 抓取股吧评论输出
type GetGubaCommentsOutput struct {
	Data string `json:"data" jsonschema:"评论标题列表，换行符分隔"`
}

// AnalyzeSentimentInput 情感分析输入参数
type AnalyzeSentimentInput struct {
	Comments any `json:"comments" jsonschema:"待分析内容：换行分隔的评论字符串，或携带 comments 字段的对象"`
}

// AnalyzeSentimentOutput 情感分析输出
type AnalyzeSentimentOutput struct {
	Data string `json:"data" jsonschema:"聚合结论：评论条数、平均情感分与多空倾向"`
}

// handleGetGubaComments 抓取股吧评论工具
func (s *Server) handleGetGubaComments(ctx context.Context, _ *mcp.CallToolRequest, input GetGubaCommentsInput) (*mcp.CallToolResult, GetGubaCommentsOutput, error) {
	data := s.runTool(ctx, "get_guba_comments", fmt.Sprintf("stock_code=%s", input.StockCode), func(ctx context.Context) (string, error) {
		titles, err := s.scraper.Scrape(ctx, input.StockCode)

		// 预期条件（坏代码、空结果）在本地转成提示语，不作为 error 上抛
		var ife *guba.InvalidFormatError
		if errors.As(err, &ife) {
			return ife.Error(), nil
		}
		if err != nil {
			return "", err
		}
		if len(titles) == 0 {
			return fmt.Sprintf("未找到股票 %s 的任何评论。", input.StockCode), nil
		}
		return strings.Join(titles, "\n"), nil
	})
	return nil, GetGubaCommentsOutput{Data: data}, nil
}

// handleAnalyzeSentiment 情感聚合工具
func (s *Server) handleAnalyzeSentiment(ctx context.Context, _ *mcp.CallToolRequest, input AnalyzeSentimentInput) (*mcp.CallToolResult, AnalyzeSentimentOutput, error) {
	data := s.runTool(ctx, "analyze_sentiment", describeInput(input.Comments), func(ctx context.Context) (string, error) {
		text, err := sentiment.ResolveInput(input.Comments)
		if err != nil {
			return err.Error(), nil
		}

		verdict, err := s.aggregator.Analyze(ctx, text)
		switch {
		case errors.Is(err, sentiment.ErrNothingToAnalyze),
			errors.Is(err, sentiment.ErrNoValidContent):
			return err.Error(), nil
		case err != nil:
			return "", err
		}
		return verdict.Summary(), nil
	})
	return nil, AnalyzeSentimentOutput{Data: data}, nil
}

// describeInput 概述入参用于日志，避免整段评论刷屏
func describeInput(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("comments=string(%d字符)", len([]rune(s)))
	}
	return fmt.Sprintf("comments=%T", v)
}
