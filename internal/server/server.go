// Package server 是 MCP 服务边界：注册工具与 prompt，
// 挂载 SSE 传输与健康检查，把核心层的类型化错误翻译成用户提示。
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/run-bigpig/guba-mcp/internal/logger"
	"github.com/run-bigpig/guba-mcp/internal/services/guba"
	"github.com/run-bigpig/guba-mcp/internal/services/sentiment"
)

const usageGuide = `欢迎使用股吧评论抓取工具！

股票代码格式说明：
- 上海证券交易所：sh + 6位数字，如 sh600739
- 深圳证券交易所：sz + 6位数字，如 sz301011

示例查询：
> get_guba_comments("sh600739")  # 新华百货
> get_guba_comments("sz000002")  # 万科A

抓到评论后可继续调用：
> analyze_sentiment(评论文本)  # 得到平均情感分与多空倾向`

// Server MCP 服务边界
type Server struct {
	scraper    *guba.Service
	aggregator *sentiment.Aggregator
	log        *logger.Logger
}

// New 创建服务边界
func New(scraper *guba.Service, aggregator *sentiment.Aggregator) *Server {
	return &Server{
		scraper:    scraper,
		aggregator: aggregator,
		log:        logger.New("server"),
	}
}

// Handler 组装 HTTP 路由：/ 健康检查，/sse 下为 MCP over SSE
func (s *Server) Handler() http.Handler {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "guba-comment-scraper",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "get_guba_comments",
		Description: "抓取指定股票前5页股吧评论标题，以换行符分隔返回",
	}, s.handleGetGubaComments)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "analyze_sentiment",
		Description: "对换行分隔的评论文本做情感聚合，返回平均情感分与多空倾向",
	}, s.handleAnalyzeSentiment)

	mcpServer.AddPrompt(&mcp.Prompt{
		Name:        "usage_guide",
		Description: "提供使用指南",
	}, s.handleUsageGuide)

	sse := mcp.NewSSEHandler(func(*http.Request) *mcp.Server { return mcpServer }, nil)

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleHealth)
	mux.Handle("/sse", sse)
	mux.Handle("/sse/", sse)
	return mux
}

// handleHealth 健康检查端点
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}

// handleUsageGuide 使用指南 prompt
func (s *Server) handleUsageGuide(_ context.Context, _ *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{Role: "user", Content: &mcp.TextContent{Text: usageGuide}},
		},
	}, nil
}
