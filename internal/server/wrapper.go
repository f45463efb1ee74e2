package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/run-bigpig/guba-mcp/internal/services/guba"
)

// runTool 统一的工具执行包装：为每次调用生成 invocation id 并记录
// 入参与结果，把核心层允许上抛的传输错误翻译成用户可读的提示语。
// 任何情况下不向 MCP 层返回 error，调用方看到的永远是字符串。
func (s *Server) runTool(ctx context.Context, name, args string, fn func(ctx context.Context) (string, error)) string {
	id := uuid.NewString()[:8]
	s.log.Info("[%s] 调用工具 %s, 参数: %s", id, name, args)

	result, err := fn(ctx)
	if err != nil {
		s.log.Error("[%s] 工具 %s 失败: %v", id, name, err)
		return translateError(err)
	}

	s.log.Info("[%s] 工具 %s 调用完成", id, name)
	return result
}

// translateError 把类型化的传输错误映射为面向用户的提示语
func translateError(err error) string {
	var fe *guba.FetchError
	if errors.As(err, &fe) {
		if fe.Kind == guba.FetchTimeout {
			return "抓取超时：无法连接到股吧服务器"
		}
		return fmt.Sprintf("抓取失败：网络错误 %v", fe.Err)
	}
	return fmt.Sprintf("抓取失败: %v", err)
}
