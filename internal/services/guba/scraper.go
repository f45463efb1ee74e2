package guba

import (
	"context"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/run-bigpig/guba-mcp/internal/logger"
)

// Options 抓取配置，构造时注入，运行期不可变
type Options struct {
	BaseURL  string        // 股吧基址
	Pages    int           // 页预算
	Timeout  time.Duration // 单次请求超时
	MinDelay time.Duration // 页间礼貌延迟下限
	MaxDelay time.Duration // 页间礼貌延迟上限
}

// DefaultOptions 生产缺省配置：5 页预算，10 秒超时，0.3~1.0 秒礼貌延迟
func DefaultOptions() Options {
	return Options{
		BaseURL:  "https://guba.eastmoney.com",
		Pages:    5,
		Timeout:  10 * time.Second,
		MinDelay: 300 * time.Millisecond,
		MaxDelay: time.Second,
	}
}

// Service 股吧评论抓取服务
type Service struct {
	opts Options
	log  *logger.Logger
}

// NewService 创建抓取服务，零值字段用缺省配置补齐
func NewService(opts Options) *Service {
	def := DefaultOptions()
	if opts.BaseURL == "" {
		opts.BaseURL = def.BaseURL
	}
	if opts.Pages <= 0 {
		opts.Pages = def.Pages
	}
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}
	if opts.MinDelay <= 0 {
		opts.MinDelay = def.MinDelay
	}
	if opts.MaxDelay < opts.MinDelay {
		opts.MaxDelay = def.MaxDelay
	}
	return &Service{
		opts: opts,
		log:  logger.New("guba:scraper"),
	}
}

// Scrape 抓取指定股票最多 N 页评论标题，保持页序+行序。
// 返回语义：
//   - 代码非法：*InvalidFormatError，未发生任何网络访问
//   - 传输层失败：*FetchError（Timeout/Network），由边界层翻译成提示语
//   - 非 200 或空页：软停，返回已累积的标题（可能为空切片）
//
// 每次调用持有独立的 client 与累积状态，并发调用之间无共享。
func (s *Service) Scrape(ctx context.Context, rawCode string) ([]string, error) {
	id, err := Normalize(rawCode)
	if err != nil {
		return nil, err
	}

	fetcher := NewPageFetcher(s.opts.BaseURL, s.opts.Timeout)
	s.log.Info("开始为 %s 抓取评论...", id)

	var titles []string
	page := 1
	for crawled := 0; crawled < s.opts.Pages; {
		raw, status, err := fetcher.FetchPage(ctx, id, page)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			// 目标页不可达按"没有更多内容"处理，返回已累积部分
			break
		}

		pageTitles := ExtractTitles(raw)
		if len(pageTitles) == 0 {
			s.log.Info("%s 第 %d 页没有找到帖子", id, page)
			break
		}

		titles = append(titles, pageTitles...)
		s.log.Info("%s 第 %d 页抓取 %d 条", id, page, len(pageTitles))
		crawled++
		page++

		// 末页之后不再延迟
		if crawled < s.opts.Pages {
			s.politePause(ctx)
		}
	}

	s.log.Info("为 %s 共抓取 %d 条评论", id, len(titles))
	return titles, nil
}

// politePause 页间随机礼貌延迟，上下限取自配置；ctx 取消时立即返回
func (s *Service) politePause(ctx context.Context) {
	delay := s.opts.MinDelay
	if span := s.opts.MaxDelay - s.opts.MinDelay; span > 0 {
		delay += time.Duration(rand.Int64N(int64(span)))
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
