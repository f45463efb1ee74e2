package guba

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/run-bigpig/guba-mcp/internal/logger"
)

// 固定浏览器请求头，股吧对裸 UA 的请求会返回异常页面
var defaultHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/141.0.0.0 Safari/537.36 Edg/141.0.0.0",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.7",
	"Accept-Language": "zh-CN,zh;q=0.9,en;q=0.8",
	"Connection":      "keep-alive",
	"Referer":         "https://guba.eastmoney.com/",
}

// FetchErrorKind 传输层错误分类
type FetchErrorKind int

const (
	FetchTimeout FetchErrorKind = iota // 连接或读取超时
	FetchNetwork                       // DNS、连接重置等其他网络错误
)

// FetchError 抓取页面时的传输层错误
type FetchError struct {
	Kind FetchErrorKind
	URL  string
	Err  error
}

func (e *FetchError) Error() string {
	if e.Kind == FetchTimeout {
		return fmt.Sprintf("抓取 %s 超时: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("抓取 %s 网络错误: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// PageFetcher 按页抓取股吧列表页。一次完整抓取内复用同一 client，
// 吃到 keep-alive 的连接复用；不同抓取之间互不共享。
type PageFetcher struct {
	client  *http.Client
	baseURL string
	log     *logger.Logger
}

// NewPageFetcher 创建页面抓取器
func NewPageFetcher(baseURL string, timeout time.Duration) *PageFetcher {
	return &PageFetcher{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		log:     logger.New("guba:fetcher"),
	}
}

// FetchPage 抓取一页原始字节。非 200 状态不算 error，原样返回状态码
// 交给编排层软停；传输层失败分类为 Timeout / Network 后返回。
// 本层不做重试，重试与停止策略归编排层。
func (f *PageFetcher) FetchPage(ctx context.Context, id StockIdentifier, page int) ([]byte, int, error) {
	url := fmt.Sprintf("%s/list,%s_%d.html", f.baseURL, id.Code, page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, &FetchError{Kind: FetchNetwork, URL: url, Err: err}
	}
	for k, v := range defaultHeaders {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, 0, classifyFetchError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.log.Warn("抓取 %s 失败，状态码: %d", url, resp.StatusCode)
		return nil, resp.StatusCode, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, classifyFetchError(url, err)
	}
	return body, resp.StatusCode, nil
}

// classifyFetchError 将传输层错误分类为超时/网络错误
func classifyFetchError(url string, err error) *FetchError {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &FetchError{Kind: FetchTimeout, URL: url, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &FetchError{Kind: FetchTimeout, URL: url, Err: err}
	}
	return &FetchError{Kind: FetchNetwork, URL: url, Err: err}
}
