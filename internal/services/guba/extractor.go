package guba

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

// ExtractTitles 从一页原始 HTML 中按行序提取评论标题。
// 编码从字节流自动探测，不信任 HTTP 头里声明的 charset（股吧的声明不可靠）：
// 整体是合法 UTF-8 就按 UTF-8 读，否则从 BOM/meta 探测（GBK 老页面走这条路）。
// 没有 title 链接的行静默跳过；无匹配行返回空列表，这是"没有更多内容"的
// 正常信号而不是错误。
func ExtractTitles(raw []byte) []string {
	var reader io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		if decoded, err := charset.NewReader(reader, ""); err == nil {
			reader = decoded
		} else {
			// 探测失败按原始字节解析，宁可出乱码也不丢整页
			reader = bytes.NewReader(raw)
		}
	}

	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil
	}

	var titles []string
	doc.Find("tr.listitem").Each(func(_ int, row *goquery.Selection) {
		link := row.Find("div.title a").First()
		if link.Length() == 0 {
			return
		}
		title := strings.TrimSpace(link.Text())
		if title != "" {
			titles = append(titles, title)
		}
	})
	return titles
}
