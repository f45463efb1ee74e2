package guba

import (
	"fmt"
	"strings"
	"testing"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// listPageHTML 构造一页股吧列表的 HTML，rows 中空串表示缺少标题的行
func listPageHTML(rows ...string) string {
	var b strings.Builder
	b.WriteString(`<html><head><meta charset="utf-8"></head><body><table>`)
	for _, title := range rows {
		if title == "" {
			b.WriteString(`<tr class="listitem"><td><div class="other">无标题行</div></td></tr>`)
			continue
		}
		fmt.Fprintf(&b, `<tr class="listitem"><td><div class="title"><a href="/news,1.html"> %s </a></div></td></tr>`, title)
	}
	b.WriteString(`</table></body></html>`)
	return b.String()
}

func TestExtractTitles(t *testing.T) {
	raw := []byte(listPageHTML("今天要涨停了", "", "为什么又绿了", "  "))

	titles := ExtractTitles(raw)
	if len(titles) != 2 {
		t.Fatalf("提取到 %d 条标题, 期望 2: %v", len(titles), titles)
	}
	if titles[0] != "今天要涨停了" || titles[1] != "为什么又绿了" {
		t.Errorf("标题内容或顺序不对: %v", titles)
	}
}

func TestExtractTitlesEmptyPage(t *testing.T) {
	// 无匹配行返回空列表，这是"没有更多内容"的正常信号
	titles := ExtractTitles([]byte(`<html><body><table><tr class="other"><td>x</td></tr></table></body></html>`))
	if len(titles) != 0 {
		t.Errorf("空页应返回空列表, 实际: %v", titles)
	}
}

func TestExtractTitlesMalformed(t *testing.T) {
	// 残缺标签不应让整页解析失败
	raw := []byte(`<table><tr class="listitem"><td><div class="title"><a>还能涨吗<tr class="listitem"><td><div class="title"><a href="#">出货了</a></div></td></tr>`)

	titles := ExtractTitles(raw)
	if len(titles) == 0 {
		t.Fatal("容错解析不应丢掉所有行")
	}
	found := false
	for _, title := range titles {
		if strings.Contains(title, "出货了") {
			found = true
		}
	}
	if !found {
		t.Errorf("后续行不应被前面的残缺行拖垮: %v", titles)
	}
}

func TestExtractTitlesGB18030(t *testing.T) {
	// 股吧历史上用 gb2312 声明 + GBK 实际编码，必须从字节流探测而不是信 HTTP 头
	html := `<html><head><meta http-equiv="Content-Type" content="text/html; charset=gb2312"></head>` +
		`<body><table><tr class="listitem"><td><div class="title"><a href="#">主力资金大幅流入</a></div></td></tr></table></body></html>`

	raw, err := simplifiedchinese.GB18030.NewEncoder().Bytes([]byte(html))
	if err != nil {
		t.Fatalf("构造 GB18030 测试数据失败: %v", err)
	}

	titles := ExtractTitles(raw)
	if len(titles) != 1 {
		t.Fatalf("提取到 %d 条标题, 期望 1: %v", len(titles), titles)
	}
	if titles[0] != "主力资金大幅流入" {
		t.Errorf("GB18030 解码后的标题 = %q", titles[0])
	}
}
