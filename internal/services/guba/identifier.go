package guba

import (
	"fmt"
	"regexp"
	"strings"
)

// Exchange 交易所标识
type Exchange string

const (
	ExchangeSH Exchange = "sh" // 上海证券交易所
	ExchangeSZ Exchange = "sz" // 深圳证券交易所
)

var codePattern = regexp.MustCompile(`^(sh|sz)(\d{6})$`)

// StockIdentifier 规范化后的股票标识，构造后不可变
type StockIdentifier struct {
	Exchange Exchange
	Code     string // 6 位数字代码
}

// String 返回规范形式，如 sh600739
func (id StockIdentifier) String() string {
	return string(id.Exchange) + id.Code
}

// InvalidFormatError 股票代码格式错误，携带原始输入用于回显
type InvalidFormatError struct {
	Raw string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("股票代码格式错误：'%s'。请使用标准格式，如：sh600739 或 sz301011", e.Raw)
}

// Normalize 校验并规范化股票代码。
// 输入先 trim 再转小写，必须匹配 sh/sz 前缀加 6 位数字。无副作用。
func Normalize(raw string) (StockIdentifier, error) {
	code := strings.ToLower(strings.TrimSpace(raw))
	m := codePattern.FindStringSubmatch(code)
	if m == nil {
		return StockIdentifier{}, &InvalidFormatError{Raw: raw}
	}
	return StockIdentifier{Exchange: Exchange(m[1]), Code: m[2]}, nil
}
