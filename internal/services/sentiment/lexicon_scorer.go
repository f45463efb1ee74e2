package sentiment

import (
	"context"
	"strings"
)

// 多空词表取自常见股民用语，求覆盖不求精确。
// "涨停"同时命中"涨"属于刻意为之：强词叠加权重。
var positiveWords = []string{
	"涨", "涨停", "利好", "牛", "加仓", "买入", "突破", "反弹",
	"红", "赚", "起飞", "主升", "看好", "满仓", "抄底", "翻倍",
}

var negativeWords = []string{
	"跌", "跌停", "利空", "熊", "割肉", "卖出", "破位", "跳水",
	"绿", "亏", "套牢", "垃圾", "完蛋", "清仓", "崩", "腰斩",
}

// LexiconScorer 内置词表的确定性打分器，
// 未配置外部模型时的缺省实现，也是测试的确定性基线。
type LexiconScorer struct{}

// NewLexiconScorer 创建词表打分器
func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{}
}

// Score 按多空词命中数打分：无命中为中性 0.5，
// 全多头为 1，全空头为 0，混合按占比线性插值。
func (*LexiconScorer) Score(_ context.Context, text string) (float64, error) {
	var pos, neg int
	for _, w := range positiveWords {
		pos += strings.Count(text, w)
	}
	for _, w := range negativeWords {
		neg += strings.Count(text, w)
	}
	if pos+neg == 0 {
		return 0.5, nil
	}
	return 0.5 + 0.5*float64(pos-neg)/float64(pos+neg), nil
}
