package sentiment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/run-bigpig/guba-mcp/internal/logger"
)

// Label 三档情感标签
type Label string

const (
	LabelNegative Label = "NEGATIVE"
	LabelNeutral  Label = "NEUTRAL"
	LabelPositive Label = "POSITIVE"
)

// 固定阈值，0.4 与 0.6 边界值归 NEUTRAL
const (
	positiveThreshold = 0.6
	negativeThreshold = 0.4
)

var (
	// ErrNothingToAnalyze 切分后没有任何非空评论
	ErrNothingToAnalyze = errors.New("没有可分析的内容")
	// ErrNoValidContent 所有评论都打分失败
	ErrNoValidContent = errors.New("没有可成功分析的内容")
)

// Verdict 聚合结果，每次调用重新计算，构造后不再修改
type Verdict struct {
	AverageScore    float64 `json:"average_score"`
	Label           Label   `json:"label"`
	ConsideredCount int     `json:"considered_count"`
}

// Summary 格式化摘要：纳入条数、平均分（4 位小数）与标签
func (v Verdict) Summary() string {
	return fmt.Sprintf("共分析 %d 条评论，平均情感分 %.4f，整体倾向：%s",
		v.ConsideredCount, v.AverageScore, v.Label)
}

// Aggregator 情感聚合器：把换行分隔的评论文本归约为单一结论
type Aggregator struct {
	scorer Scorer
	log    *logger.Logger
}

// NewAggregator 创建聚合器
func NewAggregator(scorer Scorer) *Aggregator {
	return &Aggregator{
		scorer: scorer,
		log:    logger.New("sentiment:aggregator"),
	}
}

// Analyze 按换行切分评论并逐条打分后取算术平均。
// 空白行在打分前剔除；单条打分失败记日志后剔除，不中断批次；
// 零条输入返回 ErrNothingToAnalyze（不触碰打分器），
// 全部失败返回 ErrNoValidContent。
func (a *Aggregator) Analyze(ctx context.Context, text string) (Verdict, error) {
	comments := splitComments(text)
	if len(comments) == 0 {
		return Verdict{}, ErrNothingToAnalyze
	}

	var sum float64
	var considered int
	for _, c := range comments {
		score, err := a.scorer.Score(ctx, c)
		if err != nil {
			a.log.Warn("评论打分失败，已跳过: %v", err)
			continue
		}
		sum += score
		considered++
	}
	if considered == 0 {
		return Verdict{}, ErrNoValidContent
	}

	avg := sum / float64(considered)
	return Verdict{
		AverageScore:    avg,
		Label:           labelFor(avg),
		ConsideredCount: considered,
	}, nil
}

// labelFor 固定阈值映射
func labelFor(avg float64) Label {
	switch {
	case avg > positiveThreshold:
		return LabelPositive
	case avg < negativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// splitComments 按换行切分并剔除空白项
func splitComments(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}
	return out
}
