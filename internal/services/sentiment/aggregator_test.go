package sentiment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

// mockScorer 按预设分数表打分，记录调用次数；表里没有的评论返回错误
type mockScorer struct {
	scores map[string]float64
	calls  int
}

func (m *mockScorer) Score(_ context.Context, text string) (float64, error) {
	m.calls++
	score, ok := m.scores[text]
	if !ok {
		return 0, fmt.Errorf("打分失败: %q", text)
	}
	return score, nil
}

func TestAnalyzeNothingToAnalyze(t *testing.T) {
	for _, input := range []string{"", "\n\n", "  \n\t\n  "} {
		m := &mockScorer{}
		_, err := NewAggregator(m).Analyze(context.Background(), input)
		if !errors.Is(err, ErrNothingToAnalyze) {
			t.Errorf("Analyze(%q) 错误 = %v, 期望 ErrNothingToAnalyze", input, err)
		}
		if m.calls != 0 {
			t.Errorf("Analyze(%q) 不应触碰打分器, 调用了 %d 次", input, m.calls)
		}
	}
}

func TestAnalyzeAverage(t *testing.T) {
	m := &mockScorer{scores: map[string]float64{
		"很好": 0.9,
		"很差": 0.1,
		"一般": 0.5,
	}}

	verdict, err := NewAggregator(m).Analyze(context.Background(), "很好\n很差\n一般")
	if err != nil {
		t.Fatalf("Analyze 失败: %v", err)
	}
	if verdict.ConsideredCount != 3 {
		t.Errorf("ConsideredCount = %d, 期望 3", verdict.ConsideredCount)
	}
	if math.Abs(verdict.AverageScore-0.5) > 1e-9 {
		t.Errorf("AverageScore = %v, 期望 0.5", verdict.AverageScore)
	}
	if verdict.Label != LabelNeutral {
		t.Errorf("Label = %s, 期望 NEUTRAL", verdict.Label)
	}
}

func TestAnalyzePartialFailure(t *testing.T) {
	// 第二条打分失败：剔除后用剩余两条取均值
	m := &mockScorer{scores: map[string]float64{
		"利好来了": 0.8,
		"继续持有": 0.6,
	}}

	verdict, err := NewAggregator(m).Analyze(context.Background(), "利好来了\n没见过的评论\n继续持有")
	if err != nil {
		t.Fatalf("单条失败不应中断批次: %v", err)
	}
	if verdict.ConsideredCount != 2 {
		t.Errorf("ConsideredCount = %d, 期望 2", verdict.ConsideredCount)
	}
	if math.Abs(verdict.AverageScore-0.7) > 1e-9 {
		t.Errorf("AverageScore = %v, 期望 0.7", verdict.AverageScore)
	}
}

func TestAnalyzeAllFail(t *testing.T) {
	m := &mockScorer{}
	_, err := NewAggregator(m).Analyze(context.Background(), "评论一\n评论二")
	if !errors.Is(err, ErrNoValidContent) {
		t.Errorf("全部失败时错误 = %v, 期望 ErrNoValidContent", err)
	}
}

func TestAnalyzeLabelBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		label Label
	}{
		{0.6, LabelNeutral},  // 边界值归 NEUTRAL
		{0.4, LabelNeutral},  // 边界值归 NEUTRAL
		{0.6001, LabelPositive},
		{0.3999, LabelNegative},
		{0.0, LabelNegative},
		{1.0, LabelPositive},
		{0.5, LabelNeutral},
	}

	for _, c := range cases {
		m := &mockScorer{scores: map[string]float64{"评论": c.score}}
		verdict, err := NewAggregator(m).Analyze(context.Background(), "评论")
		if err != nil {
			t.Fatalf("Analyze 失败: %v", err)
		}
		if verdict.Label != c.label {
			t.Errorf("均分 %v 的标签 = %s, 期望 %s", c.score, verdict.Label, c.label)
		}
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	m := &mockScorer{scores: map[string]float64{"涨": 0.9, "跌": 0.2}}
	agg := NewAggregator(m)

	first, err := agg.Analyze(context.Background(), "涨\n跌")
	if err != nil {
		t.Fatalf("Analyze 失败: %v", err)
	}
	second, err := agg.Analyze(context.Background(), "涨\n跌")
	if err != nil {
		t.Fatalf("Analyze 失败: %v", err)
	}
	if first != second {
		t.Errorf("确定性打分下两次结果应一致: %+v vs %+v", first, second)
	}
	if first.Summary() != second.Summary() {
		t.Errorf("摘要应逐字一致: %q vs %q", first.Summary(), second.Summary())
	}
}

func TestVerdictSummary(t *testing.T) {
	v := Verdict{AverageScore: 0.56789, Label: LabelNeutral, ConsideredCount: 12}
	summary := v.Summary()
	for _, want := range []string{"12", "0.5679", "NEUTRAL"} {
		if !strings.Contains(summary, want) {
			t.Errorf("摘要 %q 缺少 %q", summary, want)
		}
	}
}
