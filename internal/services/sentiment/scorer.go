package sentiment

import "context"

// Scorer 情感打分能力：对一段文本给出 [0,1] 极性分，越高越正面。
// 具体实现由装配层选择，聚合器只依赖该接口。
type Scorer interface {
	Score(ctx context.Context, text string) (float64, error)
}
