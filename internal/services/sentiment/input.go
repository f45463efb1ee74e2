package sentiment

import "fmt"

// 包装对象里可承载评论文本的字段名
var inputFieldNames = []string{"comments", "text"}

// ShapeError 入参形状错误，Shape 描述实际收到的形状
type ShapeError struct {
	Shape string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("入参格式错误：收到 %s，期望换行分隔的字符串，或携带 comments/text 字符串字段的对象", e.Shape)
}

// ResolveInput 在边界处一次性解析情感分析入参的两种合法形态：
// 裸字符串，或携带 comments/text 字段的包装对象。
// 其余形状一律拒绝，并在错误里指明实际类型。
func ResolveInput(v any) (string, error) {
	switch in := v.(type) {
	case string:
		return in, nil
	case map[string]any:
		for _, key := range inputFieldNames {
			if field, ok := in[key]; ok {
				if s, ok := field.(string); ok {
					return s, nil
				}
				return "", &ShapeError{Shape: fmt.Sprintf("对象的 %s 字段为 %T", key, field)}
			}
		}
		return "", &ShapeError{Shape: "缺少 comments/text 字段的对象"}
	case nil:
		return "", &ShapeError{Shape: "null"}
	default:
		return "", &ShapeError{Shape: fmt.Sprintf("%T", v)}
	}
}
