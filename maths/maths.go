package maths

import "math"

// Number 约束浮点类型
type Number interface {
	~float32 | ~float64
}

// Abs 是一个泛型函数，返回任何支持的 Number 类型的绝对值。
func Abs[T Number](v T) float64 {
	return math.Abs(float64(v))
}

// IsFinite 检查数值是否有限（排除 NaN 和 ±Inf）
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
