package types

// Func 一元函数 f(x)
type Func = func(x float64) float64

// Func2 二元函数 f(x, y)
type Func2 = func(x, y float64) float64

// Result 标量方程求解结果
type Result struct {
	Root       float64 // 根
	Residual   float64 // 终止时的残差
	Iterations int     // 完成的迭代步数
}

// StepError 方程组单步迭代误差
type StepError struct {
	DX float64 // |x_next - x|
	DY float64 // |y_next - y|
}

// SystemResult 二元方程组求解结果
// Errors 按迭代时间顺序记录，每步一条
type SystemResult struct {
	X          float64     // 解的 x 分量
	Y          float64     // 解的 y 分量
	Iterations int         // 完成的迭代步数
	Errors     []StepError // 每步误差记录
}
