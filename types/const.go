package types

// 默认参数常量定义
const (
	MaxIterations   = 1000 // 最大迭代次数，超过判定为不收敛
	DivergenceLimit = 1e12 // 迭代值绝对值超过该阈值判定为发散
)

var (
	DefaultTolerance = 1e-6 // 默认收敛容差
)
