package types

import "errors"

// 求解失败类型定义
// 所有求解函数以显式错误值返回失败，调用方用 errors.Is 区分类型，
// 失败时不返回部分数值结果
var (
	ErrInvalidTolerance = errors.New("容差必须为正数")
	ErrInvalidInterval  = errors.New("区间端点必须满足 a < b")
	ErrNoBracket        = errors.New("区间端点函数值同号，不保证存在根")
	ErrZeroDenominator  = errors.New("分母为零")
	ErrZeroDerivative   = errors.New("导数为零")
	ErrNonConvergence   = errors.New("超过最大迭代次数未收敛")
	ErrDiverged         = errors.New("迭代发散")
	ErrUnknownProblem   = errors.New("未知的问题名称")
	ErrUnknownMethod    = errors.New("未知的求解方法")
)
