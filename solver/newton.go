package solver

import (
	"fmt"

	"rootfind/maths"
	"rootfind/types"
)

// Newton 牛顿法求解 f(x) = 0
// df 为调用方提供的导数，不做数值或符号微分
// 终止条件：步长 |x_next - x| < eps（按步长收敛，不保证残差大小）
// 失败类型：
//
//	迭代点导数为零返回 types.ErrZeroDerivative
//	迭代值非有限或超出 types.DivergenceLimit 返回 types.ErrDiverged
//	超过 types.MaxIterations 返回 types.ErrNonConvergence
func Newton(f, df types.Func, x0, eps float64) (types.Result, error) {
	if err := checkTolerance(eps); err != nil {
		return types.Result{}, err
	}
	x := x0
	// 初值恰为根时无需迭代
	if fx := f(x); fx == 0 {
		return types.Result{Root: x, Residual: fx}, nil
	}
	for iter := 1; iter <= types.MaxIterations; iter++ {
		d := df(x)
		if d == 0 {
			return types.Result{}, fmt.Errorf("牛顿法: x=%g: %w", x, types.ErrZeroDerivative)
		}
		next := x - f(x)/d
		if !maths.IsFinite(next) || maths.Abs(next) > types.DivergenceLimit {
			return types.Result{}, fmt.Errorf("牛顿法: 迭代值 %g: %w", next, types.ErrDiverged)
		}
		if maths.Abs(next-x) < eps {
			return types.Result{Root: next, Residual: f(next), Iterations: iter}, nil
		}
		x = next
	}
	return types.Result{}, fmt.Errorf("牛顿法: %w", types.ErrNonConvergence)
}
