package solver

import (
	"fmt"

	"rootfind/maths"
	"rootfind/types"
)

// Iteration 简单迭代法求解不动点方程 x = phi(x)
// phi 的收敛性（根附近 |phi'| < 1）由调用方选择合适的变形保证，
// 此处只以迭代上限兜底
// 终止条件：步长 |x_next - x| < eps
// 残差按不动点条件 |phi(x) - x| 计算（本函数不持有原函数 f）
func Iteration(phi types.Func, x0, eps float64) (types.Result, error) {
	if err := checkTolerance(eps); err != nil {
		return types.Result{}, err
	}
	x := x0
	// 初值已满足终止条件时无需迭代
	if r := maths.Abs(phi(x) - x); r < eps {
		return types.Result{Root: x, Residual: r}, nil
	}
	for iter := 1; iter <= types.MaxIterations; iter++ {
		next := phi(x)
		if !maths.IsFinite(next) || maths.Abs(next) > types.DivergenceLimit {
			return types.Result{}, fmt.Errorf("简单迭代法: 迭代值 %g: %w", next, types.ErrDiverged)
		}
		if maths.Abs(next-x) < eps {
			return types.Result{Root: next, Residual: maths.Abs(phi(next) - next), Iterations: iter}, nil
		}
		x = next
	}
	return types.Result{}, fmt.Errorf("简单迭代法: %w", types.ErrNonConvergence)
}
