package solver

import (
	"fmt"

	"rootfind/maths"
	"rootfind/types"
)

// SystemIteration 二元方程组简单迭代法
// 求解 x = phi1(x, y), y = phi2(x, y)
// 同步更新：x_next 与 y_next 均由上一轮 (x, y) 计算，单步内不串行替换
// 每步记录误差 (|x_next - x|, |y_next - y|)，两者均小于 eps 时终止
func SystemIteration(phi1, phi2 types.Func2, x0, y0, eps float64) (types.SystemResult, error) {
	if err := checkTolerance(eps); err != nil {
		return types.SystemResult{}, err
	}
	x, y := x0, y0
	// 初值已满足终止条件时无需迭代
	if maths.Abs(phi1(x, y)-x) < eps && maths.Abs(phi2(x, y)-y) < eps {
		return types.SystemResult{X: x, Y: y}, nil
	}
	errs := make([]types.StepError, 0, 16)
	for iter := 1; iter <= types.MaxIterations; iter++ {
		nx, ny := phi1(x, y), phi2(x, y)
		if !maths.IsFinite(nx) || !maths.IsFinite(ny) ||
			maths.Abs(nx) > types.DivergenceLimit || maths.Abs(ny) > types.DivergenceLimit {
			return types.SystemResult{}, fmt.Errorf("系统迭代: 迭代值 (%g, %g): %w", nx, ny, types.ErrDiverged)
		}
		dx, dy := maths.Abs(nx-x), maths.Abs(ny-y)
		errs = append(errs, types.StepError{DX: dx, DY: dy})
		x, y = nx, ny
		if dx < eps && dy < eps {
			return types.SystemResult{X: x, Y: y, Iterations: iter, Errors: errs}, nil
		}
	}
	return types.SystemResult{}, fmt.Errorf("系统迭代: %w", types.ErrNonConvergence)
}
