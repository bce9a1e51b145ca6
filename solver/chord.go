package solver

import (
	"fmt"

	"rootfind/maths"
	"rootfind/types"
)

// Chord 弦截法（试位法）求解 f(x) = 0
// 前置条件：[a, b] 为有效的变号区间，由调用方通过 ValidateInterval 保证，
// 此处不再校验
// 每步以割线与 x 轴的交点替换同号端点，保持变号区间性质
// 终止条件：|f(x)| < eps（按残差收敛）
// 超过 types.MaxIterations 返回 types.ErrNonConvergence
func Chord(f types.Func, a, b, eps float64) (types.Result, error) {
	if err := checkTolerance(eps); err != nil {
		return types.Result{}, err
	}
	fa, fb := f(a), f(b)
	// 端点已满足终止条件时无需迭代
	if maths.Abs(fa) < eps {
		return types.Result{Root: a, Residual: fa}, nil
	}
	if maths.Abs(fb) < eps {
		return types.Result{Root: b, Residual: fb}, nil
	}
	for iter := 1; iter <= types.MaxIterations; iter++ {
		if fb == fa {
			return types.Result{}, fmt.Errorf("弦截法: f(a) == f(b): %w", types.ErrZeroDenominator)
		}
		x := a - fa*(b-a)/(fb-fa)
		fx := f(x)
		if maths.Abs(fx) < eps {
			return types.Result{Root: x, Residual: fx, Iterations: iter}, nil
		}
		// 保持变号区间
		if fa*fx < 0 {
			b, fb = x, fx
		} else {
			a, fa = x, fx
		}
	}
	return types.Result{}, fmt.Errorf("弦截法: %w", types.ErrNonConvergence)
}
