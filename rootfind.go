package rootfind

import (
	"fmt"

	"rootfind/maths"
	"rootfind/problem"
	"rootfind/solver"
	"rootfind/types"
)

// Method 标量方程求解方法
type Method int

// 求解方法定义
const (
	MethodChord     Method = iota // 弦截法
	MethodNewton                  // 牛顿法
	MethodIteration               // 简单迭代法
)

// String 方法显示名称
func (m Method) String() string {
	switch m {
	case MethodChord:
		return "弦截法"
	case MethodNewton:
		return "牛顿法"
	case MethodIteration:
		return "简单迭代法"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Methods 全部标量求解方法
var Methods = []Method{MethodChord, MethodNewton, MethodIteration}

// MethodByName 按显示名称查找求解方法
func MethodByName(name string) (Method, error) {
	for _, m := range Methods {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", types.ErrUnknownMethod, name)
}

// SolveEquation 在目录中查找方程并按指定方法求解
// 先校验区间，再按原始交互外壳的初值策略分派：
//
//	弦截法直接使用区间 [a, b]
//	牛顿法取 |f| 较小的端点为初值
//	简单迭代法取区间中点为初值
func SolveEquation(name string, m Method, a, b, eps float64) (types.Result, error) {
	eq, err := problem.EquationByName(name)
	if err != nil {
		return types.Result{}, err
	}
	if a >= b {
		return types.Result{}, fmt.Errorf("区间 [%g, %g]: %w", a, b, types.ErrInvalidInterval)
	}
	if ok, msg := solver.ValidateInterval(a, b, eq.F); !ok {
		return types.Result{}, fmt.Errorf("%s: %w", msg, types.ErrNoBracket)
	}
	switch m {
	case MethodChord:
		return solver.Chord(eq.F, a, b, eps)
	case MethodNewton:
		x0 := a
		if maths.Abs(eq.F(b)) < maths.Abs(eq.F(a)) {
			x0 = b
		}
		return solver.Newton(eq.F, eq.Df, x0, eps)
	case MethodIteration:
		return solver.Iteration(eq.Phi, (a+b)/2, eps)
	}
	return types.Result{}, fmt.Errorf("%w: Method(%d)", types.ErrUnknownMethod, int(m))
}

// SolveSystem 在目录中查找方程组并用简单迭代法求解
func SolveSystem(name string, x0, y0, eps float64) (types.SystemResult, error) {
	sys, err := problem.SystemByName(name)
	if err != nil {
		return types.SystemResult{}, err
	}
	return solver.SystemIteration(sys.Phi1, sys.Phi2, x0, y0, eps)
}
