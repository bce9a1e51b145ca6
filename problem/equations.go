package problem

import "math"

// EquationSqrt2 定义问题 x² - 2 = 0
// 不动点形式取巴比伦开方变形
var EquationSqrt2 = AddEquation(&Equation{
	Name: "x^2 - 2 = 0",
	F:    func(x float64) float64 { return x*x - 2 },
	Df:   func(x float64) float64 { return 2 * x },
	Phi:  func(x float64) float64 { return (x + 2/x) / 2 },
	A:    1, B: 2,
})

// EquationCos 定义问题 cos(x) - x = 0
var EquationCos = AddEquation(&Equation{
	Name: "cos(x) - x = 0",
	F:    func(x float64) float64 { return math.Cos(x) - x },
	Df:   func(x float64) float64 { return -math.Sin(x) - 1 },
	Phi:  math.Cos,
	A:    0, B: 1,
})

// EquationCubic 定义问题 x³ - x - 2 = 0
var EquationCubic = AddEquation(&Equation{
	Name: "x^3 - x - 2 = 0",
	F:    func(x float64) float64 { return x*x*x - x - 2 },
	Df:   func(x float64) float64 { return 3*x*x - 1 },
	Phi:  func(x float64) float64 { return math.Cbrt(x + 2) },
	A:    1, B: 2,
})

// EquationExp 定义问题 e^(-x) - x = 0
var EquationExp = AddEquation(&Equation{
	Name: "exp(-x) - x = 0",
	F:    func(x float64) float64 { return math.Exp(-x) - x },
	Df:   func(x float64) float64 { return -math.Exp(-x) - 1 },
	Phi:  func(x float64) float64 { return math.Exp(-x) },
	A:    0, B: 1,
})
