package problem

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"rootfind/maths"
)

// SystemTrig 定义方程组 x = 0.3 + 0.1·sin(y), y = 0.4 + 0.2·cos(x)
// 两个分量在全平面压缩，任意初值均收敛
var SystemTrig = AddSystem(&System{
	Name: "x = 0.3 + 0.1*sin(y); y = 0.4 + 0.2*cos(x)",
	Phi1: func(x, y float64) float64 { return 0.3 + 0.1*math.Sin(y) },
	Phi2: func(x, y float64) float64 { return 0.4 + 0.2*math.Cos(x) },
})

// SystemLinear 定义线性方程组 x = Bx + c
// 系数矩阵谱半径小于 1，迭代收敛；精确解为 (5/11, 6/11)
var SystemLinear = AddSystem(newLinearSystem())

// LinearB 线性方程组系数矩阵
var LinearB = mat.NewDense(2, 2, []float64{
	0.1, 0.2,
	0.2, 0.1,
})

// LinearC 线性方程组常数向量
var LinearC = mat.NewVecDense(2, []float64{0.3, 0.4})

func newLinearSystem() *System {
	phi1, phi2, err := maths.LinearFixedPoint(LinearB, LinearC)
	if err != nil {
		panic(err)
	}
	return &System{
		Name: "x = 0.1x + 0.2y + 0.3; y = 0.2x + 0.1y + 0.4",
		Phi1: phi1,
		Phi2: phi2,
	}
}
