package maths

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"rootfind/types"
)

// LinearFixedPoint 由线性不动点形式 x = Bx + c 构造迭代函数 phi1/phi2
// 仅支持二维系统：B 必须为 2x2 矩阵，c 必须为 2 维向量
// 迭代收敛要求 B 的谱半径小于 1，由调用方保证
func LinearFixedPoint(b *mat.Dense, c *mat.VecDense) (phi1, phi2 types.Func2, err error) {
	if err := checkDims(b, c); err != nil {
		return nil, nil, err
	}
	b11, b12 := b.At(0, 0), b.At(0, 1)
	b21, b22 := b.At(1, 0), b.At(1, 1)
	c1, c2 := c.AtVec(0), c.AtVec(1)
	phi1 = func(x, y float64) float64 { return b11*x + b12*y + c1 }
	phi2 = func(x, y float64) float64 { return b21*x + b22*y + c2 }
	return phi1, phi2, nil
}

// LinearSolution 求线性不动点系统 x = Bx + c 的精确解
// 即求解线性方程组 (I - B)x = c
func LinearSolution(b *mat.Dense, c *mat.VecDense) (x, y float64, err error) {
	if err := checkDims(b, c); err != nil {
		return 0, 0, err
	}
	var a mat.Dense
	a.Sub(eye(2), b)
	var sol mat.VecDense
	if err := sol.SolveVec(&a, c); err != nil {
		return 0, 0, fmt.Errorf("线性系统求解失败: %w", err)
	}
	return sol.AtVec(0), sol.AtVec(1), nil
}

// checkDims 校验系数维度
func checkDims(b *mat.Dense, c *mat.VecDense) error {
	r, cols := b.Dims()
	if r != 2 || cols != 2 {
		return fmt.Errorf("系数矩阵必须为 2x2，得到 %dx%d", r, cols)
	}
	if c.Len() != 2 {
		return fmt.Errorf("常数向量必须为 2 维，得到 %d 维", c.Len())
	}
	return nil
}

// eye 生成 n 阶单位矩阵
func eye(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}
