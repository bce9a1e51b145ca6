package solver

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"

	"rootfind/maths"
	"rootfind/types"
)

// 测试用线性不动点系统 x = Bx + c，谱半径 0.3，精确解 (5/11, 6/11)
func linearPhis(t *testing.T) (types.Func2, types.Func2, float64, float64) {
	t.Helper()
	b := mat.NewDense(2, 2, []float64{0.1, 0.2, 0.2, 0.1})
	c := mat.NewVecDense(2, []float64{0.3, 0.4})
	phi1, phi2, err := maths.LinearFixedPoint(b, c)
	if err != nil {
		t.Fatalf("构造失败: %v", err)
	}
	x, y, err := maths.LinearSolution(b, c)
	if err != nil {
		t.Fatalf("精确解求解失败: %v", err)
	}
	return phi1, phi2, x, y
}

// TestSystemIterationLinear 线性系统收敛到精确解，误差历史非递增
func TestSystemIterationLinear(t *testing.T) {
	phi1, phi2, wantX, wantY := linearPhis(t)
	res, err := SystemIteration(phi1, phi2, 0, 0, 1e-6)
	if err != nil {
		t.Fatalf("求解失败: %v", err)
	}
	if maths.Abs(res.X-wantX) > 1e-5 || maths.Abs(res.Y-wantY) > 1e-5 {
		t.Errorf("解不正确: 期望 (%v, %v), 实际 (%v, %v)", wantX, wantY, res.X, res.Y)
	}
	if len(res.Errors) != res.Iterations {
		t.Fatalf("误差记录条数不正确: 期望 %d, 实际 %d", res.Iterations, len(res.Errors))
	}
	// 压缩映射下每步误差严格缩小
	for i := 1; i < len(res.Errors); i++ {
		if res.Errors[i].DX > res.Errors[i-1].DX || res.Errors[i].DY > res.Errors[i-1].DY {
			t.Errorf("误差历史在步 %d 处递增: %+v -> %+v", i, res.Errors[i-1], res.Errors[i])
		}
	}
	// 终止时两个分量误差均小于容差
	last := res.Errors[len(res.Errors)-1]
	if last.DX >= 1e-6 || last.DY >= 1e-6 {
		t.Errorf("终止误差不满足条件: %+v", last)
	}
}

// TestSystemIterationExactGuess 初值为不动点时迭代次数为 0，误差历史为空
func TestSystemIterationExactGuess(t *testing.T) {
	phi1, phi2, wantX, wantY := linearPhis(t)
	res, err := SystemIteration(phi1, phi2, wantX, wantY, 1e-6)
	if err != nil {
		t.Fatalf("求解失败: %v", err)
	}
	if res.Iterations != 0 || len(res.Errors) != 0 {
		t.Errorf("结果不正确: %+v", res)
	}
	if res.X != wantX || res.Y != wantY {
		t.Errorf("解不应被改动: %+v", res)
	}
}

// TestSystemIterationLargeTolerance 宽松容差下一步终止
func TestSystemIterationLargeTolerance(t *testing.T) {
	phi1, phi2, _, _ := linearPhis(t)
	res, err := SystemIteration(phi1, phi2, 0, 0, 1.0)
	if err != nil {
		t.Fatalf("求解失败: %v", err)
	}
	if res.Iterations > 2 {
		t.Errorf("宽松容差迭代次数过多: %d", res.Iterations)
	}
}

// TestSystemIterationDiverged 放大映射判定为发散
func TestSystemIterationDiverged(t *testing.T) {
	phi1 := func(x, y float64) float64 { return 2*x + 1 }
	phi2 := func(x, y float64) float64 { return 2*y + 1 }
	_, err := SystemIteration(phi1, phi2, 1, 1, 1e-6)
	if !errors.Is(err, types.ErrDiverged) {
		t.Errorf("错误类型不正确: 期望 ErrDiverged, 实际 %v", err)
	}
}

// TestSystemIterationNonConvergence 平移映射在迭代上限处报不收敛
func TestSystemIterationNonConvergence(t *testing.T) {
	phi1 := func(x, y float64) float64 { return x + 1 }
	phi2 := func(x, y float64) float64 { return y + 1 }
	_, err := SystemIteration(phi1, phi2, 0, 0, 1e-6)
	if !errors.Is(err, types.ErrNonConvergence) {
		t.Errorf("错误类型不正确: 期望 ErrNonConvergence, 实际 %v", err)
	}
}

// TestSystemIterationInvalidTolerance 非正容差被拒绝
func TestSystemIterationInvalidTolerance(t *testing.T) {
	phi1, phi2, _, _ := linearPhis(t)
	_, err := SystemIteration(phi1, phi2, 0, 0, 0)
	if !errors.Is(err, types.ErrInvalidTolerance) {
		t.Errorf("错误类型不正确: 期望 ErrInvalidTolerance, 实际 %v", err)
	}
}

// TestSystemIterationIdempotent 相同输入两次求解结果完全一致
func TestSystemIterationIdempotent(t *testing.T) {
	phi1, phi2, _, _ := linearPhis(t)
	r1, err1 := SystemIteration(phi1, phi2, 0, 0, 1e-6)
	r2, err2 := SystemIteration(phi1, phi2, 0, 0, 1e-6)
	if err1 != nil || err2 != nil {
		t.Fatalf("求解失败: %v %v", err1, err2)
	}
	if r1.X != r2.X || r1.Y != r2.Y || r1.Iterations != r2.Iterations {
		t.Errorf("结果不一致: %+v != %+v", r1, r2)
	}
	if len(r1.Errors) != len(r2.Errors) {
		t.Fatalf("误差历史长度不一致: %d != %d", len(r1.Errors), len(r2.Errors))
	}
	for i := range r1.Errors {
		if r1.Errors[i] != r2.Errors[i] {
			t.Errorf("误差历史在步 %d 处不一致", i)
		}
	}
}
