package solver

import (
	"math"
	"testing"

	"rootfind/types"
)

// TestValidateInterval 验证区间检查的判定表
func TestValidateInterval(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	cases := []struct {
		name  string
		a, b  float64
		f     types.Func
		valid bool
	}{
		{"有效变号区间", 1, 2, f, true},
		{"端点次序颠倒", 2, 1, f, false},
		{"端点相等", 1, 1, f, false},
		{"同号区间", 3, 4, f, false},
		{"根落在端点", 0, 1, func(x float64) float64 { return x }, true},
	}
	for _, c := range cases {
		valid, msg := ValidateInterval(c.a, c.b, c.f)
		if valid != c.valid {
			t.Errorf("%s: 期望 valid=%v, 实际 valid=%v", c.name, c.valid, valid)
		}
		if !valid && msg == "" {
			t.Errorf("%s: 无效区间必须给出原因说明", c.name)
		}
	}
}

// TestValidateIntervalOrderFirst a >= b 时无论 f 如何都无效
func TestValidateIntervalOrderFirst(t *testing.T) {
	valid, _ := ValidateInterval(5, 5, func(x float64) float64 {
		t.Fatal("端点次序无效时不应调用 f")
		return 0
	})
	if valid {
		t.Error("a >= b 的区间不应有效")
	}
}

// TestValidateIntervalCallCount 成功路径上 f 恰好被调用两次
func TestValidateIntervalCallCount(t *testing.T) {
	count := 0
	valid, _ := ValidateInterval(-1, 1, func(x float64) float64 {
		count++
		return x
	})
	if !valid {
		t.Fatal("变号区间应有效")
	}
	if count != 2 {
		t.Errorf("f 调用次数不正确: 期望 2, 实际 %d", count)
	}
}

// TestCheckTolerance 容差校验同时拒绝零、负数与 NaN
func TestCheckTolerance(t *testing.T) {
	if err := checkTolerance(1e-6); err != nil {
		t.Errorf("正容差不应报错: %v", err)
	}
	for _, eps := range []float64{0, -1e-6, math.NaN()} {
		if err := checkTolerance(eps); err == nil {
			t.Errorf("eps=%v 应返回错误", eps)
		}
	}
}
