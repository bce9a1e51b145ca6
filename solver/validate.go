package solver

import (
	"fmt"

	"rootfind/types"
)

// ValidateInterval 检查区间 [a, b] 是否适合求根
// 纯判定函数，无副作用，f 在成功路径上恰好被调用两次
// f(a)·f(b) == 0 视为有效：根恰好落在端点上
// 返回:
//
//	是否有效，无效原因说明
func ValidateInterval(a, b float64, f types.Func) (bool, string) {
	if a >= b {
		return false, fmt.Sprintf("区间端点必须满足 a < b，得到 a=%g b=%g", a, b)
	}
	if f(a)*f(b) > 0 {
		return false, "f(a) 与 f(b) 同号，区间内不保证存在根"
	}
	return true, ""
}

// checkTolerance 校验容差参数，eps 必须为正数
// 比较写法同时排除 NaN
func checkTolerance(eps float64) error {
	if !(eps > 0) {
		return fmt.Errorf("eps=%g: %w", eps, types.ErrInvalidTolerance)
	}
	return nil
}
