package debug

import (
	"encoding/json"
	"io"

	"rootfind/types"
)

// Record 记录求解历史状态
// 单个求解流程内使用，不做并发保护
type Record struct {
	Method string              // 方法名称
	X      []float64           // 函数求值点
	Fx     []float64           // 对应函数值
	Result *types.Result       // 标量求解结果
	System *types.SystemResult // 方程组求解结果
}

// Watch 包装一元函数，记录每次求值的 (x, f(x))
// 求解函数本身保持纯函数，记录只发生在包装层
func (list *Record) Watch(f types.Func) types.Func {
	return func(x float64) float64 {
		fx := f(x)
		list.X = append(list.X, x)
		list.Fx = append(list.Fx, fx)
		return fx
	}
}

// AddResult 记录标量求解结果
func (list *Record) AddResult(name string, r types.Result) {
	list.Method = name
	list.Result = &r
}

// AddSystem 记录方程组求解结果
func (list *Record) AddSystem(r types.SystemResult) {
	list.System = &r
}

// Render 格式化输出内容
func (list *Record) Render(w io.Writer) error { return json.NewEncoder(w).Encode(list) }
