package problem

import (
	"fmt"
	"sort"

	"rootfind/types"
)

// Equation 标量方程条目
// 注册后不可变，进程生命周期内有效
type Equation struct {
	Name string     // 显示名称
	F    types.Func // 原函数 f(x)
	Df   types.Func // 导数 f'(x)，牛顿法使用
	Phi  types.Func // 不动点形式 x = phi(x)，简单迭代法使用
	A, B float64    // 建议求根区间，交互外壳的默认值
}

// System 二元方程组条目
type System struct {
	Name string      // 显示名称
	Phi1 types.Func2 // x = phi1(x, y)
	Phi2 types.Func2 // y = phi2(x, y)
}

// 问题目录
// 包初始化期间通过 AddEquation/AddSystem 注册完成，运行期间只读，
// 多协程并发读取无需加锁
var (
	EquationList = map[string]*Equation{}
	SystemList   = map[string]*System{}
)

// AddEquation 注册标量方程，仅在包初始化期间调用
func AddEquation(eq *Equation) *Equation {
	if _, ok := EquationList[eq.Name]; ok {
		panic(fmt.Sprintf("问题重复注册: %s", eq.Name))
	}
	EquationList[eq.Name] = eq
	return eq
}

// AddSystem 注册二元方程组，仅在包初始化期间调用
func AddSystem(sys *System) *System {
	if _, ok := SystemList[sys.Name]; ok {
		panic(fmt.Sprintf("问题重复注册: %s", sys.Name))
	}
	SystemList[sys.Name] = sys
	return sys
}

// EquationByName 按名称查找标量方程
func EquationByName(name string) (*Equation, error) {
	eq, ok := EquationList[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownProblem, name)
	}
	return eq, nil
}

// SystemByName 按名称查找方程组
func SystemByName(name string) (*System, error) {
	sys, ok := SystemList[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownProblem, name)
	}
	return sys, nil
}

// EquationNames 返回已注册方程名称，按字典序排序
func EquationNames() []string {
	names := make([]string, 0, len(EquationList))
	for name := range EquationList {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SystemNames 返回已注册方程组名称，按字典序排序
func SystemNames() []string {
	names := make([]string, 0, len(SystemList))
	for name := range SystemList {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
