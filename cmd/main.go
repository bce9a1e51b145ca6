package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"rootfind"
	"rootfind/problem"
	"rootfind/solver"
	"rootfind/solver/debug"
	"rootfind/types"
)

func main() {
	httpAddr := flag.String("http", "", "发布收敛曲线页面的监听地址，例如 :8080")
	pngPath := flag.String("png", "", "输出函数曲线 PNG 文件路径")
	eps := flag.Float64("eps", types.DefaultTolerance, "收敛容差")
	flag.Parse()

	charts := &debug.Charts{}

	// 求解目录中全部标量方程
	for _, name := range problem.EquationNames() {
		eq, err := problem.EquationByName(name)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("== %s 区间 [%g, %g] ==\n", name, eq.A, eq.B)
		for _, m := range rootfind.Methods {
			res, err := rootfind.SolveEquation(name, m, eq.A, eq.B, *eps)
			if err != nil {
				fmt.Printf("%s: %v\n", m, err)
				continue
			}
			fmt.Printf("%s: 根 = %.6f 残差 = %.2e 迭代 = %d\n", m, res.Root, res.Residual, res.Iterations)
		}
		fmt.Println()
	}

	// 求解目录中全部方程组
	for _, name := range problem.SystemNames() {
		res, err := rootfind.SolveSystem(name, 0, 0, *eps)
		if err != nil {
			fmt.Printf("== %s ==\n%v\n\n", name, err)
			continue
		}
		fmt.Printf("== %s ==\n解: x = %.6f y = %.6f 迭代 = %d\n", name, res.X, res.Y, res.Iterations)
		for i, e := range res.Errors {
			fmt.Printf("步 %d: Δx=%.2e Δy=%.2e\n", i+1, e.DX, e.DY)
		}
		fmt.Println()
		charts.AddSystem(res)
	}

	// 记录一条求解轨迹用于绘制
	eq := problem.EquationSqrt2
	if res, err := solver.Chord(charts.Watch(eq.F), eq.A, eq.B, *eps); err == nil {
		charts.AddResult(rootfind.MethodChord.String(), res)
		if *pngPath != "" {
			p := &debug.Plot{}
			if err := p.SavePNG(eq.F, eq.A, eq.B, res.Root, *pngPath); err != nil {
				log.Println(err)
			} else {
				log.Println("函数曲线已输出:", *pngPath)
			}
		}
	}

	if *httpAddr != "" {
		http.HandleFunc("/", charts.Handler)
		log.Println("收敛曲线页面:", *httpAddr)
		log.Fatal(http.ListenAndServe(*httpAddr, nil))
	}
}
