package debug

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"rootfind/types"
)

// Plot 函数曲线绘制
type Plot struct {
	Samples int // 采样点数量，0 取默认值 1000
}

// SavePNG 在 [a, b] 上绘制 f 曲线并标记根位置，输出 PNG 文件
func (p *Plot) SavePNG(f types.Func, a, b, root float64, path string) error {
	n := p.Samples
	if n <= 1 {
		n = 1000
	}
	pl := plot.New()
	pl.Title.Text = "函数曲线"
	pl.X.Label.Text = "x"
	pl.Y.Label.Text = "f(x)"
	pts := make(plotter.XYs, n)
	step := (b - a) / float64(n-1)
	for i := range pts {
		x := a + float64(i)*step
		pts[i].X = x
		pts[i].Y = f(x)
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("曲线构建失败: %w", err)
	}
	mark, err := plotter.NewScatter(plotter.XYs{{X: root, Y: f(root)}})
	if err != nil {
		return fmt.Errorf("根标记构建失败: %w", err)
	}
	pl.Add(plotter.NewGrid(), line, mark)
	pl.Legend.Add("f(x)", line)
	pl.Legend.Add("根", mark)
	return pl.Save(8*vg.Inch, 4*vg.Inch, path)
}
