package debug

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Charts 曲线绘制
type Charts struct {
	Record
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	page := components.NewPage()
	// 残差曲线
	if len(c.Fx) > 0 {
		lineF := charts.NewLine()
		lineF.SetGlobalOptions(
			charts.WithInitializationOpts(opts.Initialization{
				Theme: types.ThemeWesteros,
			}),
			charts.WithTitleOpts(opts.Title{
				Title:    "函数求值曲线",
				Subtitle: "迭代过程中各求值点的函数值",
			}),
			charts.WithXAxisOpts(opts.XAxis{
				SplitNumber: 20,
			}),
			charts.WithYAxisOpts(opts.YAxis{
				Scale: opts.Bool(true),
			}),
			charts.WithAnimation(true),
		)
		axis := make([]string, len(c.Fx))
		items := make([]opts.LineData, len(c.Fx))
		for i, v := range c.Fx {
			axis[i] = fmt.Sprintf("%d", i+1)
			items[i] = opts.LineData{Value: v}
		}
		lineF.SetXAxis(axis).AddSeries("f(x)", items)
		page.AddCharts(lineF)
	}
	// 方程组误差曲线
	if c.System != nil && len(c.System.Errors) > 0 {
		lineE := charts.NewLine()
		lineE.SetGlobalOptions(
			charts.WithInitializationOpts(opts.Initialization{
				Theme: types.ThemeWesteros,
			}),
			charts.WithTitleOpts(opts.Title{
				Title:    "误差曲线",
				Subtitle: "方程组迭代误差随步数变化曲线",
			}),
			charts.WithXAxisOpts(opts.XAxis{
				SplitNumber: 20,
			}),
			charts.WithYAxisOpts(opts.YAxis{
				Scale: opts.Bool(true),
			}),
			charts.WithAnimation(true),
		)
		axis := make([]string, len(c.System.Errors))
		itemsX := make([]opts.LineData, len(c.System.Errors))
		itemsY := make([]opts.LineData, len(c.System.Errors))
		for i, e := range c.System.Errors {
			axis[i] = fmt.Sprintf("%d", i+1)
			itemsX[i] = opts.LineData{Value: e.DX}
			itemsY[i] = opts.LineData{Value: e.DY}
		}
		lineE.SetXAxis(axis).
			AddSeries("Δx", itemsX).
			AddSeries("Δy", itemsY)
		page.AddCharts(lineE)
	}
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	c.Render(w)
}

func (c *Charts) Error(err error) { log.Println(err) }
