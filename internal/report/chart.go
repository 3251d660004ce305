package report

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"qmaze/internal/engine"
)

// Render writes an HTML page with the learning curve and value/visit heatmaps.
func Render(w io.Writer, snapshots []engine.Snapshot, values [][]float64, visits [][]int) error {
	page := components.NewPage()
	page.AddCharts(
		learningCurve(EpisodeSnapshots(snapshots)),
		heatmap("state values", values),
		heatmap("training visits", intsToFloats(visits)),
	)
	return page.Render(w)
}

func learningCurve(episodes []engine.Snapshot) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "learning curve"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	xs := make([]string, 0, len(episodes))
	rewards := make([]opts.LineData, 0, len(episodes))
	steps := make([]opts.LineData, 0, len(episodes))
	for _, e := range episodes {
		xs = append(xs, fmt.Sprintf("%d", e.Episode))
		rewards = append(rewards, opts.LineData{Value: e.EpisodeReward})
		steps = append(steps, opts.LineData{Value: e.EpisodeSteps})
	}
	line.SetXAxis(xs).
		AddSeries("episode reward", rewards).
		AddSeries("episode steps", steps)
	return line
}

func heatmap(title string, values [][]float64) *charts.HeatMap {
	hm := charts.NewHeatMap()

	low, high := math.Inf(1), math.Inf(-1)
	var data []opts.HeatMapData
	for r, row := range values {
		for c, v := range row {
			if math.IsNaN(v) {
				continue
			}
			low = math.Min(low, v)
			high = math.Max(high, v)
			data = append(data, opts.HeatMapData{Value: [3]interface{}{c, r, v}})
		}
	}
	if len(data) == 0 {
		low, high = 0, 0
	}

	cols := 0
	if len(values) > 0 {
		cols = len(values[0])
	}
	xs := make([]string, cols)
	for c := range xs {
		xs[c] = fmt.Sprintf("%d", c)
	}
	ys := make([]string, len(values))
	for r := range ys {
		ys[r] = fmt.Sprintf("%d", r)
	}

	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: xs}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: ys}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(low),
			Max:        float32(high),
			InRange:    &opts.VisualMapInRange{Color: []string{"#313695", "#ffffbf", "#a50026"}},
		}),
	)
	hm.SetXAxis(xs).AddSeries(title, data)
	return hm
}

func intsToFloats(grid [][]int) [][]float64 {
	out := make([][]float64, len(grid))
	for r, row := range grid {
		out[r] = make([]float64, len(row))
		for c, v := range row {
			out[r][c] = float64(v)
		}
	}
	return out
}
