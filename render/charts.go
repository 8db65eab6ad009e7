package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/gridnav/field"
	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/scenario"
)

// ErrNothingToRender is returned when a chart has no data series.
var ErrNothingToRender = errors.New("render: nothing to render")

// viridis is the color ramp used for potential values, low to high.
var viridis = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// PathChart renders the potential field as an HTML scatter chart with
// obstacles and the planned path overlaid. Rows grow downward in grid
// coordinates; the chart flips them so row 0 appears at the top.
func PathChart(w io.Writer, g *grid.Grid, f *field.Field, path []grid.Cell, title string) error {
	if g == nil || f == nil {
		return ErrNothingToRender
	}

	rows, cols := g.Rows(), g.Cols()
	flip := func(row int) int { return rows - 1 - row }

	free := make([]opts.ScatterData, 0, rows*cols)
	obstacles := make([]opts.ScatterData, 0, rows*cols)
	maxPotential := 0.0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			q := grid.Cell{Row: r, Col: c}
			if f.IsObstacle(q) {
				obstacles = append(obstacles, opts.ScatterData{Value: []interface{}{c, flip(r)}})
				continue
			}
			v := f.At(q)
			if v > maxPotential && !math.IsInf(v, 1) {
				maxPotential = v
			}
			free = append(free, opts.ScatterData{Value: []interface{}{c, flip(r), v}})
		}
	}
	if maxPotential == 0 {
		maxPotential = 1
	}

	waypoints := make([]opts.ScatterData, 0, len(path))
	for _, q := range path {
		waypoints = append(waypoints, opts.ScatterData{Value: []interface{}{q.Col, flip(q.Row)}})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d×%d grid, %d waypoints", rows, cols, len(path)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -1, Max: cols, Name: "col"}),
		charts.WithYAxisOpts(opts.YAxis{Min: -1, Max: rows, Name: "row"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxPotential),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: viridis},
		}),
	)

	scatter.AddSeries("potential", free,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 14}))
	scatter.AddSeries("obstacle", obstacles,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 14}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#000000"}))
	scatter.AddSeries("path", waypoints,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#ff3333"}))

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("render: path chart: %w", err)
	}

	return nil
}

// BenchmarkChart renders an HTML bar chart comparing scenario runs:
// elapsed milliseconds, expanded node counts and path costs per
// scenario name.
func BenchmarkChart(w io.Writer, outs []scenario.Outcome) error {
	if len(outs) == 0 {
		return ErrNothingToRender
	}

	names := make([]string, 0, len(outs))
	elapsed := make([]opts.BarData, 0, len(outs))
	expanded := make([]opts.BarData, 0, len(outs))
	costs := make([]opts.BarData, 0, len(outs))
	for _, o := range outs {
		st := o.Result.Stats
		names = append(names, o.Scenario)
		elapsed = append(elapsed, opts.BarData{Value: float64(st.Elapsed.Microseconds()) / 1000.0})
		expanded = append(expanded, opts.BarData{Value: st.NodesExpanded})
		costs = append(costs, opts.BarData{Value: st.PathCost})
	}

	sum := scenario.Summarize(outs)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Planning benchmark", Width: "100%", Height: "720px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Planning benchmark",
			Subtitle: fmt.Sprintf("%d/%d succeeded (%.0f%%)", sum.Succeeded, sum.Total, sum.SuccessRate*100),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(names).
		AddSeries("elapsed (ms)", elapsed).
		AddSeries("nodes expanded", expanded).
		AddSeries("path cost", costs,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("render: benchmark chart: %w", err)
	}

	return nil
}
