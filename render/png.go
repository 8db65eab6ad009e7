package render

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/gridnav/grid"
)

// pathPlot assembles the static grid-and-path plot shared by the PNG
// writers.
func pathPlot(g *grid.Grid, path []grid.Cell, title string) (*plot.Plot, error) {
	if g == nil {
		return nil, ErrNothingToRender
	}

	rows := g.Rows()
	flip := func(row int) float64 { return float64(rows - 1 - row) }

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "col"
	p.Y.Label.Text = "row"
	p.X.Min, p.X.Max = -1, float64(g.Cols())
	p.Y.Min, p.Y.Max = -1, float64(rows)

	obsPts := make(plotter.XYs, 0, rows*g.Cols())
	for _, q := range g.Obstacles() {
		obsPts = append(obsPts, plotter.XY{X: float64(q.Col), Y: flip(q.Row)})
	}
	if len(obsPts) > 0 {
		sc, err := plotter.NewScatter(obsPts)
		if err != nil {
			return nil, fmt.Errorf("render: obstacle layer: %w", err)
		}
		sc.GlyphStyle.Radius = vg.Points(4)
		sc.GlyphStyle.Color = color.Gray{Y: 60}
		p.Add(sc)
		p.Legend.Add("obstacle", sc)
	}

	if len(path) > 0 {
		pathPts := make(plotter.XYs, 0, len(path))
		for _, q := range path {
			pathPts = append(pathPts, plotter.XY{X: float64(q.Col), Y: flip(q.Row)})
		}
		line, err := plotter.NewLine(pathPts)
		if err != nil {
			return nil, fmt.Errorf("render: path layer: %w", err)
		}
		line.Width = vg.Points(2)
		line.Color = color.RGBA{R: 220, G: 40, B: 40, A: 255}
		p.Add(line)
		p.Legend.Add("path", line)
	}

	return p, nil
}

// WritePathPNG streams a PNG of the grid and path to w.
func WritePathPNG(w io.Writer, g *grid.Grid, path []grid.Cell, title string) error {
	p, err := pathPlot(g, path, title)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(8*vg.Inch, 8*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("render: png writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: write png: %w", err)
	}

	return nil
}

// SavePathPNG writes a PNG of the grid and path to filename.
func SavePathPNG(filename string, g *grid.Grid, path []grid.Cell, title string) error {
	p, err := pathPlot(g, path, title)
	if err != nil {
		return err
	}
	if err := p.Save(8*vg.Inch, 8*vg.Inch, filename); err != nil {
		return fmt.Errorf("render: save png: %w", err)
	}

	return nil
}
