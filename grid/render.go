package grid

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	obstacleColor = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	pathColor     = color.RGBA{R: 220, G: 50, B: 32, A: 255}
)

// RenderPNG draws the occupied cells of g and the cell path to file.
// Columns run along x and rows along y.
func RenderPNG(file string, g *Grid, path []Cell) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%dx%d grid", g.Width(), g.Height())
	p.X.Label.Text = "col"
	p.Y.Label.Text = "row"
	p.X.Min, p.X.Max = -0.5, float64(g.Width())-0.5
	p.Y.Min, p.Y.Max = -0.5, float64(g.Height())-0.5

	if cells := g.OccupiedCells(); len(cells) > 0 {
		obstacles, err := plotter.NewScatter(cellXYs(cells))
		if err != nil {
			return fmt.Errorf("obstacles: %w", err)
		}
		obstacles.GlyphStyle.Shape = draw.BoxGlyph{}
		obstacles.GlyphStyle.Color = obstacleColor
		obstacles.GlyphStyle.Radius = vg.Points(4)
		p.Add(obstacles)
	}

	if len(path) > 1 {
		line, err := plotter.NewLine(cellXYs(path))
		if err != nil {
			return fmt.Errorf("path: %w", err)
		}
		line.Color = pathColor
		line.Width = vg.Points(2)
		p.Add(line)
	}

	if err := p.Save(8*vg.Inch, 8*vg.Inch, file); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}

func cellXYs(cells []Cell) plotter.XYs {
	pts := make(plotter.XYs, 0, len(cells))
	for _, c := range cells {
		pts = append(pts, plotter.XY{X: float64(c.Col), Y: float64(c.Row)})
	}
	return pts
}
