package pcaplot

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// GonumRenderer renders chart specifications through gonum/plot. Each panel
// becomes one *plot.Plot; facet grids are laid out with plot.Align. PNG
// output goes through vgimg, SVG through a tdewolff/canvas backend.
//
// The zero value is not usable; construct with NewGonumRenderer.
type GonumRenderer struct {
	Width, Height vg.Length
	Pad           vg.Length
}

// NewGonumRenderer returns a renderer with an 8×6 inch canvas.
func NewGonumRenderer() *GonumRenderer {
	return &GonumRenderer{
		Width:  8 * vg.Inch,
		Height: 6 * vg.Inch,
		Pad:    vg.Points(5),
	}
}

// Render draws the chart to path. The output format follows the file
// extension: .png or .svg.
func (g *GonumRenderer) Render(c *Chart, path string) error {
	if c == nil {
		return missingParam("chart")
	}
	if c.Rows() == 0 || c.Cols() == 0 {
		return fmt.Errorf("%w: chart has no panels", ErrInsufficientData)
	}

	var cm *DivergingMap
	if c.Color != nil {
		cm = NewDivergingMap()
		cm.SetMin(c.Color.Min)
		cm.SetMax(c.Color.Max)
	}

	plots, err := g.panelGrid(c, cm)
	if err != nil {
		return err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return g.writePNG(plots, path)
	case ".svg":
		return g.writeSVG(plots, path)
	default:
		return fmt.Errorf("pcaplot: unsupported output format %q (want .png or .svg)", ext)
	}
}

// panelGrid builds one *plot.Plot per panel, plus a color-bar row below the
// grid when the chart carries a color scale and wants a legend.
func (g *GonumRenderer) panelGrid(c *Chart, cm *DivergingMap) ([][]*plot.Plot, error) {
	rows, cols := c.Rows(), c.Cols()
	single := rows == 1 && cols == 1

	plots := make([][]*plot.Plot, rows)
	for j := 0; j < rows; j++ {
		plots[j] = make([]*plot.Plot, cols)
		for i := 0; i < cols; i++ {
			pn := c.Panels[j][i]
			if pn == nil {
				continue
			}
			p, err := g.panelPlot(c, pn, cm, single)
			if err != nil {
				return nil, err
			}
			plots[j][i] = p
		}
	}

	if cm != nil && c.Legend != LegendNone {
		bar := make([]*plot.Plot, cols)
		bar[cols/2] = colorBarPlot(cm, c.Color.Label)
		plots = append(plots, bar)
	}
	return plots, nil
}

// panelPlot translates one panel's marks into gonum plotters.
func (g *GonumRenderer) panelPlot(c *Chart, pn *Panel, cm *DivergingMap, single bool) (*plot.Plot, error) {
	p := plot.New()

	switch {
	case single:
		p.Title.Text = c.Title
		p.X.Label.Text = c.XLabel
		p.Y.Label.Text = c.YLabel
	case pn.YVar != "":
		p.Title.Text = pn.YVar + " ~ " + pn.XVar
	default:
		p.Title.Text = pn.XVar
	}

	if len(c.XTicks) > 0 {
		ticks := make([]plot.Tick, len(c.XTicks))
		for i, t := range c.XTicks {
			ticks[i] = plot.Tick{Value: t.Value, Label: t.Label}
		}
		p.X.Tick.Marker = plot.ConstantTicks(ticks)
	}

	for _, m := range pn.Marks {
		switch m := m.(type) {
		case LineMark:
			if err := addLine(p, c, m); err != nil {
				return nil, err
			}
		case PointMark:
			if err := addPoints(p, m, cm); err != nil {
				return nil, err
			}
		case LabelMark:
			labels, err := plotter.NewLabels(plotter.XYLabels{
				XYs:    makeXYs(m.X, m.Y),
				Labels: m.Labels,
			})
			if err != nil {
				return nil, fmt.Errorf("pcaplot: labels: %w", err)
			}
			p.Add(labels)
		case DensityMark:
			if err := addDensity(p, m); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("pcaplot: unknown mark type %T", m)
		}
	}

	if c.IncludeZeroY && p.Y.Min > 0 {
		p.Y.Min = 0
	}
	// Legend bottom is gonum's default anchor; LegendRight moves it up the
	// right edge. The color bar handles color-scale charts separately.
	if c.Legend == LegendRight {
		p.Legend.Top = true
	}
	return p, nil
}

func addLine(p *plot.Plot, c *Chart, m LineMark) error {
	xys := makeXYs(m.X, m.Y)
	if m.Markers {
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return fmt.Errorf("pcaplot: line: %w", err)
		}
		line.Color = color.RGBA{B: 255, A: 255}
		p.Add(line, points)
		if c.Legend != LegendNone && c.YLabel != "" {
			p.Legend.Add(c.YLabel, line, points)
		}
		return nil
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("pcaplot: line: %w", err)
	}
	line.Color = color.RGBA{B: 255, A: 255}
	p.Add(line)
	if c.Legend != LegendNone && c.YLabel != "" {
		p.Legend.Add(c.YLabel, line)
	}
	return nil
}

// addPoints draws a scatter. With a color map, each point is colored by its
// value; values the map rejects (out of range, NaN) are dropped rather than
// drawn wrong.
func addPoints(p *plot.Plot, m PointMark, cm *DivergingMap) error {
	if cm == nil || m.Color == nil {
		sc, err := plotter.NewScatter(makeXYs(m.X, m.Y))
		if err != nil {
			return fmt.Errorf("pcaplot: scatter: %w", err)
		}
		p.Add(sc)
		return nil
	}

	var xys plotter.XYs
	var colors []color.Color
	for i := range m.X {
		cl, err := cm.At(m.Color[i])
		if err != nil {
			continue // dropped, not an error
		}
		xys = append(xys, plotter.XY{X: m.X[i], Y: m.Y[i]})
		colors = append(colors, cl)
	}
	if len(xys) == 0 {
		return fmt.Errorf("%w: no points within the color scale", ErrInsufficientData)
	}

	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("pcaplot: scatter: %w", err)
	}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{
			Color:  colors[i],
			Radius: vg.Points(2),
			Shape:  draw.CircleGlyph{},
		}
	}
	p.Add(sc)
	return nil
}

func addDensity(p *plot.Plot, m DensityMark) error {
	xs, ys := kernelDensity(m.Values, 128)
	if xs == nil {
		return fmt.Errorf("%w: density over empty column", ErrInsufficientData)
	}
	line, err := plotter.NewLine(makeXYs(xs, rescale(ys, m.Min, m.Max)))
	if err != nil {
		return fmt.Errorf("pcaplot: density: %w", err)
	}
	line.Color = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	p.Add(line)
	return nil
}

// colorBarPlot is the "legend below" strip for color-scale charts.
func colorBarPlot(cm *DivergingMap, label string) *plot.Plot {
	p := plot.New()
	p.HideY()
	p.X.Label.Text = label
	p.X.Padding = 0
	p.Add(&plotter.ColorBar{ColorMap: cm})
	return p
}

func makeXYs(xs, ys []float64) plotter.XYs {
	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	return xys
}

func (g *GonumRenderer) tiles(rows, cols int) draw.Tiles {
	return draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      g.Pad,
		PadY:      g.Pad,
		PadTop:    g.Pad,
		PadBottom: g.Pad,
		PadLeft:   g.Pad,
		PadRight:  g.Pad,
	}
}

func (g *GonumRenderer) drawGrid(plots [][]*plot.Plot, dc draw.Canvas) {
	canvases := plot.Align(plots, g.tiles(len(plots), len(plots[0])), dc)
	for j := range plots {
		for i, p := range plots[j] {
			if p != nil {
				p.Draw(canvases[j][i])
			}
		}
	}
}

func (g *GonumRenderer) writePNG(plots [][]*plot.Plot, path string) error {
	img := vgimg.New(g.Width, g.Height)
	g.drawGrid(plots, draw.New(img))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pcaplot: create %s: %w", path, err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("pcaplot: write %s: %w", path, err)
	}
	return f.Close()
}

// writeSVG draws the grid onto a tdewolff/canvas and writes it out with the
// canvas SVG writer.
func (g *GonumRenderer) writeSVG(plots [][]*plot.Plot, path string) error {
	const mmPerPoint = 25.4 / 72.0
	c := canvas.New(g.Width.Points()*mmPerPoint, g.Height.Points()*mmPerPoint)
	g.drawGrid(plots, renderers.NewGonumPlot(c))

	if err := c.WriteFile(path, renderers.SVG()); err != nil {
		return fmt.Errorf("pcaplot: write %s: %w", path, err)
	}
	return nil
}
