package pcaplot

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
)

// DivergingMap is a continuous diverging color map from dark red through
// yellow to dark green, converging at the midpoint of [Min, Max]. It
// implements gonum's palette.ColorMap so it can drive scatter glyph colors
// and color bars directly.
//
// At returns palette.ErrUnderflow, palette.ErrOverflow or palette.ErrNaN for
// values outside the range; renderers drop such points rather than clamping.
type DivergingMap struct {
	min, max float64
	alpha    float64
}

var (
	darkRed   = color.NRGBA{R: 0x8b, G: 0x00, B: 0x00, A: 0xff}
	yellow    = color.NRGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
	darkGreen = color.NRGBA{R: 0x00, G: 0x64, B: 0x00, A: 0xff}
)

// NewDivergingMap returns a dark-red → yellow → dark-green map with full
// opacity. Min and Max must be set before calling At.
func NewDivergingMap() *DivergingMap {
	return &DivergingMap{alpha: 1}
}

// At returns the color for value v.
func (m *DivergingMap) At(v float64) (color.Color, error) {
	if math.IsNaN(v) {
		return nil, palette.ErrNaN
	}
	if v < m.min {
		return nil, palette.ErrUnderflow
	}
	if v > m.max {
		return nil, palette.ErrOverflow
	}

	// Degenerate range (constant data): every in-range value sits at the
	// convergence point.
	s := 0.5
	if m.min < m.max {
		s = (v - m.min) / (m.max - m.min)
	}
	var c color.NRGBA
	if s <= 0.5 {
		c = lerpNRGBA(darkRed, yellow, s*2)
	} else {
		c = lerpNRGBA(yellow, darkGreen, (s-0.5)*2)
	}
	c.A = uint8(math.Round(m.alpha * 0xff))
	return c, nil
}

// Min returns the lower bound of the mapped range.
func (m *DivergingMap) Min() float64 { return m.min }

// SetMin sets the lower bound of the mapped range.
func (m *DivergingMap) SetMin(v float64) { m.min = v }

// Max returns the upper bound of the mapped range.
func (m *DivergingMap) Max() float64 { return m.max }

// SetMax sets the upper bound of the mapped range.
func (m *DivergingMap) SetMax(v float64) { m.max = v }

// Alpha returns the opacity of generated colors.
func (m *DivergingMap) Alpha() float64 { return m.alpha }

// SetAlpha sets the opacity of generated colors in [0, 1].
func (m *DivergingMap) SetAlpha(a float64) { m.alpha = a }

// Palette samples the map into n evenly spaced colors.
func (m *DivergingMap) Palette(n int) palette.Palette {
	if n < 2 {
		return divergingPalette{yellow}
	}
	cm := *m
	if cm.min >= cm.max {
		cm.min, cm.max = 0, 1
	}
	colors := make([]color.Color, n)
	for i := range colors {
		v := cm.min + (cm.max-cm.min)*float64(i)/float64(n-1)
		c, err := cm.At(v)
		if err != nil {
			c = yellow
		}
		colors[i] = c
	}
	return divergingPalette(colors)
}

type divergingPalette []color.Color

// Colors returns the palette's colors.
func (p divergingPalette) Colors() []color.Color { return p }

// lerpNRGBA interpolates linearly between two colors, t in [0, 1].
func lerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: 0xff,
	}
}
