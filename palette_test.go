package pcaplot

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"gonum.org/v1/plot/palette"
)

// TestDivergingMap_Endpoints verifies the three anchor colors.
func TestDivergingMap_Endpoints(t *testing.T) {
	m := NewDivergingMap()
	m.SetMin(0)
	m.SetMax(10)

	cases := []struct {
		v    float64
		want color.NRGBA
	}{
		{0, color.NRGBA{R: 0x8b, A: 0xff}},          // dark red
		{5, color.NRGBA{R: 0xff, G: 0xff, A: 0xff}}, // yellow
		{10, color.NRGBA{G: 0x64, A: 0xff}},         // dark green
	}
	for _, tc := range cases {
		c, err := m.At(tc.v)
		if err != nil {
			t.Fatalf("At(%v) failed: %v", tc.v, err)
		}
		if c != tc.want {
			t.Errorf("At(%v): got %v, want %v", tc.v, c, tc.want)
		}
	}
}

// TestDivergingMap_OutOfRange verifies out-of-range values error instead of
// clamping; renderers drop these points.
func TestDivergingMap_OutOfRange(t *testing.T) {
	m := NewDivergingMap()
	m.SetMin(0)
	m.SetMax(1)

	if _, err := m.At(-0.1); !errors.Is(err, palette.ErrUnderflow) {
		t.Errorf("Underflow: got %v", err)
	}
	if _, err := m.At(1.1); !errors.Is(err, palette.ErrOverflow) {
		t.Errorf("Overflow: got %v", err)
	}
	if _, err := m.At(math.NaN()); !errors.Is(err, palette.ErrNaN) {
		t.Errorf("NaN: got %v", err)
	}
}

// TestDivergingMap_UnsetRange verifies an unset range never yields colors.
func TestDivergingMap_UnsetRange(t *testing.T) {
	m := NewDivergingMap()
	if _, err := m.At(0.5); err == nil {
		t.Error("At over unset range must error")
	}
}

// TestDivergingMap_Palette verifies discrete sampling.
func TestDivergingMap_Palette(t *testing.T) {
	m := NewDivergingMap()
	m.SetMin(0)
	m.SetMax(1)

	colors := m.Palette(5).Colors()
	if len(colors) != 5 {
		t.Fatalf("Palette(5): got %d colors", len(colors))
	}
	if colors[0] != color.NRGBA(darkRed) {
		t.Errorf("First color: got %v, want dark red", colors[0])
	}
	if colors[4] != color.NRGBA(darkGreen) {
		t.Errorf("Last color: got %v, want dark green", colors[4])
	}
}

// TestDivergingMap_Alpha verifies opacity is applied to generated colors.
func TestDivergingMap_Alpha(t *testing.T) {
	m := NewDivergingMap()
	m.SetMin(0)
	m.SetMax(1)
	m.SetAlpha(0.5)

	c, err := m.At(0.5)
	if err != nil {
		t.Fatalf("At failed: %v", err)
	}
	if c.(color.NRGBA).A != 0x80 {
		t.Errorf("Alpha: got %v, want 0x80", c.(color.NRGBA).A)
	}
}
