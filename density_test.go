package pcaplot

import (
	"math"
	"testing"
)

// TestKernelDensity_Grid verifies the evaluation grid spans the data.
func TestKernelDensity_Grid(t *testing.T) {
	values := []float64{-2, -1, 0, 1, 2}

	xs, ys := kernelDensity(values, 64)
	if len(xs) != 64 || len(ys) != 64 {
		t.Fatalf("Grid: got %d/%d points, want 64", len(xs), len(ys))
	}
	if xs[0] != -2 || math.Abs(xs[63]-2) > 1e-12 {
		t.Errorf("Grid span: got [%v, %v], want [-2, 2]", xs[0], xs[63])
	}
	for i, y := range ys {
		if y < 0 || math.IsNaN(y) {
			t.Fatalf("ys[%d] = %v; densities must be non-negative", i, y)
		}
	}
}

// TestKernelDensity_PeakAtCenter verifies symmetric data peaks in the middle
// of the grid.
func TestKernelDensity_PeakAtCenter(t *testing.T) {
	values := []float64{-1, -0.5, 0, 0, 0, 0.5, 1}

	xs, ys := kernelDensity(values, 101)
	peak := 0
	for i, y := range ys {
		if y > ys[peak] {
			peak = i
		}
	}
	if math.Abs(xs[peak]) > 0.1 {
		t.Errorf("Peak at x=%v, want near 0", xs[peak])
	}
}

// TestKernelDensity_Degenerate verifies empty and constant inputs do not
// blow up.
func TestKernelDensity_Degenerate(t *testing.T) {
	if xs, _ := kernelDensity(nil, 64); xs != nil {
		t.Error("Empty input must yield a nil grid")
	}
	if xs, _ := kernelDensity([]float64{1}, 1); xs != nil {
		t.Error("Single-point grid must yield a nil grid")
	}

	xs, ys := kernelDensity([]float64{3, 3, 3}, 16)
	if len(xs) != 16 {
		t.Fatalf("Constant input: got %d points", len(xs))
	}
	for i, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			t.Fatalf("ys[%d] = %v for constant input", i, y)
		}
	}
}

// TestRescale verifies the overlay mapping: peak lands at hi, zero at lo.
func TestRescale(t *testing.T) {
	out := rescale([]float64{0, 1, 2, 4}, 10, 20)
	if out[3] != 20 {
		t.Errorf("Peak: got %v, want 20", out[3])
	}
	if out[0] != 10 {
		t.Errorf("Zero: got %v, want 10", out[0])
	}
	if out[1] != 12.5 || out[2] != 15 {
		t.Errorf("Interior: got %v", out)
	}

	flat := rescale([]float64{0, 0}, 5, 6)
	if flat[0] != 5 || flat[1] != 5 {
		t.Errorf("All-zero curve: got %v, want [5 5]", flat)
	}
}
