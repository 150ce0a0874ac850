package pcaplot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func renderTo(t *testing.T, chart *Chart, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := NewGonumRenderer().Render(chart, path); err != nil {
		t.Fatalf("Render %s failed: %v", name, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat %s failed: %v", name, err)
	}
	if info.Size() == 0 {
		t.Fatalf("%s is empty", name)
	}
	t.Logf("✓ rendered %s (%d bytes)", name, info.Size())
	return path
}

// TestGonumRenderer_Scree renders the line chart to PNG.
func TestGonumRenderer_Scree(t *testing.T) {
	chart, err := ScreePlot(screeResult([]float64{5, 3, 2, 1, 0.8, 0.5, 0.3, 0.2, 0.1, 0.05}), ScreeConfig{})
	if err != nil {
		t.Fatalf("ScreePlot failed: %v", err)
	}
	renderTo(t, chart, "scree.png")
}

// TestGonumRenderer_Scatter renders the colored scatter to PNG and SVG.
func TestGonumRenderer_Scatter(t *testing.T) {
	dep := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	chart, err := ComponentScatter(scatterResult(), dep, 1, 2, ScatterConfig{DependentName: "Yield"})
	if err != nil {
		t.Fatalf("ComponentScatter failed: %v", err)
	}
	renderTo(t, chart, "scatter.png")
	renderTo(t, chart, "scatter.svg")
}

// TestGonumRenderer_Matrix renders the faceted grid.
func TestGonumRenderer_Matrix(t *testing.T) {
	r, dep := irisShaped()
	chart, err := ScatterplotMatrix(r, 1, 3, dep, MatrixConfig{})
	if err != nil {
		t.Fatalf("ScatterplotMatrix failed: %v", err)
	}
	renderTo(t, chart, "matrix.png")
}

// TestGonumRenderer_Errors covers the rejection paths.
func TestGonumRenderer_Errors(t *testing.T) {
	g := NewGonumRenderer()

	if err := g.Render(nil, "out.png"); !errors.Is(err, ErrMissingParameter) {
		t.Errorf("nil chart: expected ErrMissingParameter, got %v", err)
	}
	if err := g.Render(&Chart{}, "out.png"); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("empty chart: expected ErrInsufficientData, got %v", err)
	}

	chart, err := ScreePlot(screeResult([]float64{2, 1}), ScreeConfig{Components: 2})
	if err != nil {
		t.Fatalf("ScreePlot failed: %v", err)
	}
	if err := g.Render(chart, filepath.Join(t.TempDir(), "out.pdf")); err == nil {
		t.Error("Unsupported extension must error")
	}
}
