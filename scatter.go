package pcaplot

import "fmt"

// DefaultDependentName labels the dependent variable when the caller does
// not supply a display name.
const DefaultDependentName = "Dependent Variable"

// ScatterConfig controls the component scatter assembler.
type ScatterConfig struct {
	// DependentName is the display name for the dependent variable.
	// Empty means DefaultDependentName.
	DependentName string
}

// ComponentScatter builds a 2-D scatter of two score columns, colored by the
// dependent variable on the continuous diverging dark-red → yellow →
// dark-green scale.
//
// All four required inputs are checked independently, so a missing one is
// reported by name: "pca", "dependent", "x_axis", "y_axis" (component
// indices are 1-based, so zero means absent). An index beyond the available
// components returns ErrIndexOutOfRange; a dependent vector whose length
// does not match the observation count returns ErrLengthMismatch; alignment
// is positional, and a silent mismatch would color points with the wrong
// values.
//
// Chart styling: axes labeled "PC<index>", color values outside the scale
// dropped at render time, no minor gridlines, legend below.
func ComponentScatter(r *Result, dep []float64, xAxis, yAxis int, cfg ScatterConfig) (*Chart, error) {
	if r == nil {
		return nil, missingParam("pca")
	}
	if dep == nil {
		return nil, missingParam("dependent")
	}
	if xAxis == 0 {
		return nil, missingParam("x_axis")
	}
	if yAxis == 0 {
		return nil, missingParam("y_axis")
	}

	xs, err := r.Score(xAxis)
	if err != nil {
		return nil, fmt.Errorf("x_axis: %w", err)
	}
	ys, err := r.Score(yAxis)
	if err != nil {
		return nil, fmt.Errorf("y_axis: %w", err)
	}
	if len(dep) != len(xs) {
		return nil, fmt.Errorf("%w: dependent variable has %d values, result has %d observations",
			ErrLengthMismatch, len(dep), len(xs))
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: result has no observations", ErrInsufficientData)
	}

	name := cfg.DependentName
	if name == "" {
		name = DefaultDependentName
	}

	lo, hi := dep[0], dep[0]
	for _, v := range dep[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	panel := &Panel{
		Marks: []Mark{
			PointMark{X: xs, Y: ys, Color: dep},
		},
	}

	return &Chart{
		XLabel: fmt.Sprintf("PC%d", xAxis),
		YLabel: fmt.Sprintf("PC%d", yAxis),
		Legend: LegendBottom,
		Color:  &ColorScale{Min: lo, Max: hi, Label: name},
		Panels: [][]*Panel{{panel}},
	}, nil
}
