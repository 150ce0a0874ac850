package pcaplot

import "fmt"

// DefaultScreeComponents is how many leading components a scree plot shows
// when the config does not say otherwise.
const DefaultScreeComponents = 10

// ScreeConfig controls the scree plot assembler.
type ScreeConfig struct {
	// Components is the number of leading components to display.
	// Zero means DefaultScreeComponents.
	Components int
}

// DefaultScreeConfig returns the standard 10-component window.
func DefaultScreeConfig() ScreeConfig {
	return ScreeConfig{Components: DefaultScreeComponents}
}

// ScreePlot builds a scree-style chart of explained variance: a connected
// line with markers over the first cfg.Components standard deviations, each
// point labeled with its percentage of the displayed total.
//
// The windowing is an explicit, checked policy: a result with fewer
// components than the window fails fast with ErrInsufficientData instead of
// being padded or silently truncated. Percentages are normalized over the
// displayed window, not the full component set, so the labels on a 10-of-30
// result describe the plotted subset only.
//
// Chart styling: y-axis includes zero, x ticks exactly at each integer
// component index, no minor gridlines, legend below.
func ScreePlot(r *Result, cfg ScreeConfig) (*Chart, error) {
	if r == nil {
		return nil, missingParam("pca")
	}

	n := cfg.Components
	if n == 0 {
		n = DefaultScreeComponents
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: scree window must be positive, got %d", ErrInsufficientData, n)
	}
	if len(r.SDev) < n {
		return nil, fmt.Errorf("%w: scree plot over %d components, result has %d",
			ErrInsufficientData, n, len(r.SDev))
	}

	vt, err := AnnotateVariance(r.SDev[:n])
	if err != nil {
		return nil, err
	}

	xs := make([]float64, n)
	labels := make([]string, n)
	ticks := make([]Tick, n)
	for i := 0; i < n; i++ {
		xs[i] = float64(vt.Component[i])
		labels[i] = fmt.Sprintf("%.1f%%", vt.Percent[i])
		ticks[i] = Tick{Value: xs[i], Label: fmt.Sprintf("%d", vt.Component[i])}
	}

	panel := &Panel{
		Marks: []Mark{
			LineMark{X: xs, Y: vt.SDev, Markers: true},
			LabelMark{X: xs, Y: vt.SDev, Labels: labels},
		},
	}

	return &Chart{
		Title:        "Explained Variance",
		XLabel:       "PCA",
		YLabel:       "Variances",
		IncludeZeroY: true,
		XTicks:       ticks,
		Legend:       LegendBottom,
		Panels:       [][]*Panel{{panel}},
	}, nil
}
