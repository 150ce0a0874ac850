package pcaplot

import "fmt"

// MatrixConfig controls the scatterplot matrix assembler.
type MatrixConfig struct {
	// DependentName is the display name for the dependent variable.
	// Empty means DefaultDependentName.
	DependentName string
}

// ScatterplotMatrix builds a k×k faceted grid of pairwise component
// scatterplots over the inclusive 1-based component range [from, to].
//
// The score columns in the range are selected, named "PC<index>", and run
// through PairwiseReshape; the dependent variable is replicated positionally
// across every ordered pair, so each off-diagonal facet carries the same M
// color values as its M points. Facet (row j, column i) scatters component
// from+i on x against component from+j on y, colored on the shared diverging
// scale. Diagonal facets hold the 1-D density curve of their column,
// rescaled to the column's value range. Axis titles are dropped (facet
// strips carry the names), no minor gridlines, shared legend below.
//
// Errors: missing parameters are reported by name ("pca", "dependent",
// "from", "to"; indices are 1-based, so zero means absent); an endpoint
// outside the available components or to < from returns ErrIndexOutOfRange;
// a single-column range returns ErrInsufficientData (no ordered pairs); a
// dependent vector not matching the observation count returns
// ErrLengthMismatch.
func ScatterplotMatrix(r *Result, from, to int, dep []float64, cfg MatrixConfig) (*Chart, error) {
	if r == nil {
		return nil, missingParam("pca")
	}
	if dep == nil {
		return nil, missingParam("dependent")
	}
	if from == 0 {
		return nil, missingParam("from")
	}
	if to == 0 {
		return nil, missingParam("to")
	}

	comps := r.Components()
	if from < 1 || from > comps {
		return nil, fmt.Errorf("%w: from %d (result has %d components)", ErrIndexOutOfRange, from, comps)
	}
	if to < 1 || to > comps {
		return nil, fmt.Errorf("%w: to %d (result has %d components)", ErrIndexOutOfRange, to, comps)
	}
	if to < from {
		return nil, fmt.Errorf("%w: to %d < from %d", ErrIndexOutOfRange, to, from)
	}

	k := to - from + 1
	if k < 2 {
		return nil, fmt.Errorf("%w: scatterplot matrix needs at least 2 components, range has %d",
			ErrInsufficientData, k)
	}

	cols := make([][]float64, k)
	names := make([]string, k)
	for i := 0; i < k; i++ {
		col, err := r.Score(from + i)
		if err != nil {
			return nil, err
		}
		cols[i] = col
		names[i] = fmt.Sprintf("PC%d", from+i)
	}

	m := len(cols[0])
	if m == 0 {
		return nil, fmt.Errorf("%w: result has no observations", ErrInsufficientData)
	}
	if len(dep) != m {
		return nil, fmt.Errorf("%w: dependent variable has %d values, result has %d observations",
			ErrLengthMismatch, len(dep), m)
	}

	pairs, density, err := PairwiseReshape(cols, names)
	if err != nil {
		return nil, err
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

	// Facets are sliced straight out of the long-format tables. Pair groups
	// appear in reshape order (i outer, j inner, i ≠ j), m rows each; the
	// dependent variable aligns positionally with every group.
	panels := make([][]*Panel, k)
	for j := range panels {
		panels[j] = make([]*Panel, k)
	}
	group := 0
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if i == j {
				continue
			}
			off := group * m
			panels[j][i] = &Panel{
				XVar: pairs.XVar[off],
				YVar: pairs.YVar[off],
				Marks: []Mark{PointMark{
					X:     pairs.X[off : off+m],
					Y:     pairs.Y[off : off+m],
					Color: dep,
				}},
			}
			group++
		}
	}
	for i := 0; i < k; i++ {
		values := density.Value[i*m : (i+1)*m]
		vlo, vhi := values[0], values[0]
		for _, v := range values[1:] {
			if v < vlo {
				vlo = v
			}
			if v > vhi {
				vhi = v
			}
		}
		panels[i][i] = &Panel{
			XVar:  density.Var[i*m],
			Marks: []Mark{DensityMark{Values: values, Min: vlo, Max: vhi}},
		}
	}

	return &Chart{
		Title:  fmt.Sprintf("Principal Components %d to %d", from, to),
		Legend: LegendBottom,
		Color:  &ColorScale{Min: lo, Max: hi, Label: name},
		Panels: panels,
	}, nil
}
