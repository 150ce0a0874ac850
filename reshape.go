package pcaplot

import "fmt"

// PairTable is the long-format pairwise reshape of a set of columns: one row
// per (observation, ordered column pair). For k input columns of M rows it
// holds exactly k·(k−1)·M rows: every ordered pair (i, j) with i ≠ j
// contributes the M values of column i as X and column j as Y, tagged with
// the two column names.
type PairTable struct {
	X, Y       []float64
	XVar, YVar []string
}

// Len returns the number of rows in the table.
func (t *PairTable) Len() int {
	return len(t.X)
}

// DensityTable holds each column's own values in long format: one row per
// (observation, column), k·M rows total. It backs the 1-D density display on
// the diagonal of a scatterplot matrix.
type DensityTable struct {
	Value []float64
	Var   []string
}

// Len returns the number of rows in the table.
func (t *DensityTable) Len() int {
	return len(t.Value)
}

// PairwiseReshape turns k parallel columns into the long-format tables a
// faceted scatterplot matrix consumes.
//
// Pair order is deterministic: i ascending outer, j ascending inner, self
// pairs (i == j) skipped; within a pair the original row order is preserved.
// The density table lists columns in input order, rows in original order.
//
// Errors:
//   - ErrInsufficientData when fewer than two columns are supplied (no
//     ordered pairs exist).
//   - ErrLengthMismatch when names and columns disagree in count, or when
//     the columns are ragged.
func PairwiseReshape(cols [][]float64, names []string) (*PairTable, *DensityTable, error) {
	if len(cols) < 2 {
		return nil, nil, fmt.Errorf("%w: pairwise reshape needs at least 2 columns, got %d",
			ErrInsufficientData, len(cols))
	}
	if len(names) != len(cols) {
		return nil, nil, fmt.Errorf("%w: %d columns but %d names",
			ErrLengthMismatch, len(cols), len(names))
	}

	k := len(cols)
	m := len(cols[0])
	for i, c := range cols {
		if len(c) != m {
			return nil, nil, fmt.Errorf("%w: column %q has %d rows, expected %d",
				ErrLengthMismatch, names[i], len(c), m)
		}
	}

	pairRows := k * (k - 1) * m
	pairs := &PairTable{
		X:    make([]float64, 0, pairRows),
		Y:    make([]float64, 0, pairRows),
		XVar: make([]string, 0, pairRows),
		YVar: make([]string, 0, pairRows),
	}
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if i == j {
				continue
			}
			for row := 0; row < m; row++ {
				pairs.X = append(pairs.X, cols[i][row])
				pairs.Y = append(pairs.Y, cols[j][row])
				pairs.XVar = append(pairs.XVar, names[i])
				pairs.YVar = append(pairs.YVar, names[j])
			}
		}
	}

	density := &DensityTable{
		Value: make([]float64, 0, k*m),
		Var:   make([]string, 0, k*m),
	}
	for i := 0; i < k; i++ {
		for row := 0; row < m; row++ {
			density.Value = append(density.Value, cols[i][row])
			density.Var = append(density.Var, names[i])
		}
	}

	return pairs, density, nil
}
