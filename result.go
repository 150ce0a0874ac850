package pcaplot

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Result holds an already-computed principal component analysis. pcaplot
// never computes a PCA itself; it only arranges the numbers a PCA routine
// produced into shapes a plotting backend understands.
//
// Conventions:
//   - SDev[i] is the standard deviation of component i+1 (components are
//     addressed 1-based everywhere in this package, matching the usual
//     "PC1, PC2, ..." naming).
//   - Scores is observations × components: row = one observation projected
//     into component space.
//   - Loadings (variables × components) is carried for callers that want
//     it; no assembler in this package reads it.
type Result struct {
	SDev     []float64
	Scores   *mat.Dense
	Loadings *mat.Dense
}

// Components returns the number of principal components in the result.
func (r *Result) Components() int {
	return len(r.SDev)
}

// Observations returns the number of observation rows in the score matrix.
func (r *Result) Observations() int {
	if r.Scores == nil {
		return 0
	}
	rows, _ := r.Scores.Dims()
	return rows
}

// Score returns a copy of the score column for the given 1-based component
// index. Returns ErrIndexOutOfRange when the index does not address a column
// of the score matrix.
func (r *Result) Score(comp int) ([]float64, error) {
	if r.Scores == nil {
		return nil, fmt.Errorf("%w: result has no score matrix", ErrInsufficientData)
	}
	rows, cols := r.Scores.Dims()
	if comp < 1 || comp > cols {
		return nil, fmt.Errorf("%w: component %d (result has %d)", ErrIndexOutOfRange, comp, cols)
	}
	out := make([]float64, rows)
	mat.Col(out, comp-1, r.Scores)
	return out, nil
}

// FromPC builds a Result from a fitted gonum stat.PC and the data matrix it
// was fitted on. The score matrix is the column-centered data projected onto
// the principal directions; SDev is the square root of the per-component
// variances.
//
// Example:
//
//	var pc stat.PC
//	if !pc.PrincipalComponents(data, nil) {
//	    // decomposition failed
//	}
//	res, err := pcaplot.FromPC(&pc, data)
func FromPC(pc *stat.PC, data mat.Matrix) (*Result, error) {
	if pc == nil {
		return nil, missingParam("pc")
	}
	if data == nil {
		return nil, missingParam("data")
	}

	var vecs mat.Dense
	pc.VectorsTo(&vecs)
	vars := pc.VarsTo(nil)
	if len(vars) == 0 {
		return nil, fmt.Errorf("%w: principal components not computed", ErrInsufficientData)
	}

	rows, cols := data.Dims()

	// stat.PC works on column-centered data, so center before projecting.
	centered := mat.NewDense(rows, cols, nil)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, data)
		mean := stat.Mean(col, nil)
		for i, v := range col {
			centered.Set(i, j, v-mean)
		}
	}

	var scores mat.Dense
	scores.Mul(centered, &vecs)

	sdev := make([]float64, len(vars))
	for i, v := range vars {
		sdev[i] = math.Sqrt(v)
	}

	return &Result{SDev: sdev, Scores: &scores, Loadings: &vecs}, nil
}
