package pcaplot

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// VarianceTable pairs each component with its standard deviation and the
// derived percentage of total variance. Built in a single pass and never
// mutated afterwards.
type VarianceTable struct {
	Component []int     // 1-based component index
	SDev      []float64 // raw standard deviation per component
	Percent   []float64 // sdev² / Σsdev² × 100, rounded to one decimal
}

// Len returns the number of components in the table.
func (t *VarianceTable) Len() int {
	return len(t.Component)
}

// AnnotateVariance derives the percentage-of-total-variance column from a
// sequence of per-component standard deviations.
//
// Each percentage is the squared standard deviation over the sum of all
// squared standard deviations in the input, expressed as a percentage and
// rounded to one decimal place for display. Over the full input the Percent
// column sums to 100 within rounding tolerance.
//
// Note: normalization is over the input as given. Callers that slice the
// standard deviations first (as ScreePlot does) get percentages of the
// sliced total, not of the full component set.
//
// Pure function: the input slice is not modified.
func AnnotateVariance(sdev []float64) (*VarianceTable, error) {
	if len(sdev) == 0 {
		return nil, fmt.Errorf("%w: no standard deviations", ErrInsufficientData)
	}

	squares := make([]float64, len(sdev))
	for i, s := range sdev {
		squares[i] = s * s
	}
	total := floats.Sum(squares)
	if total == 0 {
		return nil, fmt.Errorf("%w: total variance is zero", ErrInsufficientData)
	}

	t := &VarianceTable{
		Component: make([]int, len(sdev)),
		SDev:      make([]float64, len(sdev)),
		Percent:   make([]float64, len(sdev)),
	}
	for i, s := range sdev {
		t.Component[i] = i + 1
		t.SDev[i] = s
		t.Percent[i] = math.Round(squares[i]/total*100*10) / 10
	}
	return t, nil
}
