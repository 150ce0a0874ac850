package pcaplot

import (
	"math"
	"testing"
)

// AssertPairTableShape verifies the structural invariants of a pairwise
// reshape over k columns of m rows:
//
//   - exactly k·(k−1)·m rows
//   - exactly k·(k−1) distinct (XVar, YVar) combinations
//   - no combination with XVar == YVar
func AssertPairTableShape(t *testing.T, pairs *PairTable, k, m int) {
	t.Helper()

	wantRows := k * (k - 1) * m
	if pairs.Len() != wantRows {
		t.Errorf("PairTable rows: got %d, want k·(k−1)·m = %d", pairs.Len(), wantRows)
	}

	combos := make(map[[2]string]bool)
	for i := range pairs.XVar {
		if pairs.XVar[i] == pairs.YVar[i] {
			t.Errorf("self pair at row %d: %q", i, pairs.XVar[i])
			return
		}
		combos[[2]string{pairs.XVar[i], pairs.YVar[i]}] = true
	}
	if want := k * (k - 1); len(combos) != want {
		t.Errorf("distinct (XVar, YVar) combinations: got %d, want %d", len(combos), want)
	}

	t.Logf("✓ pair table shape: %d rows, %d combinations (k=%d, m=%d)",
		pairs.Len(), len(combos), k, m)
}

// AssertVariancePercent verifies the Percent column of a variance table sums
// to 100 within tol (rounding to one decimal bounds the drift at 0.05 per
// component).
func AssertVariancePercent(t *testing.T, vt *VarianceTable, tol float64) {
	t.Helper()

	var sum float64
	for _, p := range vt.Percent {
		if p < 0 {
			t.Errorf("negative variance percentage: %.1f", p)
		}
		sum += p
	}
	if math.Abs(sum-100) > tol {
		t.Errorf("variance percentages sum to %.2f, want 100 ± %.2f", sum, tol)
	}

	t.Logf("✓ variance percentages sum to %.2f over %d components", sum, vt.Len())
}
