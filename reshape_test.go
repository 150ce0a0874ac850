package pcaplot

import (
	"errors"
	"testing"
)

func threeColumns() ([][]float64, []string) {
	return [][]float64{
		{1, 2, 3, 4},
		{10, 20, 30, 40},
		{100, 200, 300, 400},
	}, []string{"PC1", "PC2", "PC3"}
}

// TestPairwiseReshape_Shape verifies the k·(k−1)·M row invariant and the
// distinct pair combinations.
func TestPairwiseReshape_Shape(t *testing.T) {
	cols, names := threeColumns()

	pairs, density, err := PairwiseReshape(cols, names)
	if err != nil {
		t.Fatalf("PairwiseReshape failed: %v", err)
	}

	AssertPairTableShape(t, pairs, 3, 4)

	if density.Len() != 3*4 {
		t.Errorf("DensityTable rows: got %d, want k·m = 12", density.Len())
	}
}

// TestPairwiseReshape_Order verifies the deterministic pair order: i
// ascending outer, j ascending inner, self pairs skipped, row order
// preserved within a pair.
func TestPairwiseReshape_Order(t *testing.T) {
	cols, names := threeColumns()

	pairs, _, err := PairwiseReshape(cols, names)
	if err != nil {
		t.Fatalf("PairwiseReshape failed: %v", err)
	}

	wantOrder := [][2]string{
		{"PC1", "PC2"}, {"PC1", "PC3"},
		{"PC2", "PC1"}, {"PC2", "PC3"},
		{"PC3", "PC1"}, {"PC3", "PC2"},
	}
	m := 4
	for g, want := range wantOrder {
		off := g * m
		if pairs.XVar[off] != want[0] || pairs.YVar[off] != want[1] {
			t.Errorf("Group %d: got (%s, %s), want (%s, %s)",
				g, pairs.XVar[off], pairs.YVar[off], want[0], want[1])
		}
	}

	// First group is (PC1, PC2): x from column 1, y from column 2, rows in
	// original order.
	for row := 0; row < m; row++ {
		if pairs.X[row] != cols[0][row] || pairs.Y[row] != cols[1][row] {
			t.Errorf("Row %d of group 0: got (%v, %v), want (%v, %v)",
				row, pairs.X[row], pairs.Y[row], cols[0][row], cols[1][row])
		}
	}
}

// TestPairwiseReshape_DensityOrder verifies column-major layout of the
// density table.
func TestPairwiseReshape_DensityOrder(t *testing.T) {
	cols, names := threeColumns()

	_, density, err := PairwiseReshape(cols, names)
	if err != nil {
		t.Fatalf("PairwiseReshape failed: %v", err)
	}

	m := 4
	for i, name := range names {
		for row := 0; row < m; row++ {
			idx := i*m + row
			if density.Var[idx] != name {
				t.Fatalf("density.Var[%d]: got %q, want %q", idx, density.Var[idx], name)
			}
			if density.Value[idx] != cols[i][row] {
				t.Fatalf("density.Value[%d]: got %v, want %v", idx, density.Value[idx], cols[i][row])
			}
		}
	}
}

// TestPairwiseReshape_TwoColumns is the minimal case: 2 pairs.
func TestPairwiseReshape_TwoColumns(t *testing.T) {
	pairs, _, err := PairwiseReshape([][]float64{{1, 2}, {3, 4}}, []string{"a", "b"})
	if err != nil {
		t.Fatalf("PairwiseReshape failed: %v", err)
	}
	AssertPairTableShape(t, pairs, 2, 2)
}

// TestPairwiseReshape_Errors covers the rejection paths.
func TestPairwiseReshape_Errors(t *testing.T) {
	if _, _, err := PairwiseReshape([][]float64{{1, 2}}, []string{"a"}); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("Single column: expected ErrInsufficientData, got %v", err)
	}

	if _, _, err := PairwiseReshape([][]float64{{1}, {2}}, []string{"a"}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Name count mismatch: expected ErrLengthMismatch, got %v", err)
	}

	ragged := [][]float64{{1, 2, 3}, {1, 2}}
	if _, _, err := PairwiseReshape(ragged, []string{"a", "b"}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Ragged columns: expected ErrLengthMismatch, got %v", err)
	}
}
