// Package pcaplot turns already-computed PCA results into renderable charts.
//
// # Overview
//
// pcaplot does no statistics of its own beyond a percentage column: PCA is
// supplied by the caller (gonum's stat.PC fits naturally, see FromPC), and
// rendering is delegated to a Renderer. What lives here is the glue a PCA
// workflow always ends up writing by hand: reshaping score matrices into
// the long-format tables faceted plots want, annotating variance, and
// assembling three standard charts:
//
//   - ScreePlot          - line plot of explained variance per component
//   - ComponentScatter   - 2-D scatter of two components, colored by a
//     dependent variable
//   - ScatterplotMatrix  - faceted grid of pairwise component scatters with
//     density curves on the diagonal
//
// # Architecture
//
// Leaves first:
//
//   - variance.go  - VarianceTable: percent-of-total-variance annotation
//   - reshape.go   - PairTable / DensityTable: the long-format pairwise reshape
//   - density.go   - Gaussian kernel density estimate for diagonal facets
//   - chart.go     - the chart specification model and Renderer interface
//   - palette.go   - diverging dark-red → yellow → dark-green color map
//   - scree.go, scatter.go, matrix.go - the three assemblers
//   - render.go    - GonumRenderer: gonum/plot backend (.png via vgimg,
//     .svg via tdewolff/canvas)
//
// Assemblers are pure: they validate, reshape, and return an immutable
// *Chart. Nothing here touches files, network, or shared state, so every
// function is safe to call from concurrent goroutines.
//
// # Quick Start
//
//	var pc stat.PC
//	if !pc.PrincipalComponents(data, nil) {
//	    log.Fatal("PCA failed")
//	}
//	res, err := pcaplot.FromPC(&pc, data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	chart, err := pcaplot.ComponentScatter(res, dep, 1, 2, pcaplot.ScatterConfig{
//	    DependentName: "Petal Width",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := pcaplot.NewGonumRenderer().Render(chart, "pc1-pc2.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// # The Pairwise Reshape
//
// The one non-trivial transformation is PairwiseReshape: k columns of M rows
// become a long table of every ordered column pair (i ≠ j), each pair
// contributing M rows tagged with the two column names. Invariants:
//
//   - exactly k·(k−1) pair groups, k·(k−1)·M rows total
//   - no group with XVar == YVar
//   - pair order: i ascending outer, j ascending inner; row order preserved
//
// The parallel DensityTable (k·M rows) carries each column's raw values for
// the diagonal density display.
//
// # Error Handling
//
// Four sentinel kinds, matched with errors.Is: ErrMissingParameter (named
// per argument), ErrInsufficientData, ErrIndexOutOfRange, ErrLengthMismatch.
// Errors are synchronous and final; no partial charts.
//
// # Testing
//
// Assertion helpers validate reshape invariants in downstream tests:
//
//	func TestMyPipeline(t *testing.T) {
//	    pairs, _, err := pcaplot.PairwiseReshape(cols, names)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    pcaplot.AssertPairTableShape(t, pairs, len(cols), len(cols[0]))
//	}
//
// # See Also
//
//   - examples/iris - end-to-end run over an iris-shaped dataset
//   - cmd/pcaplot  - CLI: CSV in, charts out
package pcaplot
