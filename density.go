package pcaplot

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// kernelDensity estimates the density of values with a Gaussian kernel over
// an evenly spaced grid of points spanning [min(values), max(values)].
// Bandwidth is Silverman's rule of thumb: 1.06·σ·n^(-1/5).
func kernelDensity(values []float64, points int) (xs, ys []float64) {
	if len(values) == 0 || points < 2 {
		return nil, nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	h := 1.06 * stat.StdDev(values, nil) * math.Pow(float64(len(values)), -0.2)
	if h <= 0 || math.IsNaN(h) {
		// Degenerate input (constant column). Any positive bandwidth gives
		// a single smooth bump around the shared value.
		h = 1
	}

	xs = make([]float64, points)
	ys = make([]float64, points)
	step := (hi - lo) / float64(points-1)
	norm := 1 / (float64(len(values)) * h * math.Sqrt(2*math.Pi))

	for i := range xs {
		x := lo + float64(i)*step
		xs[i] = x
		var sum float64
		for _, v := range values {
			t := (x - v) / h
			sum += math.Exp(-0.5 * t * t)
		}
		ys[i] = norm * sum
	}
	return xs, ys
}

// rescale maps ys linearly so its maximum lands at hi and zero lands at lo.
// Used to overlay a density curve onto the value range of its column.
func rescale(ys []float64, lo, hi float64) []float64 {
	var peak float64
	for _, y := range ys {
		if y > peak {
			peak = y
		}
	}
	out := make([]float64, len(ys))
	if peak == 0 {
		for i := range out {
			out[i] = lo
		}
		return out
	}
	for i, y := range ys {
		out[i] = lo + y/peak*(hi-lo)
	}
	return out
}
