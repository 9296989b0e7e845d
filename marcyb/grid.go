package marcyb

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// arange returns evenly spaced values in the half-open interval
// [start, stop), with the given step.
func arange(start, stop, step float64) []float64 {
	n := int(math.Ceil((stop - start) / step))
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}

	grid := make([]float64, n)
	floats.Span(grid, start, start+step*float64(n-1))
	return grid
}
