package testutil

import "math"

// Sum returns the plain sequential sum of data. Tests use it as an
// independent cross-check against optimized summation in library code.
func Sum(data []float64) float64 {
	s := 0.0
	for _, v := range data {
		s += v
	}
	return s
}

// Moment returns the order-th moment of data around its center element,
// sum of (i-center)^order * data[i], with unit grid spacing. Data is
// expected to have odd length.
func Moment(data []float64, order int) float64 {
	center := len(data) / 2
	s := 0.0
	for i, v := range data {
		s += math.Pow(float64(i-center), float64(order)) * v
	}
	return s
}

// Convolve returns the full discrete convolution of a and b, with length
// len(a)+len(b)-1. Returns nil if either input is empty.
func Convolve(a, b []float64) []float64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]float64, len(a)+len(b)-1)
	for i, av := range a {
		for j, bv := range b {
			out[i+j] += av * bv
		}
	}
	return out
}
