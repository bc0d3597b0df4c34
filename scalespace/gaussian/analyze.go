package gaussian

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Analysis holds numerically computed properties of a kernel. Moments are
// taken over grid offsets, so physical-unit moments scale by powers of the
// spacing.
type Analysis struct {
	// DCGain is the coefficient sum, the response to a constant input.
	// ~1 for smoothing kernels, ~0 for derivative kernels.
	DCGain float64
	// FirstMoment is sum(k*c[k]). For an unnormalized order-1 kernel at
	// spacing s it approaches -1/s.
	FirstMoment float64
	// SecondMoment is sum(k^2*c[k]). For a 0-order kernel it approaches
	// the scale t = Variance/Spacing^2; for an unnormalized order-2
	// kernel at spacing s, 2/s^2.
	SecondMoment float64
	// L1Norm is sum(|c[k]|).
	L1Norm float64
	// MaxAbs is the largest coefficient magnitude.
	MaxAbs float64
}

// Analyze computes grid-domain properties of the kernel.
func Analyze(k Kernel) Analysis {
	if k.Len() == 0 {
		return Analysis{}
	}

	first := 0.0
	second := 0.0
	l1 := 0.0

	for i, c := range k.Coeffs {
		offset := float64(i - k.HalfWidth)
		first += offset * c
		second += offset * offset * c
		l1 += math.Abs(c)
	}

	return Analysis{
		DCGain:       vecmath.Sum(k.Coeffs),
		FirstMoment:  first,
		SecondMoment: second,
		L1Norm:       l1,
		MaxAbs:       vecmath.MaxAbs(k.Coeffs),
	}
}
