package gaussian

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-scalespace/internal/besselmath"
)

// Kernel is a generated 1-D convolution kernel with support
// [-HalfWidth, +HalfWidth] in grid steps.
type Kernel struct {
	// Coeffs holds 2*HalfWidth+1 taps. Coeffs[HalfWidth+k] is the
	// coefficient at grid offset k, applied in convolution form as
	// sum_k Coeffs[HalfWidth+k]*f(x - k*Spacing).
	Coeffs []float64

	// HalfWidth is the one-sided support in grid steps.
	HalfWidth int

	// Truncated reports that the error-driven support was clipped by
	// Params.MaxHalfWidth. The 0-order coefficients still sum to 1, but
	// the tail mass bound no longer holds.
	Truncated bool
}

// Len returns the number of taps.
func (k Kernel) Len() int {
	return len(k.Coeffs)
}

// At returns the coefficient at the given grid offset, or 0 outside the
// support.
func (k Kernel) At(offset int) float64 {
	i := k.HalfWidth + offset
	if i < 0 || i >= len(k.Coeffs) {
		return 0
	}

	return k.Coeffs[i]
}

// Sum returns the sum of all coefficients, the response to constant input.
func (k Kernel) Sum() float64 {
	return vecmath.Sum(k.Coeffs)
}

// Generate computes the kernel described by p.
//
// The 0-order coefficients are Lindeberg's discrete Gaussian
// exp(-t)*Ik(t) at t = Variance/Spacing^2, extended outward until the
// discarded tail mass drops below MaxError and rescaled to unit sum.
// Derivative orders then apply Order central-difference passes in
// coefficient space; the result keeps the 0-order length. A single
// division by Spacing^Order converts differences to derivatives, and
// NormalizeAcrossScale multiplies by the gamma-normalization factor.
//
// Generation is a pure function of p: identical parameters produce
// bit-identical kernels.
func Generate(p Params) (Kernel, error) {
	if err := p.Validate(); err != nil {
		return Kernel{}, err
	}

	t := p.Variance / (p.Spacing * p.Spacing)

	half, truncated, err := smoothingHalf(t, p.clampedMaxError(), p.MaxHalfWidth)
	if err != nil {
		return Kernel{}, err
	}

	coeffs := mirror(half)
	if p.Order > 0 {
		coeffs = differentiate(coeffs, p.Order)
	}

	if scale := normalization(p); scale != 1 {
		vecmath.ScaleBlockInPlace(coeffs, scale)
	}

	return Kernel{
		Coeffs:    coeffs,
		HalfWidth: len(half) - 1,
		Truncated: truncated,
	}, nil
}

// Smoothing returns a pure smoothing kernel with the given variance and
// tail error bound, unit spacing, and unbounded support.
func Smoothing(variance, maxError float64) (Kernel, error) {
	p := DefaultParams()
	p.Variance = variance
	p.MaxError = maxError

	return Generate(p)
}

// Derivative returns the order-N derivative kernel for the given variance
// with default tail error, unit spacing, and no scale normalization.
func Derivative(variance float64, order int) (Kernel, error) {
	p := DefaultParams()
	p.Variance = variance
	p.Order = order

	return Generate(p)
}

// CentralDifference returns the iterated central first-difference operator
// of the given order as a plain coefficient sequence of length 2*order+1,
// in the same convolution form as Generate. Order 1 is
// [1/(2s), 0, -1/(2s)]; order 0 is the identity [1].
func CentralDifference(order int, spacing float64) ([]float64, error) {
	if order < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}

	if !isFinitePositive(spacing) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpacing, spacing)
	}

	cur := make([]float64, 2*order+1)
	cur[order] = 1

	tmp := make([]float64, len(cur))
	for pass := 0; pass < order; pass++ {
		differencePass(tmp, cur)
		cur, tmp = tmp, cur
	}

	if order > 0 && spacing != 1 {
		vecmath.ScaleBlockInPlace(cur, 1/math.Pow(spacing, float64(order)))
	}

	return cur, nil
}

// smoothingHalf returns the one-sided 0-order coefficients c[0..W],
// rescaled so the full kernel mass c[0] + 2*sum(c[1..W]) is exactly 1.
//
// c[0] and c[1] are always emitted. The tail extends while the accumulated
// mass stays below 1-maxError, stopping early at maxHalfWidth (truncation
// signal) or failing with ErrNotConverged when coefficients underflow or
// the internal safety bound is hit before the target mass is reached.
func smoothingHalf(t, maxError float64, maxHalfWidth int) ([]float64, bool, error) {
	limit := maxHalfWidth
	if limit == 0 {
		limit = maxUnboundedHalfWidth
	}

	half := make([]float64, 2, 16)
	half[0] = besselmath.I0Scaled(t)
	half[1] = besselmath.I1Scaled(t)

	sum := half[0] + 2*half[1]
	truncated := false

	for i := 2; sum < 1-maxError; i++ {
		if i > limit {
			if maxHalfWidth > 0 {
				truncated = true
				break
			}

			return nil, false, ErrNotConverged
		}

		c := besselmath.InScaled(i, t)
		if c <= 0 {
			return nil, false, ErrNotConverged
		}

		half = append(half, c)
		sum += 2 * c
	}

	// Re-accumulate smallest to largest before rescaling.
	sum = 0
	for i := len(half) - 1; i >= 1; i-- {
		sum += 2 * half[i]
	}
	sum += half[0]

	vecmath.ScaleBlockInPlace(half, 1/sum)

	return half, truncated, nil
}

// mirror expands one-sided coefficients into the full centered sequence.
// Both sides share the same values, so symmetry is exact in floating
// point.
func mirror(half []float64) []float64 {
	w := len(half) - 1

	out := make([]float64, 2*w+1)
	out[w] = half[0]
	for k := 1; k <= w; k++ {
		out[w-k] = half[k]
		out[w+k] = half[k]
	}

	return out
}

// differentiate applies order central-difference passes in coefficient
// space. The input is zero-padded by order on each side and trimmed back
// afterwards, so the output length equals the input length and kernel
// sizing stays order-independent.
func differentiate(coeffs []float64, order int) []float64 {
	n := len(coeffs)

	cur := make([]float64, n+2*order)
	copy(cur[order:], coeffs)

	tmp := make([]float64, len(cur))
	for pass := 0; pass < order; pass++ {
		differencePass(tmp, cur)
		cur, tmp = tmp, cur
	}

	out := make([]float64, n)
	copy(out, cur[order:n+order])

	return out
}

// differencePass writes the central first difference of src into dst with
// zero extension at the ends: dst[i] = (src[i+1] - src[i-1]) / 2.
func differencePass(dst, src []float64) {
	for i := range dst {
		var left, right float64
		if i > 0 {
			left = src[i-1]
		}

		if i < len(src)-1 {
			right = src[i+1]
		}

		dst[i] = (right - left) / 2
	}
}

// normalization returns the combined spacing correction and optional
// gamma-normalization factor. Smoothing kernels are returned as-is.
func normalization(p Params) float64 {
	if p.Order == 0 {
		return 1
	}

	scale := 1 / math.Pow(p.Spacing, float64(p.Order))
	if p.NormalizeAcrossScale {
		scale *= math.Pow(p.Variance, p.Gamma*float64(p.Order)/2)
	}

	return scale
}
