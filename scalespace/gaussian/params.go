package gaussian

import (
	"fmt"
	"math"
)

// MaxError saturation bounds. Values outside this range clamp silently.
const (
	minMaxError = 0.00001
	maxMaxError = 0.99999
)

// maxUnboundedHalfWidth stops the sizing loop when MaxHalfWidth is 0, so
// degenerate parameter combinations fail with ErrNotConverged instead of
// looping without bound.
const maxUnboundedHalfWidth = 1 << 16

// Params configures kernel generation.
type Params struct {
	// Variance of the Gaussian in physical units squared. The
	// dimensionless scale of the coefficients is Variance/Spacing^2.
	Variance float64

	// Spacing is the grid step in physical units.
	Spacing float64

	// Order of the derivative. 0 generates a pure smoothing kernel.
	Order int

	// MaxError bounds the tail mass discarded when sizing the 0-order
	// kernel. Values outside [0.00001, 0.99999] saturate at those bounds.
	MaxError float64

	// MaxHalfWidth caps the kernel half-width. 0 means unbounded. A
	// kernel clipped by the cap is marked Truncated, not rejected.
	MaxHalfWidth int

	// NormalizeAcrossScale scales derivative kernels by
	// Variance^(Gamma*Order/2) so their magnitudes stay comparable
	// across scales.
	NormalizeAcrossScale bool

	// Gamma is the normalization blend exponent. 1 gives the classical
	// sigma^Order factor, 0 leaves derivatives unnormalized even when
	// NormalizeAcrossScale is set.
	Gamma float64
}

// DefaultParams returns the parameters of a unit-variance smoothing kernel
// with 1% tail error and unbounded support.
func DefaultParams() Params {
	return Params{
		Variance: 1,
		Spacing:  1,
		MaxError: 0.01,
		Gamma:    1,
	}
}

// Validate checks that the parameters can produce a kernel.
func (p Params) Validate() error {
	if !isFinitePositive(p.Variance) {
		return fmt.Errorf("%w: %v", ErrInvalidVariance, p.Variance)
	}

	if !isFinitePositive(p.Spacing) {
		return fmt.Errorf("%w: %v", ErrInvalidSpacing, p.Spacing)
	}

	if p.Order < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidOrder, p.Order)
	}

	if math.IsNaN(p.MaxError) {
		return ErrInvalidMaxError
	}

	if p.MaxHalfWidth < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWidthLimit, p.MaxHalfWidth)
	}

	if math.IsNaN(p.Gamma) || math.IsInf(p.Gamma, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidGamma, p.Gamma)
	}

	return nil
}

// clampedMaxError returns MaxError saturated to the supported range.
func (p Params) clampedMaxError() float64 {
	return math.Min(maxMaxError, math.Max(minMaxError, p.MaxError))
}

func isFinitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
