package gaussian

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ResponseAt evaluates the kernel transfer function at omega radians per
// grid step by direct DTFT:
//
//	H(w) = sum_k c[k]*exp(-i*w*k)
//
// For a 0-order kernel at scale t this approaches exp(t*(cos w - 1)), the
// transfer function of the discrete Gaussian; for an order-1 kernel the
// response is imaginary, ~i*w/Spacing near DC.
func (k Kernel) ResponseAt(omega float64) complex128 {
	re := 0.0
	im := 0.0

	for i, c := range k.Coeffs {
		phase := omega * float64(i-k.HalfWidth)
		re += c * math.Cos(phase)
		im -= c * math.Sin(phase)
	}

	return complex(re, im)
}

// Response returns the magnitude response |H| sampled on a uniform
// frequency grid of at least nfft points. The grid size is rounded up to a
// power of two no smaller than the kernel length; bin i of the result
// corresponds to w = 2*pi*i/n with n = len(result).
func (k Kernel) Response(nfft int) ([]float64, error) {
	if nfft <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFFTSize, nfft)
	}

	n := nextPowerOf2(nfft)
	for n < k.Len() {
		n *= 2
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("gaussian: fft plan: %w", err)
	}

	// Wrap the kernel circularly so the center tap lands on index 0; the
	// magnitude is shift-invariant.
	in := make([]complex128, n)
	for i, c := range k.Coeffs {
		idx := ((i-k.HalfWidth)%n + n) % n
		in[idx] = complex(c, 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("gaussian: forward fft: %w", err)
	}

	re := make([]float64, n)
	im := make([]float64, n)
	for i, c := range out {
		re[i] = real(c)
		im[i] = imag(c)
	}

	mag := make([]float64, n)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
