// Package gaussian generates discrete derivative-of-Gaussian convolution
// kernels for scale-space filtering.
//
// The 0-order coefficients follow Lindeberg's discrete analogue of the
// Gaussian: at scale t = Variance/Spacing^2 the coefficient at grid offset
// k is exp(-t)*Ik(t), with Ik the modified Bessel function of integer
// order k. Unlike a sampled continuous Gaussian, the discrete analogue
// keeps the semigroup property on the grid (smoothing with t1 then t2
// equals smoothing with t1+t2) and its second moment is exactly t.
//
// Derivative kernels combine the 0-order coefficients with Order passes of
// the central first difference in coefficient space, so a single
// convolution approximates the derivative of the smoothed signal:
//
//	sum_k c[k]*f(x - k*Spacing) ~ (d/dx)^Order (G_t * f)(x)
//
// # Usage
//
// Generate a kernel, then sweep it along one axis of a buffer:
//
//	k, err := gaussian.Generate(gaussian.Params{
//	    Variance: 2, Spacing: 1, Order: 1,
//	    MaxError: 0.001,
//	})
//	// k.Coeffs holds 2*k.HalfWidth+1 taps, anti-symmetric for odd orders.
//
// Support grows with variance until the discarded tail mass drops below
// MaxError. Setting MaxHalfWidth caps the support and marks the result
// Truncated instead of failing, which suits fixed-size neighborhood
// engines.
//
// With NormalizeAcrossScale set, derivative kernels are scaled by
// Variance^(Gamma*Order/2), Lindeberg's gamma-normalization; Gamma = 1
// gives the classical sigma^Order factor that makes derivative magnitudes
// comparable across scales.
//
// This package provides coefficient generation and analysis only. Sweeping
// kernels over image buffers and composing per-axis kernels into N-D
// operators are separate concerns.
package gaussian
