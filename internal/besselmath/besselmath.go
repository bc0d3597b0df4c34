// Package besselmath evaluates modified Bessel functions of the first
// kind. These form the coefficient basis of discrete scale-space kernels:
// Lindeberg's discrete Gaussian at scale t has coefficients exp(-t)*In(t).
//
// I0 and I1 use the Abramowitz & Stegun two-branch approximations (9.8.1
// through 9.8.4): a polynomial in (x/3.75)^2 below the branch threshold and
// an asymptotic series scaled by exp(x)/sqrt(x) above it. Higher orders use
// Miller's downward recurrence with intermediate renormalization.
//
// The Scaled variants return exp(-|x|)*In(x) without ever forming exp(|x|),
// so they stay finite for arguments far beyond the ~709 overflow point of
// the unscaled functions.
package besselmath

import "math"

// branchThreshold separates the small-argument polynomial branch from the
// large-argument asymptotic branch of I0 and I1.
const branchThreshold = 3.75

// Renormalization bounds for Miller's downward recurrence.
const (
	renormLimit  = 1e10
	renormFactor = 1e-10
)

// millerStartFactor controls the recurrence start index 2*(n + f*sqrt(n)).
const millerStartFactor = 10.0

// I0 returns the modified Bessel function of the first kind, order 0,
// evaluated at x. I0 is even, so the sign of x is irrelevant.
func I0(x float64) float64 {
	ax := math.Abs(x)
	if ax < branchThreshold {
		return i0Poly(ax)
	}

	return mathExp(ax) / mathSqrt(ax) * i0Asym(branchThreshold/ax)
}

// I0Scaled returns exp(-|x|)*I0(x).
func I0Scaled(x float64) float64 {
	ax := math.Abs(x)
	if ax < branchThreshold {
		return mathExp(-ax) * i0Poly(ax)
	}

	return i0Asym(branchThreshold/ax) / mathSqrt(ax)
}

// I1 returns the modified Bessel function of the first kind, order 1,
// evaluated at x. I1 is odd: I1(-x) = -I1(x).
func I1(x float64) float64 {
	ax := math.Abs(x)

	var r float64
	if ax < branchThreshold {
		r = i1Poly(ax)
	} else {
		r = mathExp(ax) / mathSqrt(ax) * i1Asym(branchThreshold/ax)
	}

	if x < 0 {
		return -r
	}

	return r
}

// I1Scaled returns exp(-|x|)*I1(x).
func I1Scaled(x float64) float64 {
	ax := math.Abs(x)

	var r float64
	if ax < branchThreshold {
		r = mathExp(-ax) * i1Poly(ax)
	} else {
		r = i1Asym(branchThreshold/ax) / mathSqrt(ax)
	}

	if x < 0 {
		return -r
	}

	return r
}

// In returns the modified Bessel function of the first kind of integer
// order n at x. Negative orders map to their positive counterpart
// (I_{-n} = I_n for integer n), In(n, 0) = 0 for n != 0, and odd orders
// flip sign with x. The function is total: it never panics.
func In(n int, x float64) float64 {
	if n < 0 {
		n = -n
	}

	switch n {
	case 0:
		return I0(x)
	case 1:
		return I1(x)
	}

	if x == 0 {
		return 0
	}

	ax := math.Abs(x)
	num, den := miller(n, ax)

	r := num / den * I0(ax)
	if x < 0 && n%2 == 1 {
		return -r
	}

	return r
}

// InScaled returns exp(-|x|)*In(n, x).
func InScaled(n int, x float64) float64 {
	if n < 0 {
		n = -n
	}

	switch n {
	case 0:
		return I0Scaled(x)
	case 1:
		return I1Scaled(x)
	}

	if x == 0 {
		return 0
	}

	ax := math.Abs(x)
	num, den := miller(n, ax)

	r := num / den * I0Scaled(ax)
	if x < 0 && n%2 == 1 {
		return -r
	}

	return r
}

// miller runs the downward three-term recurrence
// I_{j-1}(x) = I_{j+1}(x) + (2j/x)*I_j(x) from a start index well above n
// and returns the unnormalized values at orders n and 0. The caller fixes
// the normalization against I0. Intermediates are rescaled whenever they
// exceed renormLimit so the recurrence cannot overflow for large n or x.
func miller(n int, ax float64) (num, den float64) {
	tox := 2.0 / ax
	bip := 0.0
	bi := 1.0
	ans := 0.0

	for j := 2 * (n + int(millerStartFactor*math.Sqrt(float64(n)))); j > 0; j-- {
		bim := bip + float64(j)*tox*bi
		bip = bi
		bi = bim

		if math.Abs(bi) > renormLimit {
			ans *= renormFactor
			bi *= renormFactor
			bip *= renormFactor
		}

		if j == n {
			ans = bip
		}
	}

	return ans, bi
}

func i0Poly(ax float64) float64 {
	y := ax / branchThreshold
	y *= y

	return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
}

func i0Asym(y float64) float64 {
	return 0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+
		y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377)))))))
}

func i1Poly(ax float64) float64 {
	y := ax / branchThreshold
	y *= y

	return ax * (0.5 + y*(0.87890594+y*(0.51498869+y*(0.15084934+y*(0.02658733+y*(0.00301532+y*0.00032411))))))
}

func i1Asym(y float64) float64 {
	r := 0.02282967 + y*(-0.02895312+y*(0.01787654-y*0.00420059))

	return 0.39894228 + y*(-0.03988024+y*(-0.00362018+y*(0.00163801+y*(-0.01031555+y*r))))
}
