package math

import "github.com/ajroetker/go-vmath/hwy"

// erfcLarge returns erfc(ax) for ax > 1.
func erfcLarge[T hwy.Floats](ax T) T {
	p := paramsFor[T]()
	if ax > p.erfcClamp {
		return 0
	}
	u := 1 / ax
	e := expNegSquare(ax)
	if ax < erfcTailStart {
		return T(e * p.erfcMid.Eval(u))
	}
	return T(e/ax) * p.erfcTail.Eval(u)
}

// Erf returns the error function of x.
//
// On |x| <= 1 it evaluates x*P(x^2) with the Maclaurin series of erf. Beyond
// that erf(x) = sign(x)*(1 - erfc(|x|)) reuses the Erfc rational forms.
// Maximum error is 2 ULP.
//
// Special cases are:
//
//	Erf(±0) = ±0
//	Erf(±Inf) = ±1
//	Erf(NaN) = NaN
func Erf[T hwy.Floats](x T) T {
	switch {
	case isNaN(x):
		return x
	case isInf(x):
		return copysign(1, x)
	}
	ax := abs(x)
	if ax <= 1 {
		return T(x * paramsFor[T]().erf.Eval(T(x*x)))
	}
	return copysign(1-erfcLarge(ax), x)
}

// Erfc returns the complementary error function of x.
//
// For |x| > 1 it evaluates exp(-x^2) times a rational function of 1/x, with
// an extra 1/x factor in the asymptotic form above 8. exp(-x^2) is formed
// from a split of x so the rounding of x^2 does not leak into the result.
// Above sqrt of the largest Exp argument (26.641747557046326 for float64,
// 9.419280176959827 for float32) the result is clamped to 0. Negative
// arguments use erfc(-x) = 2 - erfc(x). Relative error is below 2e-15.
//
// Special cases are:
//
//	Erfc(+Inf) = 0
//	Erfc(-Inf) = 2
//	Erfc(NaN) = NaN
func Erfc[T hwy.Floats](x T) T {
	switch {
	case isNaN(x):
		return x
	case isInf(x):
		if x > 0 {
			return 0
		}
		return 2
	}
	ax := abs(x)
	if ax <= 1 {
		return 1 - T(x*paramsFor[T]().erf.Eval(T(x*x)))
	}
	r := erfcLarge(ax)
	if x < 0 {
		return 2 - r
	}
	return r
}
