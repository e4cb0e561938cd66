package math

import "github.com/ajroetker/go-vmath/hwy"

// Exp2 returns 2**x.
//
// The argument is split by ReduceExp2 into n + f with f in [0, 1); 2**f comes
// from a Taylor polynomial (degree 16 for float64, 9 for float32) and the
// result is scaled by 2**n with Ldexp. Maximum error is 1 ULP.
//
// Special cases are:
//
//	Exp2(+Inf) = +Inf
//	Exp2(-Inf) = 0
//	Exp2(NaN) = NaN
//	Exp2(x) = +Inf for x >= 1024 (128 for float32)
//	Exp2(x) = 0 below the smallest subnormal exponent
func Exp2[T hwy.Floats](x T) T {
	p := paramsFor[T]()
	switch {
	case isNaN(x):
		return x
	case x >= p.exp2Max:
		return inf[T](1)
	case x < p.exp2Min:
		return 0
	}
	r := ReduceExp2(x)
	return Ldexp(p.exp2.Eval(r.Core), r.Tag)
}

// Exp returns e**x.
//
// With k = floor(x*log2(e)) the residual r = x - k*ln2 is computed with a
// two-part ln2 so it is exact to working precision, then e**r = 2**(r*log2(e))
// reuses the Exp2 polynomial. Maximum error is 2 ULP.
//
// Special cases are:
//
//	Exp(+Inf) = +Inf
//	Exp(-Inf) = 0
//	Exp(NaN) = NaN
//	Exp(x) = +Inf above ln(MaxFloat)
//	Exp(x) = 0 below ln(SmallestNonzeroFloat)
func Exp[T hwy.Floats](x T) T {
	p := paramsFor[T]()
	switch {
	case isNaN(x):
		return x
	case x > p.expMax:
		return inf[T](1)
	case x < p.expMin:
		return 0
	}
	k := floor(T(x * log2E))
	r := T(x-T(k*p.ln2Hi)) - T(k*p.ln2Lo)
	return Ldexp(p.exp2.Eval(T(r*log2E)), int(k))
}

// Exp10 returns 10**x.
//
// The reduction mirrors Exp with a two-part log10(2): k = floor(x*log2(10)),
// r = x - k*log10(2) and 10**r = 2**(r*log2(10)). Maximum error is 2 ULP.
//
// Special cases are the same as Exp.
func Exp10[T hwy.Floats](x T) T {
	p := paramsFor[T]()
	switch {
	case isNaN(x):
		return x
	case x > p.exp10Max:
		return inf[T](1)
	case x < p.exp10Min:
		return 0
	}
	k := floor(T(x * log2Ten))
	r := T(x-T(k*p.lg102Hi)) - T(k*p.lg102Lo)
	return Ldexp(p.exp2.Eval(T(r*log2Ten)), int(k))
}

// Expm1 returns e**x - 1, accurate for x near zero.
//
// For |x| < 0.5 it evaluates x*P(x) with the Taylor series of (e**x - 1)/x;
// elsewhere the cancellation in Exp(x) - 1 is harmless. Maximum error is 3 ULP.
//
// Special cases are:
//
//	Expm1(+Inf) = +Inf
//	Expm1(-Inf) = -1
//	Expm1(NaN) = NaN
func Expm1[T hwy.Floats](x T) T {
	if isNaN(x) {
		return x
	}
	if abs(x) < expm1Threshold {
		return T(x * paramsFor[T]().expm1.Eval(x))
	}
	return Exp(x) - 1
}

// expNegSquare returns exp(-x*x) without losing the low bits of x*x: x is split
// at a multiple of 1/16 so that xh*xh is exact, and the remainder
// (x-xh)(x+xh) goes through a second, small exponential.
func expNegSquare[T hwy.Floats](x T) T {
	xh := floor(T(x*16)) / 16
	return T(Exp(-T(xh*xh)) * Exp(-T(T(x-xh)*T(x+xh))))
}
