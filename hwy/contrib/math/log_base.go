package math

import "github.com/ajroetker/go-vmath/hwy"

// logSpecial handles the inputs every logarithm treats alike. ok is false
// when x is a positive finite number that needs the polynomial path.
func logSpecial[T hwy.Floats](x T) (r T, ok bool) {
	switch {
	case isNaN(x) || x < 0:
		return nan[T](), true
	case x == 0:
		return inf[T](-1), true
	case isInf(x):
		return x, true
	}
	return 0, false
}

// logSeries reduces x and returns atanh(s) = s*P(s^2), with s = t/(2+t) and
// t = m-1, together with the binary exponent e, so that
// ln(x) = e*ln2 + 2*atanh(s).
func logSeries[T hwy.Floats](x T) (sp T, e int) {
	r := ReduceLog2(x)
	s := r.Core / (2 + r.Core)
	return T(s * paramsFor[T]().log.Eval(T(s*s))), r.Tag
}

// Log2 returns the binary logarithm of x.
//
// The argument is reduced to m*2^e with m in [sqrt(0.5), sqrt(2)), and
// log2(m) = 2/ln2 * atanh((m-1)/(m+1)) is evaluated as an odd series that is a
// rational function of m-1. Exact powers of two give exact results.
// Maximum error is 3 ULP.
//
// Special cases are:
//
//	Log2(+Inf) = +Inf
//	Log2(0) = -Inf
//	Log2(x < 0) = NaN
//	Log2(NaN) = NaN
func Log2[T hwy.Floats](x T) T {
	if r, ok := logSpecial(x); ok {
		return r
	}
	sp, e := logSeries(x)
	return T(e) + T(sp*twoLog2E)
}

// Log returns the natural logarithm of x.
//
// Same reduction as Log2; the exponent is scaled by a two-part ln2 so that
// e*ln2Hi is exact. Maximum error is 2 ULP.
//
// Special cases are the same as Log2.
func Log[T hwy.Floats](x T) T {
	if r, ok := logSpecial(x); ok {
		return r
	}
	p := paramsFor[T]()
	sp, e := logSeries(x)
	fe := T(e)
	return T(fe*p.ln2Hi) + (T(2*sp) + T(fe*p.ln2Lo))
}

// Log10 returns the decimal logarithm of x, using a two-part log10(2) for the
// exponent term. Maximum error is 3 ULP.
//
// Special cases are the same as Log2.
func Log10[T hwy.Floats](x T) T {
	if r, ok := logSpecial(x); ok {
		return r
	}
	p := paramsFor[T]()
	sp, e := logSeries(x)
	fe := T(e)
	return T(fe*p.log10Of2Hi) + (T(sp*twoLog10E) + T(fe*p.log10Of2Lo))
}

// Log1p returns the natural logarithm of 1 plus x, accurate for x near zero.
//
// The rounding error of u = 1+x is cancelled by scaling Log(u) with x/(u-1).
// Maximum error is 3 ULP.
//
// Special cases are:
//
//	Log1p(+Inf) = +Inf
//	Log1p(±0) = ±0
//	Log1p(-1) = -Inf
//	Log1p(x < -1) = NaN
//	Log1p(NaN) = NaN
func Log1p[T hwy.Floats](x T) T {
	switch {
	case isNaN(x) || x < -1:
		return nan[T]()
	case x == -1:
		return inf[T](-1)
	case isInf(x):
		return x
	}
	u := 1 + x
	if u == 1 {
		return x
	}
	return T(Log(u)*x) / (u - 1)
}
