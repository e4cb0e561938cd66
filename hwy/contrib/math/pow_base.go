package math

import "github.com/ajroetker/go-vmath/hwy"

// Pow returns x**y.
//
// For positive x the result is 2**(y*log2(x)). log2(x) is kept as the exact
// exponent e plus the series value g = log2(m), and y*e is formed as an exact
// two-product, so integral powers of two are exact. The remaining error grows
// with |y*g|: about 4 ULP while it stays below 1, and roughly 2*|y*g| ULP
// beyond that.
//
// Special cases (following Go's math.Pow behavior):
//
//	Pow(x, ±0) = 1 for any x
//	Pow(1, y) = 1 for any y
//	Pow(x, 1) = x for any x
//	Pow(NaN, y) = NaN
//	Pow(x, NaN) = NaN
//	Pow(±0, y) = ±Inf for y an odd integer < 0
//	Pow(±0, -Inf) = +Inf
//	Pow(±0, +Inf) = +0
//	Pow(±0, y) = +Inf for finite y < 0 and not an odd integer
//	Pow(±0, y) = ±0 for y an odd integer > 0
//	Pow(±0, y) = +0 for finite y > 0 and not an odd integer
//	Pow(-1, ±Inf) = 1
//	Pow(x, +Inf) = +Inf for |x| > 1
//	Pow(x, -Inf) = +0 for |x| > 1
//	Pow(x, +Inf) = +0 for |x| < 1
//	Pow(x, -Inf) = +Inf for |x| < 1
//	Pow(+Inf, y) = +Inf for y > 0
//	Pow(+Inf, y) = +0 for y < 0
//	Pow(-Inf, y) = Pow(-0, -y)
//	Pow(x, y) = NaN for finite x < 0 and finite non-integer y
func Pow[T hwy.Floats](x, y T) T {
	switch {
	case y == 0 || x == 1:
		return 1
	case y == 1:
		return x
	case isNaN(x) || isNaN(y):
		return nan[T]()
	case x == 0:
		switch {
		case y < 0:
			if isOddInt(y) {
				return copysign(inf[T](1), x)
			}
			return inf[T](1)
		case y > 0:
			if isOddInt(y) {
				return x
			}
			return 0
		}
	case isInf(y):
		switch {
		case x == -1:
			return 1
		case (abs(x) < 1) == (y > 0):
			return 0
		default:
			return inf[T](1)
		}
	case isInf(x):
		if x < 0 {
			return Pow(1/x, -y)
		}
		if y < 0 {
			return 0
		}
		return inf[T](1)
	case y == 0.5:
		return sqrt(x)
	case y == -0.5:
		return 1 / sqrt(x)
	}

	neg := false
	if x < 0 {
		if floor(y) != y {
			return nan[T]()
		}
		neg = isOddInt(y)
		x = -x
	}
	r := powPositive(x, y)
	if neg {
		return -r
	}
	return r
}

// powPositive computes x**y for finite x > 0 and finite nonzero y.
func powPositive[T hwy.Floats](x, y T) T {
	p := paramsFor[T]()
	sp, e := logSeries(x)
	g := T(sp * twoLog2E)
	fe := T(e)

	hi := T(y * fe)
	v := T(y * g)
	s := hi + v
	switch {
	case isNaN(s) || s >= p.exp2Max:
		return inf[T](1)
	case s < p.exp2Min:
		return 0
	}
	// |s| is bounded here, so y is small enough for the split to be safe.
	lo := twoProdErr(y, fe, hi)
	n := floor(s)
	f := T(T(hi-n)+v) + lo
	return Ldexp(p.exp2.Eval(f), int(n))
}

// isOddInt reports whether x is an odd integer.
func isOddInt[T hwy.Floats](x T) bool {
	if abs(x) >= paramsFor[T]().oddIntLimit || floor(x) != x {
		return false
	}
	return int64(x)&1 == 1
}

// split returns hi + lo == a where hi holds the upper half of the significand,
// so that products of halves are exact (Veltkamp splitting).
func split[T hwy.Floats](a T) (hi, lo T) {
	c := T(paramsFor[T]().splitter * a)
	hi = c - T(c-a)
	return hi, a - hi
}

// twoProdErr returns the rounding error of p = a*b, so that a*b == p + err
// exactly (Dekker's product). It does not rely on fused multiply-add.
func twoProdErr[T hwy.Floats](a, b, p T) T {
	ah, al := split(a)
	bh, bl := split(b)
	err := T(ah*bh) - p
	err += T(ah * bl)
	err += T(al * bh)
	return err + T(al*bl)
}
