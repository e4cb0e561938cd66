package math

import "github.com/ajroetker/go-vmath/hwy"

// Cbrt returns the cube root of x.
//
// ReduceCbrt splits |x| into m*2^(3q+r) with m in [0.5, 1). A (3, 3) Pade
// approximant gives cbrt(m), the remainder class r selects a cbrt(2) or
// cbrt(4) factor, and Newton steps on y^3 = m*2^r (two for float64, one for
// float32) polish the result before it is scaled by 2^q. Maximum error is
// 1 ULP.
//
// Special cases are:
//
//	Cbrt(±0) = ±0
//	Cbrt(±Inf) = ±Inf
//	Cbrt(NaN) = NaN
func Cbrt[T hwy.Floats](x T) T {
	if x == 0 || isNaN(x) || isInf(x) {
		return x
	}
	p := paramsFor[T]()
	r := ReduceCbrt(abs(x))
	m := r.Core
	y := p.cbrt.Eval(m - 1)
	z := m
	switch r.Rem {
	case 1:
		y *= cbrt2
		z = 2 * m
	case 2:
		y *= cbrt4
		z = 4 * m
	}
	for range p.cbrtNewton {
		y -= (y - z/T(y*y)) / 3
	}
	return copysign(Ldexp(y, r.Tag), x)
}
