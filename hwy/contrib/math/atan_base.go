package math

import "github.com/ajroetker/go-vmath/hwy"

// atanCore evaluates atan on [0, 0.66] as x + x*z*R(z), z = x^2.
func atanCore[T hwy.Floats](x T) T {
	z := T(x * x)
	z = T(z * paramsFor[T]().atan.Eval(z))
	return T(x*z) + x
}

// atanUnit evaluates atan on [0, 1]. Above 0.66 it uses
// atan(x) = pi/4 + atan((x-1)/(x+1)) to stay in the accurate range.
func atanUnit[T hwy.Floats](x T) T {
	if x <= atanShift {
		return atanCore(x)
	}
	return T(piOver4+atanCore(T((x-1)/(x+1)))) + 0.5*atanMore
}

// Atan returns the arctangent, in radians, of x.
//
// ReduceAtan folds |x| > 1 onto 1/|x| using atan(x) = pi/2 - atan(1/x); on
// [0, 1] a (4, 5) rational in x^2 is used and the sign of x is restored at the
// end. Maximum error is 2 ULP.
//
// Special cases are:
//
//	Atan(±0) = ±0
//	Atan(±Inf) = ±Pi/2
//	Atan(NaN) = NaN
func Atan[T hwy.Floats](x T) T {
	switch {
	case x == 0 || isNaN(x):
		return x
	case isInf(x):
		return copysign(T(piOver2), x)
	}
	r := ReduceAtan(x)
	y := atanUnit(r.Core)
	if r.Tag&AtanReciprocal != 0 {
		y = T(piOver2-y) + atanMore
	}
	return copysign(y, x)
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant of the return value.
//
// Special cases are (in order):
//
//	Atan2(y, NaN) = NaN
//	Atan2(NaN, x) = NaN
//	Atan2(+0, x>=0) = +0
//	Atan2(-0, x>=0) = -0
//	Atan2(+0, x<=-0) = +Pi
//	Atan2(-0, x<=-0) = -Pi
//	Atan2(y>0, 0) = +Pi/2
//	Atan2(y<0, 0) = -Pi/2
//	Atan2(+Inf, +Inf) = +Pi/4
//	Atan2(-Inf, +Inf) = -Pi/4
//	Atan2(+Inf, -Inf) = 3Pi/4
//	Atan2(-Inf, -Inf) = -3Pi/4
//	Atan2(y, +Inf) = 0
//	Atan2(y>0, -Inf) = +Pi
//	Atan2(y<0, -Inf) = -Pi
//	Atan2(+Inf, x) = +Pi/2
//	Atan2(-Inf, x) = -Pi/2
func Atan2[T hwy.Floats](y, x T) T {
	switch {
	case isNaN(y) || isNaN(x):
		return nan[T]()
	case y == 0:
		if x >= 0 && !signbit(x) {
			return copysign(0, y)
		}
		return copysign(T(pi), y)
	case x == 0:
		return copysign(T(piOver2), y)
	case isInf(x):
		if x > 0 {
			if isInf(y) {
				return copysign(T(piOver4), y)
			}
			return copysign(0, y)
		}
		if isInf(y) {
			return copysign(T(3*piOver4), y)
		}
		return copysign(T(pi), y)
	case isInf(y):
		return copysign(T(piOver2), y)
	}

	q := Atan(y / x)
	if x < 0 {
		if q <= 0 {
			return q + T(pi)
		}
		return q - T(pi)
	}
	return q
}
