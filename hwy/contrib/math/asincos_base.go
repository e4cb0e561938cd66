package math

import "github.com/ajroetker/go-vmath/hwy"

// Asin returns the arcsine, in radians, of x, computed as
// atan(x / sqrt((1-x)(1+x))). Forming (1-x)(1+x) instead of 1-x*x keeps
// full precision near |x| = 1.
//
// Special cases are:
//
//	Asin(±0) = ±0
//	Asin(±1) = ±Pi/2
//	Asin(x) = NaN if x < -1 or x > 1
func Asin[T hwy.Floats](x T) T {
	switch {
	case x == 0 || isNaN(x):
		return x
	case abs(x) > 1:
		return nan[T]()
	}
	d := sqrt(T(T(1-x) * T(1+x)))
	if d == 0 {
		return copysign(T(piOver2), x)
	}
	return Atan(x / d)
}

// Acos returns the arccosine, in radians, of x, computed as
// 2*atan(sqrt((1-x)/(1+x))).
//
// Special cases are:
//
//	Acos(1) = 0
//	Acos(-1) = Pi
//	Acos(x) = NaN if x < -1 or x > 1
func Acos[T hwy.Floats](x T) T {
	switch {
	case isNaN(x):
		return x
	case abs(x) > 1:
		return nan[T]()
	case x == -1:
		return T(pi)
	}
	return 2 * Atan(sqrt(T(1-x)/T(1+x)))
}
