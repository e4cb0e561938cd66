package math

import "github.com/ajroetker/go-vmath/hwy"

// sinCore and cosCore are the minimax pair on [-pi/4, pi/4].
func sinCore[T hwy.Floats](z T) T {
	zz := T(z * z)
	return z + T(T(z*zz)*paramsFor[T]().sin.Eval(zz))
}

func cosCore[T hwy.Floats](z T) T {
	zz := T(z * z)
	return T(1-T(0.5*zz)) + T(T(zz*zz)*paramsFor[T]().cos.Eval(zz))
}

// Sin returns the sine of the radian argument x.
//
// ReduceTrig maps |x| to a residual in [-pi/4, pi/4] and an even band index;
// bands 0 and 4 use the sine polynomial and bands 2 and 6 the cosine
// polynomial, negated in the lower half-turn. Absolute error is below 2.3e-16
// for |x| <= 1e5 (1e-7 for float32 and |x| <= 100); precision degrades
// gradually for larger arguments.
//
// Special cases are:
//
//	Sin(±0) = ±0
//	Sin(±Inf) = NaN
//	Sin(NaN) = NaN
func Sin[T hwy.Floats](x T) T {
	switch {
	case x == 0 || isNaN(x):
		return x
	case isInf(x):
		return nan[T]()
	}
	r := ReduceTrig(x)
	var s T
	switch r.Tag {
	case 0:
		s = sinCore(r.Core)
	case 2:
		s = cosCore(r.Core)
	case 4:
		s = -sinCore(r.Core)
	default:
		s = -cosCore(r.Core)
	}
	if x < 0 {
		return -s
	}
	return s
}

// Cos returns the cosine of the radian argument x.
//
// Uses the same reduction as Sin; cosine is even so the sign of x is ignored.
//
// Special cases are:
//
//	Cos(±Inf) = NaN
//	Cos(NaN) = NaN
func Cos[T hwy.Floats](x T) T {
	switch {
	case isNaN(x):
		return x
	case isInf(x):
		return nan[T]()
	}
	r := ReduceTrig(x)
	switch r.Tag {
	case 0:
		return cosCore(r.Core)
	case 2:
		return -sinCore(r.Core)
	case 4:
		return -cosCore(r.Core)
	default:
		return sinCore(r.Core)
	}
}

// SinCos returns Sin(x), Cos(x) with a single range reduction.
//
// Special cases are:
//
//	SinCos(±0) = ±0, 1
//	SinCos(±Inf) = NaN, NaN
//	SinCos(NaN) = NaN, NaN
func SinCos[T hwy.Floats](x T) (sin, cos T) {
	switch {
	case x == 0:
		return x, 1
	case isNaN(x):
		return x, x
	case isInf(x):
		return nan[T](), nan[T]()
	}
	r := ReduceTrig(x)
	s, c := sinCore(r.Core), cosCore(r.Core)
	switch r.Tag {
	case 0:
		sin, cos = s, c
	case 2:
		sin, cos = c, -s
	case 4:
		sin, cos = -s, -c
	default:
		sin, cos = -c, s
	}
	if x < 0 {
		sin = -sin
	}
	return sin, cos
}
