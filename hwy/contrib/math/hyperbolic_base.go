package math

import "github.com/ajroetker/go-vmath/hwy"

// Sinh returns the hyperbolic sine of x.
//
// Small and moderate arguments use u = Expm1(|x|) and
// sinh = (u + u/(u+1))/2, which stays accurate near zero. Large arguments use
// (exp(|x|/2)/2)*exp(|x|/2) so the result only overflows when sinh itself does.
// Maximum error is 4 ULP.
//
// Special cases are:
//
//	Sinh(±0) = ±0
//	Sinh(±Inf) = ±Inf
//	Sinh(NaN) = NaN
func Sinh[T hwy.Floats](x T) T {
	if x == 0 || isNaN(x) || isInf(x) {
		return x
	}
	ax := abs(x)
	var r T
	if ax > paramsFor[T]().hyperbolicLarge {
		h := Exp(T(0.5 * ax))
		r = T(0.5*h) * h
	} else {
		u := Expm1(ax)
		r = 0.5 * (u + u/(u+1))
	}
	return copysign(r, x)
}

// Cosh returns the hyperbolic cosine of x. Maximum error is 4 ULP.
//
// Special cases are:
//
//	Cosh(±0) = 1
//	Cosh(±Inf) = +Inf
//	Cosh(NaN) = NaN
func Cosh[T hwy.Floats](x T) T {
	if isNaN(x) {
		return x
	}
	ax := abs(x)
	if ax > paramsFor[T]().hyperbolicLarge {
		h := Exp(T(0.5 * ax))
		return T(0.5*h) * h
	}
	e := Exp(ax)
	return T(0.5*e) + T(0.5/e)
}

// Tanh returns the hyperbolic tangent of x, computed as u/(u+2) with
// u = Expm1(2|x|). Beyond the saturation point the result is ±1.
// Maximum error is 4 ULP.
//
// Special cases are:
//
//	Tanh(±0) = ±0
//	Tanh(±Inf) = ±1
//	Tanh(NaN) = NaN
func Tanh[T hwy.Floats](x T) T {
	if isNaN(x) {
		return x
	}
	ax := abs(x)
	var r T
	if ax > paramsFor[T]().hyperbolicLarge {
		r = 1
	} else {
		u := Expm1(T(2 * ax))
		r = u / (u + 2)
	}
	return copysign(r, x)
}

// Asinh returns the inverse hyperbolic sine of x.
//
// Uses Log1p(|x| + x^2/(1+sqrt(1+x^2))), which is free of cancellation near
// zero, and log(|x|) + ln2 once x^2 would dominate.
//
// Special cases are:
//
//	Asinh(±0) = ±0
//	Asinh(±Inf) = ±Inf
//	Asinh(NaN) = NaN
func Asinh[T hwy.Floats](x T) T {
	if x == 0 || isNaN(x) || isInf(x) {
		return x
	}
	ax := abs(x)
	var r T
	if ax > paramsFor[T]().invHyperbolicBig {
		r = Log(ax) + ln2
	} else {
		x2 := T(ax * ax)
		r = Log1p(ax + x2/(1+sqrt(1+x2)))
	}
	return copysign(r, x)
}

// Acosh returns the inverse hyperbolic cosine of x.
//
// Special cases are:
//
//	Acosh(+Inf) = +Inf
//	Acosh(x) = NaN if x < 1
//	Acosh(NaN) = NaN
func Acosh[T hwy.Floats](x T) T {
	switch {
	case isNaN(x):
		return x
	case x < 1:
		return nan[T]()
	case x == 1:
		return 0
	case isInf(x):
		return x
	case x > paramsFor[T]().invHyperbolicBig:
		return Log(x) + ln2
	case x > 2:
		return Log(T(2*x) - 1/(x+sqrt(T(x*x)-1)))
	}
	t := x - 1
	return Log1p(t + sqrt(T(2*t)+T(t*t)))
}

// Atanh returns the inverse hyperbolic tangent of x, computed as
// Log1p(2|x|/(1-|x|))/2 with the sign of x restored.
//
// Special cases are:
//
//	Atanh(±1) = ±Inf
//	Atanh(±0) = ±0
//	Atanh(x) = NaN if x < -1 or x > 1
//	Atanh(NaN) = NaN
func Atanh[T hwy.Floats](x T) T {
	switch {
	case x == 0 || isNaN(x):
		return x
	case abs(x) > 1:
		return nan[T]()
	case abs(x) == 1:
		return copysign(inf[T](1), x)
	}
	ax := abs(x)
	return copysign(0.5*Log1p(T(2*ax)/(1-ax)), x)
}
