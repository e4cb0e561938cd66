package math

import "github.com/ajroetker/go-vmath/hwy"

// Tan returns the tangent of the radian argument x, computed as the ratio of
// the SinCos pair. Near odd multiples of pi/2 the result is large but finite.
//
// Special cases are:
//
//	Tan(±0) = ±0
//	Tan(±Inf) = NaN
//	Tan(NaN) = NaN
func Tan[T hwy.Floats](x T) T {
	s, c := SinCos(x)
	return s / c
}
