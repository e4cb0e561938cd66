// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package math

import (
	stdmath "math"

	"github.com/ajroetker/go-vmath/hwy"
)

// Reduced is a range-reduced argument: Core lies inside the interval where a
// kernel's approximation is accurate, and Tag (plus Rem for cube roots)
// carries what is needed to map the approximation back to the full domain.
type Reduced[T hwy.Floats] struct {
	// Core is the reduced argument.
	Core T
	// Tag is a power-of-two exponent, an angular band index or a flag set,
	// depending on the reducer.
	Tag int
	// Rem is the exponent remainder class {0, 1, 2} for ReduceCbrt.
	Rem int
}

// AtanReciprocal is set in Reduced.Tag by ReduceAtan when the core is 1/|x|.
const AtanReciprocal = 1

// ReduceExp2 splits x into n = floor(x) and f = x - n in [0, 1), so that
// 2^x = 2^f * 2^n. x must be finite.
func ReduceExp2[T hwy.Floats](x T) Reduced[T] {
	n := floor(x)
	return Reduced[T]{Core: x - n, Tag: int(n)}
}

// ReduceLog2 splits a positive finite x into m*2^e with m in [sqrt(0.5), sqrt(2))
// and returns Core = m-1 and Tag = e. Centering m around 1 keeps the series
// argument (m-1)/(m+1) below 0.172 in magnitude.
func ReduceLog2[T hwy.Floats](x T) Reduced[T] {
	m, e := Frexp(x)
	if m < sqrtHalf {
		m += m
		e--
	}
	return Reduced[T]{Core: m - 1, Tag: e}
}

// ReduceTrig maps |x| onto one of eight pi/4-wide bands and returns the
// residual in [-pi/4, pi/4] as Core and the band index as Tag. Odd bands are
// rounded up to the next even band so that the residual is measured from the
// nearest multiple of pi/2; Tag is therefore one of 0, 2, 4 or 6.
// The residual is computed with a three-part Cody-Waite split of pi/4.
func ReduceTrig[T hwy.Floats](x T) Reduced[T] {
	p := paramsFor[T]()
	x = abs(x)
	y := floor(T(x * fourOverPi))
	j := octant(y)
	if j&1 == 1 {
		j++
		y++
	}
	z := T(x-T(y*p.pi4A)) - T(y*p.pi4B)
	z = z - T(y*p.pi4C)
	return Reduced[T]{Core: z, Tag: j & 7}
}

// octant returns y mod 8 for a non-negative integral y.
func octant[T hwy.Floats](y T) int {
	if y < 1<<52 {
		return int(int64(y) & 7)
	}
	return int(stdmath.Mod(float64(y), 8))
}

// ReduceAtan maps x onto [0, 1]: |x| itself, or 1/|x| with the
// AtanReciprocal flag set when |x| > 1.
func ReduceAtan[T hwy.Floats](x T) Reduced[T] {
	ax := abs(x)
	if ax > 1 {
		return Reduced[T]{Core: 1 / ax, Tag: AtanReciprocal}
	}
	return Reduced[T]{Core: ax}
}

// ReduceCbrt splits a positive finite x into m*2^e with m in [0.5, 1) and
// writes e = 3q + r with r in {0, 1, 2}. Core is m, Tag is q and Rem is r,
// so cbrt(x) = cbrt(m * 2^r) * 2^q.
func ReduceCbrt[T hwy.Floats](x T) Reduced[T] {
	m, e := Frexp(x)
	q := e / 3
	r := e - 3*q
	if r < 0 {
		r += 3
		q--
	}
	return Reduced[T]{Core: m, Tag: q, Rem: r}
}

func floor[T hwy.Floats](x T) T {
	return T(stdmath.Floor(float64(x)))
}

func abs[T hwy.Floats](x T) T {
	return T(stdmath.Abs(float64(x)))
}

func sqrt[T hwy.Floats](x T) T {
	return T(stdmath.Sqrt(float64(x)))
}

func copysign[T hwy.Floats](x, sign T) T {
	return T(stdmath.Copysign(float64(x), float64(sign)))
}

func isNaN[T hwy.Floats](x T) bool {
	return x != x
}

func isInf[T hwy.Floats](x T) bool {
	return x-x != 0 && x == x
}

func signbit[T hwy.Floats](x T) bool {
	return stdmath.Signbit(float64(x))
}

func inf[T hwy.Floats](sign int) T {
	return T(stdmath.Inf(sign))
}

func nan[T hwy.Floats]() T {
	return T(stdmath.NaN())
}
