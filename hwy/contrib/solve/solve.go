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

package solve

import (
	stdmath "math"
	"unsafe"

	"github.com/ajroetker/go-vmath/hwy"
	vmath "github.com/ajroetker/go-vmath/hwy/contrib/math"
)

// negligibleScale bounds the leading coefficient, in units of machine epsilon
// relative to the largest other coefficient, below which an equation is
// treated as one degree lower.
const negligibleScale = 64

// Interval is the closed range [Lo, Hi]. Infinite bounds are allowed.
type Interval[T hwy.Floats] struct {
	Lo, Hi T
}

// Unbounded returns the interval covering every finite value.
func Unbounded[T hwy.Floats]() Interval[T] {
	return Interval[T]{Lo: T(stdmath.Inf(-1)), Hi: T(stdmath.Inf(1))}
}

// Contains reports whether Lo <= x <= Hi. NaN is never contained.
func (iv Interval[T]) Contains(x T) bool {
	return x >= iv.Lo && x <= iv.Hi
}

// Linear returns the root of b*x + c = 0. The interval is not consulted since
// the root is unique. A constant equation (b == 0) has no root to return and
// yields NaN.
func Linear[T hwy.Floats](b, c T) T {
	if b == 0 {
		return T(stdmath.NaN())
	}
	return -c / b
}

// QuadraticReduced returns a root of x^2 + a*x + b = 0.
//
// The roots are -a/2 ± sqrt((a/2)^2 - b). The "+" root is returned when it
// lies in iv; otherwise the "-" root is returned without checking it against
// iv. A negative discriminant is clamped to zero, so the vertex -a/2 is
// returned for equations without real roots.
func QuadraticReduced[T hwy.Floats](a, b T, iv Interval[T]) T {
	h := -a / 2
	d := T(h*h) - b
	if d < 0 {
		d = 0
	}
	s := sqrt(d)
	if x := h + s; iv.Contains(x) {
		return x
	}
	return h - s
}

// Quadratic returns a root of a*x^2 + b*x + c = 0 following the policy of
// QuadraticReduced. When a is negligible next to b and c the equation is
// solved as Linear.
func Quadratic[T hwy.Floats](a, b, c T, iv Interval[T]) T {
	if negligible(a, b, c) {
		return Linear(b, c)
	}
	return QuadraticReduced(b/a, c/a, iv)
}

// CubicReduced returns a root of x^3 + a*x^2 + b*x + c = 0.
//
// The equation is depressed by x = t - a/3 into t^3 + p*t + q = 0. With three
// real roots the trigonometric form t = 2*sqrt(-p/3)*cos(phi - 2*pi*k/3) is
// used and the candidates phi, phi-2pi/3 and phi+2pi/3 are tried in that
// order; the first one inside iv is returned, or the last one tried when none
// is. With a single real root the hyperbolic form of Cardano's formula is
// used (cosh for p < 0, sinh for p > 0, a cube root for p == 0) and that root
// is returned regardless of iv.
func CubicReduced[T hwy.Floats](a, b, c T, iv Interval[T]) T {
	shift := a / 3
	a2 := T(a * a)
	p := b - a2/3
	q := T(T(2*T(a2*a))/27-T(a*b)/3) + c
	hq, tp := q/2, p/3
	disc := T(hq*hq) + T(T(tp*tp)*tp)

	switch {
	case disc <= 0 && p < 0:
		r := 2 * sqrt(-tp)
		arg := T(T(3*q)/T(2*p)) * sqrt(-3/p)
		arg = max(-1, min(1, arg))
		phi := vmath.Acos(arg) / 3
		third := T(2 * stdmath.Pi / 3)
		var x T
		for _, angle := range [...]T{phi, phi - third, phi + third} {
			x = T(r*vmath.Cos(angle)) - shift
			if iv.Contains(x) {
				return x
			}
		}
		return x
	case p < 0:
		k := T(T(-3*abs(q))/T(2*p)) * sqrt(-3/p)
		t := T(-2*sqrt(-tp)) * vmath.Cosh(vmath.Acosh(k)/3)
		if q < 0 {
			t = -t
		}
		return t - shift
	case p > 0:
		k := T(T(3*q)/T(2*p)) * sqrt(3/p)
		t := T(-2*sqrt(tp)) * vmath.Sinh(vmath.Asinh(k)/3)
		return t - shift
	}
	return -vmath.Cbrt(q) - shift
}

// Cubic returns a root of a*x^3 + b*x^2 + c*x + d = 0 following the policy of
// CubicReduced. When a is negligible the equation is solved as Quadratic.
func Cubic[T hwy.Floats](a, b, c, d T, iv Interval[T]) T {
	if negligible(a, b, c, d) {
		return Quadratic(b, c, d, iv)
	}
	return CubicReduced(b/a, c/a, d/a, iv)
}

// negligible reports whether |lead| <= negligibleScale*eps*max|others|.
func negligible[T hwy.Floats](lead T, others ...T) bool {
	var m T
	for _, o := range others {
		m = max(m, abs(o))
	}
	return abs(lead) <= T(negligibleScale*epsilon[T]())*m
}

func epsilon[T hwy.Floats]() T {
	if unsafe.Sizeof(T(0)) == 4 {
		return 0x1p-23
	}
	return 0x1p-52
}

func sqrt[T hwy.Floats](x T) T {
	return T(stdmath.Sqrt(float64(x)))
}

func abs[T hwy.Floats](x T) T {
	return T(stdmath.Abs(float64(x)))
}
