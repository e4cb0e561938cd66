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
	"unsafe"

	"github.com/ajroetker/go-vmath/hwy"
)

// Category is the IEEE-754 class of a floating-point value.
type Category int

const (
	// CategoryZero is +0 or -0.
	CategoryZero Category = iota
	// CategorySubnormal is a nonzero value with a zero exponent field.
	CategorySubnormal
	// CategoryNormal is a finite value with a full-precision significand.
	CategoryNormal
	// CategoryInfinite is +Inf or -Inf.
	CategoryInfinite
	// CategoryNaN is any NaN payload.
	CategoryNaN
)

// String returns the lower-case name of the category.
func (c Category) String() string {
	switch c {
	case CategoryZero:
		return "zero"
	case CategorySubnormal:
		return "subnormal"
	case CategoryNormal:
		return "normal"
	case CategoryInfinite:
		return "infinite"
	case CategoryNaN:
		return "nan"
	default:
		return "unknown"
	}
}

// floatLayout describes the IEEE-754 binary interchange format of one precision.
type floatLayout struct {
	totalBits uint
	mantBits  uint
	expBits   uint
	bias      int
}

var (
	layout32 = floatLayout{totalBits: 32, mantBits: 23, expBits: 8, bias: 127}
	layout64 = floatLayout{totalBits: 64, mantBits: 52, expBits: 11, bias: 1023}
)

func (l floatLayout) mantMask() uint64 { return 1<<l.mantBits - 1 }
func (l floatLayout) expMask() uint64  { return 1<<l.expBits - 1 }
func (l floatLayout) maxExp() int      { return int(l.expMask()) }

func is32[T hwy.Floats]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

func layoutOf[T hwy.Floats]() floatLayout {
	if is32[T]() {
		return layout32
	}
	return layout64
}

// toBits returns the raw IEEE encoding of x in the low bits of a uint64.
func toBits[T hwy.Floats](x T) uint64 {
	if is32[T]() {
		return uint64(stdmath.Float32bits(float32(x)))
	}
	return stdmath.Float64bits(float64(x))
}

// fromBits is the inverse of toBits.
func fromBits[T hwy.Floats](b uint64) T {
	if is32[T]() {
		return T(stdmath.Float32frombits(uint32(b)))
	}
	return T(stdmath.Float64frombits(b))
}

// Decompose splits x into its raw IEEE-754 fields: the sign bit, the biased
// exponent field and the stored mantissa bits (without the implicit leading 1).
//
// Compose(Decompose(x)) reproduces x bit for bit for every encoding, including
// signed zeros, subnormals, infinities and NaN payloads.
func Decompose[T hwy.Floats](x T) (sign uint, exponent int, mantissa uint64) {
	l := layoutOf[T]()
	b := toBits(x)
	sign = uint(b >> (l.totalBits - 1))
	exponent = int((b >> l.mantBits) & l.expMask())
	mantissa = b & l.mantMask()
	return sign, exponent, mantissa
}

// Compose assembles a value from raw IEEE-754 fields. Fields wider than the
// format are truncated to their low bits.
func Compose[T hwy.Floats](sign uint, exponent int, mantissa uint64) T {
	l := layoutOf[T]()
	b := uint64(sign&1)<<(l.totalBits-1) |
		(uint64(exponent)&l.expMask())<<l.mantBits |
		mantissa&l.mantMask()
	return fromBits[T](b)
}

// Classify reports the IEEE-754 category of x.
func Classify[T hwy.Floats](x T) Category {
	l := layoutOf[T]()
	_, e, m := Decompose(x)
	switch {
	case e == 0 && m == 0:
		return CategoryZero
	case e == 0:
		return CategorySubnormal
	case e == l.maxExp() && m == 0:
		return CategoryInfinite
	case e == l.maxExp():
		return CategoryNaN
	default:
		return CategoryNormal
	}
}

// Frexp breaks x into a fraction in [0.5, 1) and a power of two, so that
// x == frac * 2**exp. Subnormal inputs are normalized first.
//
// Special cases are:
//
//	Frexp(±0) = ±0, 0
//	Frexp(±Inf) = ±Inf, 0
//	Frexp(NaN) = NaN, 0
func Frexp[T hwy.Floats](x T) (frac T, exp int) {
	l := layoutOf[T]()
	sign, e, m := Decompose(x)
	switch {
	case e == l.maxExp():
		return x, 0
	case e == 0:
		if m == 0 {
			return x, 0
		}
		// Scaling by 2^mantBits is exact and makes the value normal.
		x *= fromBits[T](uint64(l.bias+int(l.mantBits)) << l.mantBits)
		sign, e, m = Decompose(x)
		exp = -int(l.mantBits)
	}
	exp += e - l.bias + 1
	return Compose[T](sign, l.bias-1, m), exp
}

// Ldexp is the inverse of Frexp. It returns frac * 2**exp, rounding once when
// the result is subnormal. Results beyond the finite range become a signed
// infinity and results below half the smallest subnormal become a signed zero.
//
// Special cases are:
//
//	Ldexp(±0, exp) = ±0
//	Ldexp(±Inf, exp) = ±Inf
//	Ldexp(NaN, exp) = NaN
func Ldexp[T hwy.Floats](frac T, exp int) T {
	l := layoutOf[T]()
	f, e := Frexp(frac)
	if e == 0 && (f == 0 || Classify(f) >= CategoryInfinite) {
		return frac
	}
	sign, _, m := Decompose(f)
	// f*2^(exp+e) == 1.m * 2^(exp+e-1)
	be := exp + e - 1 + l.bias
	switch {
	case be >= l.maxExp():
		return Compose[T](sign, l.maxExp(), 0)
	case be >= 1:
		return Compose[T](sign, be, m)
	}
	shift := int(l.mantBits) + 1
	if be+shift < 1 {
		return Compose[T](sign, 0, 0)
	}
	// Build the value 2^shift too large while it is still normal, then let a
	// single multiply round it into the subnormal range.
	scaled := Compose[T](sign, be+shift, m)
	return scaled * Compose[T](0, l.bias-shift, 0)
}
