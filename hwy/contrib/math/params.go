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
	"unsafe"

	"github.com/ajroetker/go-vmath/hwy"
)

// kernelParams holds every table and limit a kernel needs at one precision.
// The two instances are built at package init and never modified.
type kernelParams[T hwy.Floats] struct {
	exp2             Poly[T]
	exp2Max, exp2Min T
	expMax, expMin   T
	exp10Max         T
	exp10Min         T
	ln2Hi, ln2Lo     T
	lg102Hi, lg102Lo T
	expm1            Poly[T]

	log                    Poly[T]
	log10Of2Hi, log10Of2Lo T

	sin, cos         Poly[T]
	pi4A, pi4B, pi4C T
	atan             Rational[T]

	cbrt       Rational[T]
	cbrtNewton int

	erf              Poly[T]
	erfcMid          Rational[T]
	erfcTail         Rational[T]
	erfcClamp        T
	hyperbolicLarge  T
	invHyperbolicBig T

	// oddIntLimit is the magnitude above which every value is an even integer.
	oddIntLimit T
	// splitter is 2^ceil(p/2)+1, used to split a value into two halves whose
	// products are exact.
	splitter T
}

var (
	params32 = &kernelParams[float32]{
		exp2:     polyFrom[float32](tail(exp2Coeffs, 10)),
		exp2Max:  exp2Max_f32,
		exp2Min:  exp2Min_f32,
		expMax:   expOverflow_f32,
		expMin:   expUnderflow_f32,
		exp10Max: exp10Overflow_f32,
		exp10Min: exp10Underflow_f32,
		ln2Hi:    ln2Hi_f32,
		ln2Lo:    ln2Lo_f32,
		lg102Hi:  lg102Hi_f32,
		lg102Lo:  lg102Lo_f32,
		expm1:    polyFrom[float32](tail(expm1Coeffs, 9)),

		log:        polyFrom[float32](tail(logCoeffs, 5)),
		log10Of2Hi: log10Of2Hi_f32,
		log10Of2Lo: log10Of2Lo_f32,

		sin:  polyFrom[float32](sinCoeffs_f32),
		cos:  polyFrom[float32](cosCoeffs_f32),
		pi4A: pi4A_f32,
		pi4B: pi4B_f32,
		pi4C: pi4C_f32,
		atan: rationalFrom[float32](atanNum, atanDen),

		cbrt:       rationalFrom[float32](cbrtNum, cbrtDen),
		cbrtNewton: 1,

		erf:              polyFrom[float32](tail(erfCoeffs, 11)),
		erfcMid:          rationalFrom[float32](erfcMidNum, erfcMidDen),
		erfcTail:         rationalFrom[float32](erfcTailNum, erfcTailDen),
		erfcClamp:        erfcClamp_f32,
		hyperbolicLarge:  hyperbolicLarge_f32,
		invHyperbolicBig: inverseHyperbolicLarge_f32,

		oddIntLimit: 1 << 24,
		splitter:    1<<12 + 1,
	}

	params64 = &kernelParams[float64]{
		exp2:     polyFrom[float64](exp2Coeffs),
		exp2Max:  exp2Max_f64,
		exp2Min:  exp2Min_f64,
		expMax:   expOverflow_f64,
		expMin:   expUnderflow_f64,
		exp10Max: exp10Overflow_f64,
		exp10Min: exp10Underflow_f64,
		ln2Hi:    ln2Hi_f64,
		ln2Lo:    ln2Lo_f64,
		lg102Hi:  lg102Hi_f64,
		lg102Lo:  lg102Lo_f64,
		expm1:    polyFrom[float64](expm1Coeffs),

		log:        polyFrom[float64](logCoeffs),
		log10Of2Hi: log10Of2Hi_f64,
		log10Of2Lo: log10Of2Lo_f64,

		sin:  polyFrom[float64](sinCoeffs_f64),
		cos:  polyFrom[float64](cosCoeffs_f64),
		pi4A: pi4A_f64,
		pi4B: pi4B_f64,
		pi4C: pi4C_f64,
		atan: rationalFrom[float64](atanNum, atanDen),

		cbrt:       rationalFrom[float64](cbrtNum, cbrtDen),
		cbrtNewton: 2,

		erf:              polyFrom[float64](erfCoeffs),
		erfcMid:          rationalFrom[float64](erfcMidNum, erfcMidDen),
		erfcTail:         rationalFrom[float64](erfcTailNum, erfcTailDen),
		erfcClamp:        erfcClamp_f64,
		hyperbolicLarge:  hyperbolicLarge_f64,
		invHyperbolicBig: inverseHyperbolicLarge_f64,

		oddIntLimit: 1 << 53,
		splitter:    1<<27 + 1,
	}
)

// paramsFor returns the tables for T's precision. The instances are shared
// between every type with the same underlying precision; kernelParams has an
// identical layout for float64 and any ~float64 type, so the pointer
// conversion is sound.
func paramsFor[T hwy.Floats]() *kernelParams[T] {
	if is32[T]() {
		return (*kernelParams[T])(unsafe.Pointer(params32))
	}
	return (*kernelParams[T])(unsafe.Pointer(params64))
}

// tail returns the last n entries of a highest-degree-first table, which is
// the same series truncated to degree n-1.
func tail(c []float64, n int) []float64 {
	return c[len(c)-n:]
}
