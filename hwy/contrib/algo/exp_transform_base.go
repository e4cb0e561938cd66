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

package algo

import (
	"github.com/ajroetker/go-vmath/hwy"
	"github.com/ajroetker/go-vmath/hwy/contrib/math"
)

// Named kernel transforms. Each runs the lane form of the kernel on full lane
// groups and the scalar form on the tail; the two agree bit for bit, so the
// output equals a scalar loop over the kernel.

// Exp2Transform applies 2^x to each element.
func Exp2Transform[T hwy.Floats](in, out []T) {
	TransformVec(in, out, math.Exp2Vec[T], math.Exp2[T])
}

// ExpTransform applies exp(x) to each element.
func ExpTransform[T hwy.Floats](in, out []T) {
	TransformVec(in, out, math.ExpVec[T], math.Exp[T])
}

// Exp10Transform applies 10^x to each element.
func Exp10Transform[T hwy.Floats](in, out []T) {
	TransformVec(in, out, math.Exp10Vec[T], math.Exp10[T])
}

// LogTransform applies ln(x) to each element.
func LogTransform[T hwy.Floats](in, out []T) {
	TransformVec(in, out, math.LogVec[T], math.Log[T])
}

// Log2Transform applies log2(x) to each element.
func Log2Transform[T hwy.Floats](in, out []T) {
	TransformVec(in, out, math.Log2Vec[T], math.Log2[T])
}

// Log10Transform applies log10(x) to each element.
func Log10Transform[T hwy.Floats](in, out []T) {
	TransformVec(in, out, math.Log10Vec[T], math.Log10[T])
}

// SinTransform applies sin(x) to each element.
func SinTransform[T hwy.Floats](in, out []T) {
	TransformVec(in, out, math.SinVec[T], math.Sin[T])
}

// CosTransform applies cos(x) to each element.
func CosTransform[T hwy.Floats](in, out []T) {
	TransformVec(in, out, math.CosVec[T], math.Cos[T])
}

// TanTransform applies tan(x) to each element.
func TanTransform[T hwy.Floats](in, out []T) {
	TransformVec(in, out, math.TanVec[T], math.Tan[T])
}

// AtanTransform applies atan(x) to each element.
func AtanTransform[T hwy.Floats](in, out []T) {
	TransformVec(in, out, math.AtanVec[T], math.Atan[T])
}

// TanhTransform applies tanh(x) to each element.
func TanhTransform[T hwy.Floats](in, out []T) {
	TransformVec(in, out, math.TanhVec[T], math.Tanh[T])
}

// CbrtTransform applies the cube root to each element.
func CbrtTransform[T hwy.Floats](in, out []T) {
	TransformVec(in, out, math.CbrtVec[T], math.Cbrt[T])
}

// ErfTransform applies erf(x) to each element.
func ErfTransform[T hwy.Floats](in, out []T) {
	TransformVec(in, out, math.ErfVec[T], math.Erf[T])
}

// ErfcTransform applies erfc(x) to each element.
func ErfcTransform[T hwy.Floats](in, out []T) {
	TransformVec(in, out, math.ErfcVec[T], math.Erfc[T])
}

// PowTransform computes x[i]^y[i] for each element.
func PowTransform[T hwy.Floats](x, y, out []T) {
	Transform2(x, y, out, math.Pow[T])
}

// Atan2Transform computes atan2(y[i], x[i]) for each element.
func Atan2Transform[T hwy.Floats](y, x, out []T) {
	Transform2(y, x, out, math.Atan2[T])
}

// AddTransform computes a[i] + b[i] for each element.
func AddTransform[T hwy.Floats](a, b, out []T) {
	Transform2(a, b, out, func(x, y T) T { return x + y })
}

// MulTransform computes a[i] * b[i] for each element.
func MulTransform[T hwy.Floats](a, b, out []T) {
	Transform2(a, b, out, func(x, y T) T { return x * y })
}

// ScaleTransform computes s * in[i] for each element.
func ScaleTransform[T hwy.Floats](in []T, s T, out []T) {
	TransformScalar(in, s, out, func(x, s T) T { return x * s })
}
