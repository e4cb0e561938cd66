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

// Package math provides bounded-error elementary functions built from three
// reusable pieces: range reducers, generic polynomial and rational evaluators
// over immutable coefficient tables, and exact IEEE-754 bit manipulation.
//
// Every kernel has a scalar form generic over float32 and float64 and a lane
// form operating on hwy.Vec. The lane forms produce the same bits as the
// scalar forms lane by lane; products are rounded before every addition, so
// results do not depend on whether the platform fuses multiply-add.
//
// # Bit-level helpers
//
//   - Decompose, Compose, Classify - raw IEEE-754 fields and categories
//   - Frexp, Ldexp - binary exponent split and scaling with exact underflow
//
// # Polynomials
//
//   - EvaluatePolynomial, EvaluateRational and their Vec forms
//   - Poly, Rational - validated coefficient tables (NewPoly, NewRational)
//
// # Range reduction
//
//   - ReduceExp2, ReduceLog2, ReduceTrig, ReduceAtan, ReduceCbrt
//
// # Kernels
//
// Exponential and logarithmic:
//   - Exp2, Exp, Exp10, Expm1
//   - Log2, Log, Log10, Log1p
//   - Pow
//
// Trigonometric:
//   - Sin, Cos, SinCos, Tan
//   - Atan, Atan2, Asin, Acos
//
// Hyperbolic:
//   - Sinh, Cosh, Tanh, Asinh, Acosh, Atanh
//
// Special functions:
//   - Cbrt, Erf, Erfc
//
// Each kernel documents its special cases and its maximum error. Results are
// not correctly rounded.
//
// Example:
//
//	import vmath "github.com/ajroetker/go-vmath/hwy/contrib/math"
//
//	y := vmath.Exp(1.5)
//	v := vmath.SinVec(hwy.Load(angles))
package math
