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

// Package algo applies scalar and lane kernels to whole slices.
//
// # Transform API
//
// Every transform processes full lane groups of hwy.MaxLanes[T]() elements and
// then a scalar tail using the same per-element function, so the output for
// any length is bit-identical to calling the scalar kernel once per element in
// order. The element count is the minimum of the slice lengths, and an output
// may alias an input index-for-index.
//
// Generic transforms:
//   - Transform(input, output, f)
//   - Transform2(a, b, output, f)
//   - TransformScalar(input, s, output, f)
//   - TransformVec(input, output, vf, sf)
//   - Apply(input, output, vf)
//
// Named transforms for the kernels in hwy/contrib/math:
//   - Exp2Transform, ExpTransform, Exp10Transform
//   - LogTransform, Log2Transform, Log10Transform
//   - SinTransform, CosTransform, TanTransform, AtanTransform
//   - TanhTransform, CbrtTransform, ErfTransform, ErfcTransform
//   - PowTransform, Atan2Transform
//
// Arithmetic:
//   - AddTransform, MulTransform, ScaleTransform
//
// Parallel forms split a transform across a workerpool.Pool:
//   - ParallelTransform, ParallelTransformVec
//
// # Example Usage
//
//	import "github.com/ajroetker/go-vmath/hwy/contrib/algo"
//
//	func ProcessData(input []float32) []float32 {
//	    output := make([]float32, len(input))
//	    algo.ExpTransform(input, output)
//	    return output
//	}
//
//	func CustomOp(input []float64) []float64 {
//	    output := make([]float64, len(input))
//	    algo.Transform(input, output, func(x float64) float64 { return x*x + x })
//	    return output
//	}
package algo
