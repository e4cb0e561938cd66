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

import "github.com/ajroetker/go-vmath/hwy"

// Transform applies f to each element of input, storing results in output.
// It processes n = min(len(input), len(output)) elements: full lane groups of
// hwy.MaxLanes[T]() first, then the remaining tail one element at a time with
// the same f, so the result is identical to calling f n times in order.
//
// output may be input itself; any other overlap is not supported.
//
// Example usage:
//
//	Transform(input, output, func(x float32) float32 { return x*x + x })
func Transform[T hwy.Floats](input, output []T, f func(T) T) {
	n := min(len(input), len(output))
	lanes := hwy.MaxLanes[T]()
	i := 0
	for ; i+lanes <= n; i += lanes {
		hwy.Store(hwy.Map(hwy.Load(input[i:i+lanes]), f), output[i:])
	}
	for ; i < n; i++ {
		output[i] = f(input[i])
	}
}

// Transform2 applies f element-wise to a and b, storing results in output.
// It processes min(len(a), len(b), len(output)) elements.
func Transform2[T hwy.Floats](a, b, output []T, f func(T, T) T) {
	n := min(len(a), len(b), len(output))
	lanes := hwy.MaxLanes[T]()
	i := 0
	for ; i+lanes <= n; i += lanes {
		va, vb := hwy.Load(a[i:i+lanes]), hwy.Load(b[i:i+lanes])
		hwy.Store(hwy.Map2(va, vb, f), output[i:])
	}
	for ; i < n; i++ {
		output[i] = f(a[i], b[i])
	}
}

// TransformScalar applies f(x, s) to each element x of input with a fixed
// second operand s.
func TransformScalar[T hwy.Floats](input []T, s T, output []T, f func(T, T) T) {
	Transform(input, output, func(x T) T { return f(x, s) })
}

// TransformVec applies vf to each full lane group of input and sf to the
// remaining tail elements. vf must compute the same per-lane result as sf for
// the output to match a scalar loop bit for bit; every XVec kernel in
// hwy/contrib/math satisfies this with its scalar X.
//
// Example usage:
//
//	TransformVec(input, output, math.ExpVec[float32], math.Exp[float32])
func TransformVec[T hwy.Floats](input, output []T, vf func(hwy.Vec[T]) hwy.Vec[T], sf func(T) T) {
	n := min(len(input), len(output))
	hwy.ProcessWithTail[T](n,
		func(offset int) {
			hwy.Store(vf(hwy.Load(input[offset:])), output[offset:])
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				output[i] = sf(input[i])
			}
		},
	)
}
