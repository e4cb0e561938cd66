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

package vec

import "github.com/ajroetker/go-vmath/hwy"

// Dot computes the dot product Σ(a[i] * b[i]).
//
// If the slices have different lengths, the computation uses the minimum
// length. Returns 0 if either slice is empty. Each product is rounded before
// it is added, and products are accumulated in index order, so the result
// does not depend on lane width or on FMA contraction.
//
// Example:
//
//	a := []float32{1, 2, 3}
//	b := []float32{4, 5, 6}
//	result := Dot(a, b)  // 1*4 + 2*5 + 3*6 = 32
func Dot[T hwy.Floats](a, b []T) T {
	n := min(len(a), len(b))
	var acc T
	lanes := hwy.MaxLanes[T]()
	for i := 0; i < n; i += lanes {
		prod := hwy.Mul(hwy.Load(a[i:n]), hwy.Load(b[i:n]))
		for j := range prod.NumLanes() {
			acc += prod.Lane(j)
		}
	}
	return acc
}
