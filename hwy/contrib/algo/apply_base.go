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

// Apply transforms input to output using only the vector function fn. The
// tail is loaded as a partial vector, so fn sees every element exactly once
// and no scalar fallback is needed.
//
// This is the primitive for kernels whose lane form is the only form, such as
// compositions of hwy operations.
//
// Example usage:
//
//	Apply(input, output, func(v hwy.Vec[float64]) hwy.Vec[float64] {
//	    return hwy.MulAdd(v, v, hwy.Set(1.0))
//	})
func Apply[T hwy.Floats](in, out []T, fn func(hwy.Vec[T]) hwy.Vec[T]) {
	n := min(len(in), len(out))
	lanes := hwy.MaxLanes[T]()
	for i := 0; i < n; i += lanes {
		end := min(i+lanes, n)
		hwy.Store(fn(hwy.Load(in[i:end])), out[i:end])
	}
}
