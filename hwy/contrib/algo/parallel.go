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
	"github.com/ajroetker/go-vmath/hwy/contrib/workerpool"
)

// minParallelElements is the input size below which the parallel transforms
// run on the caller's goroutine.
const minParallelElements = 1 << 12

// ParallelTransform is Transform split across pool. Chunks start on lane
// boundaries, and since every element is computed by the same f the output is
// bit-identical to Transform. A nil pool runs sequentially.
func ParallelTransform[T hwy.Floats](pool *workerpool.Pool, input, output []T, f func(T) T) {
	n := min(len(input), len(output))
	if pool == nil || n < minParallelElements {
		Transform(input[:n], output[:n], f)
		return
	}
	pool.ParallelForAligned(n, hwy.MaxLanes[T](), func(start, end int) {
		Transform(input[start:end], output[start:end], f)
	})
}

// ParallelTransformVec is TransformVec split across pool.
func ParallelTransformVec[T hwy.Floats](pool *workerpool.Pool, input, output []T, vf func(hwy.Vec[T]) hwy.Vec[T], sf func(T) T) {
	n := min(len(input), len(output))
	if pool == nil || n < minParallelElements {
		TransformVec(input[:n], output[:n], vf, sf)
		return
	}
	pool.ParallelForAligned(n, hwy.MaxLanes[T](), func(start, end int) {
		TransformVec(input[start:end], output[start:end], vf, sf)
	})
}
