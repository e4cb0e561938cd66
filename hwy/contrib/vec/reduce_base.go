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

import (
	stdmath "math"

	"github.com/ajroetker/go-vmath/hwy"
)

// Reduce folds combine over v starting from identity. Elements are visited
// one lane block at a time, in index order, so the result matches a plain
// sequential loop bit for bit regardless of the lane width.
//
// Returns identity if v is empty.
func Reduce[T hwy.Floats](v []T, identity T, combine func(acc, x T) T) T {
	acc := identity
	lanes := hwy.MaxLanes[T]()
	for i := 0; i < len(v); i += lanes {
		blk := hwy.Load(v[i:])
		for j := range blk.NumLanes() {
			acc = combine(acc, blk.Lane(j))
		}
	}
	return acc
}

// Sum returns the sum of v, accumulated left to right.
//
// Returns 0 if v is empty.
//
// Example:
//
//	data := []float32{1, 2, 3, 4}
//	result := Sum(data)  // 10
func Sum[T hwy.Floats](v []T) T {
	return Reduce(v, 0, func(acc, x T) T { return acc + x })
}

// Max returns the largest element of v. NaN elements are skipped.
//
// Returns -Inf if v is empty or holds only NaN.
func Max[T hwy.Floats](v []T) T {
	return Reduce(v, T(stdmath.Inf(-1)), maxFold[T])
}

// Min returns the smallest element of v. NaN elements are skipped.
//
// Returns +Inf if v is empty or holds only NaN.
func Min[T hwy.Floats](v []T) T {
	return Reduce(v, T(stdmath.Inf(1)), minFold[T])
}

// MaxMin returns Max(v) and Min(v) in a single pass.
func MaxMin[T hwy.Floats](v []T) (maxVal, minVal T) {
	maxVal, minVal = T(stdmath.Inf(-1)), T(stdmath.Inf(1))
	lanes := hwy.MaxLanes[T]()
	for i := 0; i < len(v); i += lanes {
		blk := hwy.Load(v[i:])
		for j := range blk.NumLanes() {
			x := blk.Lane(j)
			maxVal = maxFold(maxVal, x)
			minVal = minFold(minVal, x)
		}
	}
	return maxVal, minVal
}

// Comparisons with NaN are false, so a NaN never replaces the accumulator.
func maxFold[T hwy.Floats](acc, x T) T {
	if x > acc {
		return x
	}
	return acc
}

func minFold[T hwy.Floats](acc, x T) T {
	if x < acc {
		return x
	}
	return acc
}
