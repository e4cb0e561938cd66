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

// SquaredNorm computes the squared L2 norm Σ(v[i] * v[i]). It equals
// Dot(v, v) bit for bit.
//
// Returns 0 if the slice is empty.
func SquaredNorm[T hwy.Floats](v []T) T {
	return Dot(v, v)
}

// Norm computes the L2 norm Sqrt(Σ(v[i] * v[i])).
//
// Example:
//
//	v := []float32{3, 4}
//	result := Norm(v)  // 5
func Norm[T hwy.Floats](v []T) T {
	sq := SquaredNorm(v)
	if sq == 0 {
		return 0
	}
	return T(stdmath.Sqrt(float64(sq)))
}
