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

package hwy

import "math"

// This file provides the pure Go lane operations. Every operation is applied
// lane by lane with the same rounding as the matching scalar expression, which
// is what lets bulk loops mix lane groups and a scalar tail without changing
// results.

// Load creates a vector by loading data from a slice.
// At most MaxLanes[T]() elements are read; a shorter slice yields a partial vector.
func Load[T Floats](src []T) Vec[T] {
	var v Vec[T]
	v.n = min(len(src), MaxLanes[T]())
	copy(v.data[:v.n], src)
	return v
}

// Store writes a vector's data to a slice.
func Store[T Floats](v Vec[T], dst []T) {
	n := min(len(dst), v.n)
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Floats](value T) Vec[T] {
	var v Vec[T]
	v.n = MaxLanes[T]()
	for i := range v.n {
		v.data[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Floats]() Vec[T] {
	return Vec[T]{n: MaxLanes[T]()}
}

// Map applies f to each lane of v.
func Map[T Floats](v Vec[T], f func(T) T) Vec[T] {
	var r Vec[T]
	r.n = v.n
	for i := range v.n {
		r.data[i] = f(v.data[i])
	}
	return r
}

// Map2 applies f lane-wise to a and b. The result has the lane count of the
// shorter operand.
func Map2[T Floats](a, b Vec[T], f func(T, T) T) Vec[T] {
	var r Vec[T]
	r.n = min(a.n, b.n)
	for i := range r.n {
		r.data[i] = f(a.data[i], b.data[i])
	}
	return r
}

// Add performs element-wise addition.
func Add[T Floats](a, b Vec[T]) Vec[T] {
	var r Vec[T]
	r.n = min(a.n, b.n)
	for i := range r.n {
		r.data[i] = a.data[i] + b.data[i]
	}
	return r
}

// Sub performs element-wise subtraction.
func Sub[T Floats](a, b Vec[T]) Vec[T] {
	var r Vec[T]
	r.n = min(a.n, b.n)
	for i := range r.n {
		r.data[i] = a.data[i] - b.data[i]
	}
	return r
}

// Mul performs element-wise multiplication.
func Mul[T Floats](a, b Vec[T]) Vec[T] {
	var r Vec[T]
	r.n = min(a.n, b.n)
	for i := range r.n {
		r.data[i] = a.data[i] * b.data[i]
	}
	return r
}

// Div performs element-wise division.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	var r Vec[T]
	r.n = min(a.n, b.n)
	for i := range r.n {
		r.data[i] = a.data[i] / b.data[i]
	}
	return r
}

// MulAdd computes a*b + c with the product rounded to T before the addition.
// It is never contracted into a fused multiply-add, so every platform
// produces the same bits as the scalar expression T(a*b) + c.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	var r Vec[T]
	r.n = min(a.n, b.n, c.n)
	for i := range r.n {
		r.data[i] = T(a.data[i]*b.data[i]) + c.data[i]
	}
	return r
}

// Neg negates each lane.
func Neg[T Floats](v Vec[T]) Vec[T] {
	var r Vec[T]
	r.n = v.n
	for i := range v.n {
		r.data[i] = -v.data[i]
	}
	return r
}

// Abs computes the absolute value of each lane.
func Abs[T Floats](v Vec[T]) Vec[T] {
	var r Vec[T]
	r.n = v.n
	for i := range v.n {
		r.data[i] = T(math.Abs(float64(v.data[i])))
	}
	return r
}

// Min returns the element-wise minimum. A NaN in a yields b.
func Min[T Floats](a, b Vec[T]) Vec[T] {
	var r Vec[T]
	r.n = min(a.n, b.n)
	for i := range r.n {
		if a.data[i] < b.data[i] {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// Max returns the element-wise maximum. A NaN in a yields b.
func Max[T Floats](a, b Vec[T]) Vec[T] {
	var r Vec[T]
	r.n = min(a.n, b.n)
	for i := range r.n {
		if a.data[i] > b.data[i] {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// Sqrt computes the square root of each lane.
// Both precisions are correctly rounded, so float32 lanes computed through
// float64 give the same bits as a float32 square root.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	var r Vec[T]
	r.n = v.n
	for i := range v.n {
		r.data[i] = T(math.Sqrt(float64(v.data[i])))
	}
	return r
}
