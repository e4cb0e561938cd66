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

// Package contrib groups the numeric kernels and algorithms built on the hwy
// lane layer.
//
// # Subpackages
//
//   - math: bit access, polynomial and rational evaluation, range reduction
//     and the elementary function kernels (exp, log, pow, trig, inverse trig,
//     hyperbolic, cbrt, erf, erfc) in scalar and lane form
//   - algo: bulk maps over slices, including the kernel transforms and a
//     parallel transform on a worker pool
//   - vec: reductions (sum, max, min, dot, norm)
//   - solve: closed-form linear, quadratic and cubic roots on an interval
//   - flux: slope limiters for finite-volume reconstruction
//   - workerpool: the persistent pool used by the parallel transforms
//
// # Bit identity
//
// Every lane form computes exactly what its scalar form computes for each
// element, and every bulk operation processes lane blocks followed by a
// scalar tail through the same function. A slice processed in bulk therefore
// matches a loop of scalar calls bit for bit, on every dispatch target:
//
//	import "github.com/ajroetker/go-vmath/hwy/contrib/algo"
//
//	algo.ExpTransform(input, output)    // output[i] == math.Exp(input[i])
//	algo.LogTransform(input, output)    // output[i] == math.Log(input[i])
//
// Reductions fold elements in index order for the same reason.
package contrib
