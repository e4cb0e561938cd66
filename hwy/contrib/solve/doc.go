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

// Package solve finds a real root of low-degree polynomial equations inside a
// caller-supplied interval, using closed forms built on the kernels of
// hwy/contrib/math.
//
// The solvers never fail: when no root lies in the interval they return a
// best-effort value according to a fixed fallback policy, documented on each
// function. Callers that need a guarantee should check the result with
// Interval.Contains.
//
// # Functions
//
//   - Linear: b*x + c = 0
//   - QuadraticReduced, Quadratic: x^2 + a*x + b = 0 and a*x^2 + b*x + c = 0
//   - CubicReduced, Cubic: x^3 + a*x^2 + b*x + c = 0 and the general cubic
package solve
