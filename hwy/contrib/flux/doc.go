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

// Package flux provides slope limiters for high-resolution finite-volume
// schemes. A limiter maps the backward and forward differences d1 and d2 of a
// cell to psi(r), a function of the ratio r = d1/d2 that scales the
// reconstructed slope, so minmod(1, 2) = min(0.5, 1) = 0.5.
//
// Every limiter except Null and Mean returns 0 when d1 and d2 have opposite
// signs or either is zero, which keeps the reconstruction free of new
// extrema. Null is the unlimited psi = 1 and Total the fully limited psi = 0.
package flux
