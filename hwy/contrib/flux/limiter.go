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

package flux

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ajroetker/go-vmath/hwy"
	"github.com/ajroetker/go-vmath/hwy/contrib/algo"
)

// ErrUnknownLimiter is returned by ParseLimiter for a name that matches no
// limiter.
var ErrUnknownLimiter = errors.New("flux: unknown limiter")

// Limiter selects a slope limiter.
type Limiter int

const (
	// Total is full limiting: psi = 0 (first-order upwind).
	Total Limiter = iota
	// Null applies no limiting: psi = 1 (second-order central).
	Null
	// Centred is the central slope (1+r)/2, gated by the sign test.
	Centred
	Superbee
	Minmod
	VanLeer
	VanAlbada
	// Minsuper is min(r, 2).
	Minsuper
	// Supermin is min(2r, 1).
	Supermin
	MonotonizedCentral
	// Mean is the ungated central slope (1+r)/2. Unknown limiters fall back
	// to it.
	Mean

	numLimiters
)

var limiterNames = [numLimiters]string{
	Total:              "total",
	Null:               "null",
	Centred:            "centred",
	Superbee:           "superbee",
	Minmod:             "minmod",
	VanLeer:            "van-leer",
	VanAlbada:          "van-albada",
	Minsuper:           "minsuper",
	Supermin:           "supermin",
	MonotonizedCentral: "monotonized-central",
	Mean:               "mean",
}

// aliases maps alternative spellings accepted by ParseLimiter.
var aliases = map[string]Limiter{
	"centered":  Centred,
	"vanleer":   VanLeer,
	"vanalbada": VanAlbada,
	"mc":        MonotonizedCentral,
}

// Limiters returns every limiter in declaration order.
func Limiters() []Limiter {
	all := make([]Limiter, numLimiters)
	for i := range all {
		all[i] = Limiter(i)
	}
	return all
}

// String returns the limiter's canonical name.
func (l Limiter) String() string {
	if l < 0 || l >= numLimiters {
		return fmt.Sprintf("Limiter(%d)", int(l))
	}
	return limiterNames[l]
}

// ParseLimiter returns the limiter with the given name. Matching ignores case
// and treats '_' and ' ' like '-'.
func ParseLimiter(name string) (Limiter, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	for l, n := range limiterNames {
		if n == key {
			return Limiter(l), nil
		}
	}
	if l, ok := aliases[key]; ok {
		return l, nil
	}
	return Mean, fmt.Errorf("%w: %q", ErrUnknownLimiter, name)
}

// Limit returns the limiter function psi(r) for the ratio of successive
// differences r = d1/d2. The result depends only on r, so scaling both
// differences by the same factor leaves it unchanged. A value outside the
// defined limiters behaves like Mean.
//
// Mean is not gated, so d2 == 0 gives an infinite or NaN result for it.
func Limit[T hwy.Floats](l Limiter, d1, d2 T) T {
	switch l {
	case Null:
		return 1
	case Total, Centred, Superbee, Minmod, VanLeer, VanAlbada, Minsuper, Supermin, MonotonizedCentral:
		// A sign test rather than d1*d2 <= 0, which underflows for tiny slopes.
		if d1 == 0 || d2 == 0 || (d1 < 0) != (d2 < 0) {
			return 0
		}
	default:
		return (1 + d1/d2) / 2
	}

	r := d1 / d2
	switch l {
	case Total:
		return 0
	case Centred:
		return (1 + r) / 2
	case Minmod:
		return min(r, 1)
	case Superbee:
		return max(min(2*r, 1), min(r, 2))
	case VanLeer:
		if r > 1 {
			return 2 / (1 + 1/r)
		}
		return 2 * r / (1 + r)
	case VanAlbada:
		// Rewritten in 1/r above 1 so r*r cannot overflow.
		if r > 1 {
			s := 1 / r
			return (s + 1) / (T(s*s) + 1)
		}
		return (r + T(r*r)) / (1 + T(r*r))
	case Minsuper:
		return min(r, 2)
	case Supermin:
		return min(2*r, 1)
	default: // MonotonizedCentral
		return min(2*r, (1+r)/2, 2)
	}
}

// LimitVec applies Limit lane-wise.
func LimitVec[T hwy.Floats](l Limiter, d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Map2(d1, d2, func(a, b T) T { return Limit(l, a, b) })
}

// LimitSlopes writes Limit(l, d1[i], d2[i]) to out[i] for the first
// min(len(d1), len(d2), len(out)) elements.
func LimitSlopes[T hwy.Floats](l Limiter, d1, d2, out []T) {
	algo.Transform2(d1, d2, out, func(a, b T) T { return Limit(l, a, b) })
}
