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

package math

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-vmath/hwy"
)

// ErrCoefficientCount is returned when a coefficient table does not have the
// length its declared degrees require.
var ErrCoefficientCount = errors.New("math: coefficient count does not match degree")

// EvaluatePolynomial evaluates the polynomial with the given coefficients at x
// using Horner's scheme. Coefficients are ordered from the highest degree down
// to the constant term; an empty table evaluates to 0.
//
// Each step rounds the product before adding the next coefficient, so the
// result is identical on every platform and matches EvaluatePolynomialVec.
func EvaluatePolynomial[T hwy.Floats](x T, coeffs []T) T {
	if len(coeffs) == 0 {
		return 0
	}
	r := coeffs[0]
	for _, c := range coeffs[1:] {
		r = T(r*x) + c
	}
	return r
}

// EvaluateRational evaluates num(x) / (1 + x*den(x)). Both tables are ordered
// highest degree first; the denominator's leading 1 is implicit, so den holds
// the remaining coefficients of a denominator of degree len(den).
func EvaluateRational[T hwy.Floats](x T, num, den []T) T {
	p := EvaluatePolynomial(x, num)
	q := T(x*EvaluatePolynomial(x, den)) + 1
	return p / q
}

// EvaluatePolynomialVec is the lane form of EvaluatePolynomial.
func EvaluatePolynomialVec[T hwy.Floats](v hwy.Vec[T], coeffs []T) hwy.Vec[T] {
	switch len(coeffs) {
	case 0:
		return hwy.Map(v, func(T) T { return 0 })
	case 1:
		c := coeffs[0]
		return hwy.Map(v, func(T) T { return c })
	}
	r := hwy.MulAdd(hwy.Set(coeffs[0]), v, hwy.Set(coeffs[1]))
	for _, c := range coeffs[2:] {
		r = hwy.MulAdd(r, v, hwy.Set(c))
	}
	return r
}

// EvaluateRationalVec is the lane form of EvaluateRational.
func EvaluateRationalVec[T hwy.Floats](v hwy.Vec[T], num, den []T) hwy.Vec[T] {
	p := EvaluatePolynomialVec(v, num)
	q := hwy.MulAdd(v, EvaluatePolynomialVec(v, den), hwy.Set[T](1))
	return hwy.Div(p, q)
}

// Poly is an immutable polynomial coefficient table, highest degree first.
type Poly[T hwy.Floats] struct {
	coeffs []T
}

// NewPoly validates and copies a coefficient table of the given degree.
func NewPoly[T hwy.Floats](degree int, coeffs ...T) (Poly[T], error) {
	if degree < 0 || len(coeffs) != degree+1 {
		return Poly[T]{}, fmt.Errorf("%w: polynomial of degree %d needs %d coefficients, got %d",
			ErrCoefficientCount, degree, degree+1, len(coeffs))
	}
	return Poly[T]{coeffs: append([]T(nil), coeffs...)}, nil
}

// MustPoly is like NewPoly but panics on an invalid table. It is intended for
// package-level tables.
func MustPoly[T hwy.Floats](degree int, coeffs ...T) Poly[T] {
	p, err := NewPoly(degree, coeffs...)
	if err != nil {
		panic(err)
	}
	return p
}

// Degree returns the polynomial degree.
func (p Poly[T]) Degree() int { return len(p.coeffs) - 1 }

// Coefficients returns a copy of the table.
func (p Poly[T]) Coefficients() []T { return append([]T(nil), p.coeffs...) }

// Eval evaluates the polynomial at x.
func (p Poly[T]) Eval(x T) T { return EvaluatePolynomial(x, p.coeffs) }

// EvalVec evaluates the polynomial on every lane of v.
func (p Poly[T]) EvalVec(v hwy.Vec[T]) hwy.Vec[T] { return EvaluatePolynomialVec(v, p.coeffs) }

// Rational is an immutable rational coefficient table: a numerator of degree
// numDegree over a denominator 1 + x*Q(x) of degree denDegree.
type Rational[T hwy.Floats] struct {
	num, den []T
}

// NewRational validates a rational table laid out as the numDegree+1
// numerator coefficients followed by the denDegree explicit denominator
// coefficients, each highest degree first. The total length must be
// (numDegree+1)+(denDegree+1)-1.
func NewRational[T hwy.Floats](numDegree, denDegree int, table ...T) (Rational[T], error) {
	want := numDegree + denDegree + 1
	if numDegree < 0 || denDegree < 0 || len(table) != want {
		return Rational[T]{}, fmt.Errorf("%w: rational of degree (%d, %d) needs %d coefficients, got %d",
			ErrCoefficientCount, numDegree, denDegree, want, len(table))
	}
	t := append([]T(nil), table...)
	return Rational[T]{num: t[:numDegree+1], den: t[numDegree+1:]}, nil
}

// MustRational is like NewRational but panics on an invalid table.
func MustRational[T hwy.Floats](numDegree, denDegree int, table ...T) Rational[T] {
	r, err := NewRational(numDegree, denDegree, table...)
	if err != nil {
		panic(err)
	}
	return r
}

// Degrees returns the numerator and denominator degrees.
func (r Rational[T]) Degrees() (num, den int) { return len(r.num) - 1, len(r.den) }

// Eval evaluates the rational function at x.
func (r Rational[T]) Eval(x T) T { return EvaluateRational(x, r.num, r.den) }

// EvalVec evaluates the rational function on every lane of v.
func (r Rational[T]) EvalVec(v hwy.Vec[T]) hwy.Vec[T] { return EvaluateRationalVec(v, r.num, r.den) }

// convertTable rounds a float64 literal table to the working precision.
func convertTable[T hwy.Floats](src []float64) []T {
	out := make([]T, len(src))
	for i, c := range src {
		out[i] = T(c)
	}
	return out
}

// polyFrom builds a Poly from float64 literals.
func polyFrom[T hwy.Floats](src []float64) Poly[T] {
	return MustPoly(len(src)-1, convertTable[T](src)...)
}

// rationalFrom builds a Rational from float64 numerator and denominator-tail literals.
func rationalFrom[T hwy.Floats](num, den []float64) Rational[T] {
	table := convertTable[T](append(append([]float64(nil), num...), den...))
	return MustRational(len(num)-1, len(den), table...)
}
