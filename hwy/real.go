//go:build !vmath_float32

package hwy

// Real is the working precision selected at build time. It is float64 unless
// the module is built with the vmath_float32 tag.
type Real = float64

// RealBits is the width of Real in bits.
const RealBits = 64
