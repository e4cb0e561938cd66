//go:build vmath_float32

package hwy

// Real is the working precision selected at build time. Building with the
// vmath_float32 tag selects float32.
type Real = float32

// RealBits is the width of Real in bits.
const RealBits = 32
