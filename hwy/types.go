// Package hwy provides the portable lane layer used by the vmath kernels.
//
// A Vec holds one lane group: as many elements as the detected SIMD register
// width fits for the element type. Every operation is applied lane by lane and
// rounds exactly like the equivalent scalar expression, so a bulk loop that
// processes full lane groups and finishes with scalar code produces the same
// bits as a purely scalar loop.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-vmath/hwy"
//
//	a := hwy.Load(data1)
//	b := hwy.Load(data2)
//	result := hwy.Add(a, b)
//	hwy.Store(result, output)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// maxVecLanes is the largest lane count any dispatch level produces
// (64-byte registers holding float32).
const maxVecLanes = 16

// Vec is a portable lane group. It is a value type backed by a fixed-size
// array, so creating and passing vectors never allocates.
//
// Vec instances should not be created directly; use Load, Set, or Zero instead.
type Vec[T Floats] struct {
	data [maxVecLanes]T
	n    int
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Lane returns the value of lane i. It panics if i is out of range.
func (v Vec[T]) Lane(i int) T {
	if i < 0 || i >= v.n {
		panic("hwy: lane index out of range")
	}
	return v.data[i]
}

// Data returns a copy of the active lanes.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	out := make([]T, v.n)
	copy(out, v.data[:v.n])
	return out
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	n := min(v.n, len(dst))
	copy(dst[:n], v.data[:n])
}
