//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures use scalar mode; lane groups still carry 16 bytes
	// so blocking behaves the same everywhere.
	setScalarMode()
}
