//go:build !windows

package pointer

// System returns the native pointer source, which this platform lacks.
func System() (Source, error) {
	return nil, ErrUnsupported
}
