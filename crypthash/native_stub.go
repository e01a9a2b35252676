//go:build !linux || !cgo

package crypthash

// NativeBackend delegates to the platform crypt(3) implementation. It is
// only available on Linux builds with cgo enabled; this stub keeps the type
// present so callers can reference it unconditionally.
type NativeBackend struct{}

// NewNativeBackend always returns [ErrBackendUnavailable] on this platform.
func NewNativeBackend() (*NativeBackend, error) {
	return nil, ErrBackendUnavailable
}

// Name returns "crypt".
func (b *NativeBackend) Name() string { return "crypt" }

// Methods returns nil: no scheme is available without a platform crypt(3).
func (b *NativeBackend) Methods() []Algorithm { return nil }

// Hash always returns [ErrBackendUnavailable] on this platform.
func (b *NativeBackend) Hash(password, salt string, algorithm Algorithm) (string, error) {
	return "", ErrBackendUnavailable
}
