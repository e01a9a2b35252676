package crypthash

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := g.Generate(crypthash.Params{Algorithm: "scrypt"})
//	if errors.Is(err, crypthash.ErrUnsupportedAlgorithm) {
//	    // algorithm unknown or not supported by any configured backend
//	}
var (
	// ErrUnsupportedAlgorithm is returned when the requested algorithm is
	// not one of the five known scheme names, or is known but not in any
	// configured backend's method set.
	ErrUnsupportedAlgorithm = errors.New("crypthash: unsupported hash algorithm")

	// ErrNoBackend is returned by [Generator.Generate] when the generator
	// was constructed with no hashing backends.
	ErrNoBackend = errors.New("crypthash: no hashing backend available")

	// ErrBackendUnavailable is returned by [NewNativeBackend] when the
	// platform crypt(3) implementation is absent or supports none of the
	// known schemes.
	ErrBackendUnavailable = errors.New("crypthash: backend unavailable on this platform")

	// ErrInvalidSalt is returned when a supplied salt cannot be repaired by
	// the documented truncation policy (e.g. a blowfish salt that is too
	// short or contains bytes outside the bcrypt base64 alphabet).
	ErrInvalidSalt = errors.New("crypthash: invalid salt")

	// ErrUnknownHash is returned by [Generator.Verify] when the stored hash
	// does not match any recognised crypt(3) format.
	ErrUnknownHash = errors.New("crypthash: unrecognised hash format")
)
