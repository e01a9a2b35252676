package shadow

import "errors"

// Sentinel errors; compare with [errors.Is].
var (
	// ErrMalformedEntry is returned when a line does not have the nine
	// shadow fields or an ageing field is non-numeric.
	ErrMalformedEntry = errors.New("shadow: malformed entry")

	// ErrUserNotFound is returned by File mutations naming an absent user.
	ErrUserNotFound = errors.New("shadow: user not found")
)
