package password

import "errors"

// ErrTooShort is returned by [Validate] when the password is shorter than
// the policy minimum.
var ErrTooShort = errors.New("password: too short")
