package password

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
)

// DefaultLength is the password length used when callers pass a
// non-positive length to [Secure].
const DefaultLength = 20

// UnsafeSymbols are the symbol characters [Secure] never emits. This is a
// hard contract: each of them either needs shell escaping or doubles as a
// delimiter in crypt(3) hash strings.
const UnsafeSymbols = "!@#$%^&*()_=+"

const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits    = "0123456789"
	// symbols is ASCII punctuation minus UnsafeSymbols.
	symbols = "\"',-./:;<>?[\\]`{|}~"
)

var charset = lowercase + uppercase + digits + symbols

// Secure returns a random password of the given length drawn from letters,
// digits and the safe symbol set. Lengths below 1 fall back to
// [DefaultLength]. The randomness comes from crypto/rand.
func Secure(length int) (string, error) {
	if length < 1 {
		length = DefaultLength
	}
	// Largest multiple of len(charset) below 256; bytes at or above it are
	// redrawn so the reduction stays uniform.
	limit := 256 - 256%len(charset)

	var sb strings.Builder
	sb.Grow(length)
	buf := make([]byte, 64)
	for sb.Len() < length {
		if _, err := io.ReadFull(rand.Reader, buf); err != nil {
			return "", fmt.Errorf("password: failed to read random bytes: %w", err)
		}
		for _, c := range buf {
			if int(c) >= limit {
				continue
			}
			sb.WriteByte(charset[int(c)%len(charset)])
			if sb.Len() == length {
				break
			}
		}
	}
	return sb.String(), nil
}

// Policy configures [Validate].
type Policy struct {
	// MinLength is the minimum password length in bytes.
	MinLength int
}

// DefaultPolicy returns a Policy requiring at least 8 characters.
func DefaultPolicy() Policy {
	return Policy{MinLength: 8}
}

// Validate checks plaintext against p. Returns [ErrTooShort] when the
// password does not meet the minimum length.
func Validate(plaintext string, p Policy) error {
	if len(plaintext) < p.MinLength {
		return fmt.Errorf("%w: need at least %d characters, got %d",
			ErrTooShort, p.MinLength, len(plaintext))
	}
	return nil
}
