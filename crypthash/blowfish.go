package crypthash

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/blowfish"
)

const (
	// BlowfishMinCost is the smallest work factor accepted in a blowfish
	// salt setting.
	BlowfishMinCost = 4
	// BlowfishMaxCost is the largest work factor accepted in a blowfish
	// salt setting.
	BlowfishMaxCost = 31
	// BlowfishDefaultCost is the work factor used when the salt does not
	// carry one (≈ 250 ms on modern hardware; above the OWASP minimum).
	BlowfishDefaultCost = 12

	blowfishSaltChars   = 22
	blowfishDigestChars = 31
	blowfishSaltBytes   = 16
	blowfishMaxKeyBytes = 72
)

// blowfishMagic is the cleartext bcrypt encrypts 64 times with the derived
// key schedule.
var blowfishMagic = []byte("OrpheanBeholderScryDoubt")

// blowfishEncoding is the bcrypt variant of base64 (".", "/", then
// alphanumerics) with no padding.
var blowfishEncoding = base64.NewEncoding(
	"./ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789",
).WithPadding(base64.NoPadding)

// blowfishSetting is a parsed salt setting: "[$2b$][cost$]<22 chars>".
type blowfishSetting struct {
	minor string // "2b" unless the caller supplied another variant
	cost  int
	salt  string
}

func (s blowfishSetting) String() string {
	return fmt.Sprintf("$%s$%02d$%s", s.minor, s.cost, s.salt)
}

// parseBlowfishSetting accepts a bare 22-character salt, a "cost$salt" pair,
// or a full "$2b$cost$salt" setting string. The salt text itself is not
// length-checked here so the caller can apply the truncation policy first.
func parseBlowfishSetting(salt string) (blowfishSetting, error) {
	s := blowfishSetting{minor: "2b", cost: BlowfishDefaultCost}
	rest := salt
	if strings.HasPrefix(rest, "$") {
		end := strings.IndexByte(rest[1:], '$')
		if end < 0 {
			return s, fmt.Errorf("%w: malformed blowfish setting %q", ErrInvalidSalt, salt)
		}
		s.minor = rest[1 : 1+end]
		switch s.minor {
		case "2a", "2b", "2x", "2y":
		default:
			return s, fmt.Errorf("%w: unknown blowfish variant %q", ErrInvalidSalt, s.minor)
		}
		rest = rest[end+2:]
	}
	if i := strings.IndexByte(rest, '$'); i >= 0 {
		cost, err := strconv.Atoi(rest[:i])
		if err != nil {
			return s, fmt.Errorf("%w: non-numeric blowfish cost in %q", ErrInvalidSalt, salt)
		}
		s.cost = cost
		rest = rest[i+1:]
	}
	if s.cost < BlowfishMinCost || s.cost > BlowfishMaxCost {
		return s, fmt.Errorf("%w: blowfish cost %d must be in [%d, %d]",
			ErrInvalidSalt, s.cost, BlowfishMinCost, BlowfishMaxCost)
	}
	s.salt = rest
	return s, nil
}

// blowfishHash derives a bcrypt hash with a caller-controlled salt setting.
// An empty salt generates a random one under [BlowfishDefaultCost].
//
// x/crypto's bcrypt package keeps its salt parameter internal, so the key
// schedule is driven here through the blowfish primitives it builds on.
func blowfishHash(password, salt string) (string, error) {
	var st blowfishSetting
	if salt == "" {
		raw := make([]byte, blowfishSaltBytes)
		if _, err := io.ReadFull(rand.Reader, raw); err != nil {
			return "", fmt.Errorf("crypthash: failed to generate blowfish salt: %w", err)
		}
		st = blowfishSetting{
			minor: "2b",
			cost:  BlowfishDefaultCost,
			salt:  blowfishEncoding.EncodeToString(raw),
		}
	} else {
		var err error
		st, err = parseBlowfishSetting(salt)
		if err != nil {
			return "", err
		}
	}
	if len(st.salt) != blowfishSaltChars {
		return "", fmt.Errorf("%w: blowfish salt must be %d characters, got %d",
			ErrInvalidSalt, blowfishSaltChars, len(st.salt))
	}
	csalt, err := blowfishEncoding.DecodeString(st.salt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSalt, err)
	}
	csalt = csalt[:blowfishSaltBytes]
	// Re-encode so the emitted salt is canonical: the 22nd character only
	// contributes two bits and crypt(3) zeroes the rest.
	st.salt = blowfishEncoding.EncodeToString(csalt)

	digest, err := blowfishKey([]byte(password), csalt, st.cost)
	if err != nil {
		return "", err
	}
	return st.String() + blowfishEncoding.EncodeToString(digest), nil
}

// blowfishKey runs the bcrypt construction: an expensive salted Blowfish key
// schedule, then 64 ECB encryptions of the magic cleartext.
func blowfishKey(key, csalt []byte, cost int) ([]byte, error) {
	if len(key) > blowfishMaxKeyBytes {
		// crypt(3) $2b$ semantics: only the first 72 bytes participate.
		key = key[:blowfishMaxKeyBytes]
	}
	ckey := append(key[:len(key):len(key)], 0)
	c, err := blowfish.NewSaltedCipher(ckey, csalt)
	if err != nil {
		return nil, fmt.Errorf("crypthash: blowfish setup failed: %w", err)
	}
	for i, rounds := uint64(0), uint64(1)<<uint(cost); i < rounds; i++ {
		blowfish.ExpandKey(ckey, c)
		blowfish.ExpandKey(csalt, c)
	}

	data := make([]byte, len(blowfishMagic))
	copy(data, blowfishMagic)
	for i := 0; i < len(data); i += 8 {
		for j := 0; j < 64; j++ {
			c.Encrypt(data[i:i+8], data[i:i+8])
		}
	}
	// Only 23 of the 24 magic bytes make it into the hash.
	return data[:23], nil
}
