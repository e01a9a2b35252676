package crypthash

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/quarnos/unixcrypt/password"
)

// Params carries the per-call inputs of [Generator.Generate].
// Every field is optional; the zero value asks for a fresh random password
// hashed with the active backend's default algorithm under a random salt.
type Params struct {
	// Password is the plaintext to hash. Empty means "generate a secure
	// random password" (see [password.Secure]); the generated plaintext is
	// not returned, which matches the initial-lockout use of the original
	// interface. Hash the empty string explicitly via a Backend if you
	// really need to.
	Password string

	// Salt is the scheme-specific salt, bare or as a full setting string.
	// Empty means the backend generates a random one.
	Salt string

	// Algorithm is one of the five known scheme names. Empty selects the
	// first entry of the active backend's method list.
	Algorithm Algorithm
}

// GeneratorOptions configures a [Generator].
type GeneratorOptions struct {
	// Backends is the ordered provider list; the first backend whose
	// method set contains the requested algorithm handles the call.
	Backends []Backend

	// Logger receives the warning emitted when a supplied salt has to be
	// truncated. Nil means [slog.Default].
	Logger *slog.Logger
}

// Generator dispatches hash generation across an ordered, immutable list of
// [Backend] providers. Construct it once at startup; it is safe for
// concurrent use.
type Generator struct {
	backends []Backend
	logger   *slog.Logger
}

// NewGenerator creates a Generator with an explicit backend list.
// Use [NewDefaultGenerator] for the batteries-included variant.
func NewGenerator(opts GeneratorOptions) *Generator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		backends: slices.Clone(opts.Backends),
		logger:   logger,
	}
}

// NewDefaultGenerator creates a Generator preferring the platform crypt(3)
// backend when the host has one, with the pure Go backend as fallback.
//
// This is the recommended starting point for most applications.
func NewDefaultGenerator() *Generator {
	var backends []Backend
	if nb, err := NewNativeBackend(); err == nil {
		backends = append(backends, nb)
	}
	backends = append(backends, NewPureBackend())
	return NewGenerator(GeneratorOptions{Backends: backends})
}

// Backends returns a copy of the configured backend list, in dispatch order.
func (g *Generator) Backends() []Backend {
	return slices.Clone(g.backends)
}

// Generate produces a salted one-way hash string for p.
//
// Backend selection is deterministic: the first backend whose method set
// contains the requested algorithm handles the whole call; there is no
// fallback blending within a single call. When p.Algorithm is empty the
// first backend's default algorithm is used.
//
// A supplied salt that is too long for the chosen scheme is truncated with a
// warning rather than rejected; see the package documentation for the exact
// per-scheme policy. Other backend failures propagate unmodified.
func (g *Generator) Generate(p Params) (string, error) {
	if p.Algorithm != "" && !knownAlgorithm(p.Algorithm) {
		return "", fmt.Errorf("%w: cannot hash using %q", ErrUnsupportedAlgorithm, p.Algorithm)
	}
	if len(g.backends) == 0 {
		return "", ErrNoBackend
	}
	pw := p.Password
	if pw == "" {
		var err error
		pw, err = password.Secure(password.DefaultLength)
		if err != nil {
			return "", err
		}
	}
	return g.hash(pw, p.Salt, p.Algorithm)
}

// Verify reports whether plaintext matches a previously produced crypt(3)
// hash. The producing scheme is detected from the hash itself and the
// comparison is performed in constant time.
//
// Returns [ErrUnknownHash] when the hash format is unrecognised and
// [ErrUnsupportedAlgorithm] when no configured backend supports the
// detected scheme.
func (g *Generator) Verify(plaintext, hash string) (bool, error) {
	algorithm, setting, err := splitSetting(hash)
	if err != nil {
		return false, err
	}
	computed, err := g.hash(plaintext, setting, algorithm)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1, nil
}

// hash runs backend selection and the per-call salt policy. An empty
// algorithm means "the first backend's default".
func (g *Generator) hash(pw, salt string, algorithm Algorithm) (string, error) {
	for _, b := range g.backends {
		methods := b.Methods()
		if len(methods) == 0 {
			continue
		}
		chosen := algorithm
		if chosen == "" {
			chosen = methods[0]
		} else if !slices.Contains(methods, chosen) {
			continue
		}
		adjusted, err := g.adjustSalt(chosen, salt)
		if err != nil {
			return "", err
		}
		return b.Hash(pw, adjusted, chosen)
	}
	if algorithm == "" {
		return "", ErrNoBackend
	}
	return "", fmt.Errorf("%w: cannot hash using %q", ErrUnsupportedAlgorithm, algorithm)
}

// adjustSalt applies the documented truncation policy for salts that carry
// more material than the scheme can use. md5/sha salts are left alone; those
// schemes truncate overlong salt text themselves.
func (g *Generator) adjustSalt(algorithm Algorithm, salt string) (string, error) {
	if salt == "" {
		return "", nil
	}
	switch algorithm {
	case AlgorithmDES:
		if len(salt) > desSaltChars {
			g.logger.Warn("Hash salt is too long for 'crypt' hash.",
				slog.Int("length", len(salt)))
			salt = salt[:desSaltChars]
		}
	case AlgorithmBlowfish:
		st, err := parseBlowfishSetting(salt)
		if err != nil {
			return "", err
		}
		if len(st.salt) > blowfishSaltChars {
			g.logger.Warn("Hash salt is too long for 'blowfish' hash.",
				slog.Int("length", len(st.salt)))
			st.salt = st.salt[:blowfishSaltChars]
		}
		return st.String(), nil
	}
	return salt, nil
}

// splitSetting extracts the scheme and the full setting portion (everything
// the scheme needs to re-derive the digest) from a stored hash.
func splitSetting(hash string) (Algorithm, string, error) {
	algorithm, ok := DetectAlgorithm(hash)
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownHash, hash)
	}
	switch algorithm {
	case AlgorithmDES:
		return algorithm, hash[:desSaltChars], nil
	case AlgorithmBlowfish:
		// "$2b$10$" + 22 salt chars + 31 digest chars.
		end := len(hash) - blowfishDigestChars
		if end < len("$2b$04$")+blowfishSaltChars {
			return "", "", fmt.Errorf("%w: %q", ErrUnknownHash, hash)
		}
		return algorithm, hash[:end], nil
	default:
		// "$id$[rounds=N$]salt$digest" — drop the digest segment.
		idx := strings.LastIndexByte(hash, '$')
		if idx < len(algorithm.prefix()) {
			return "", "", fmt.Errorf("%w: %q", ErrUnknownHash, hash)
		}
		return algorithm, hash[:idx], nil
	}
}
