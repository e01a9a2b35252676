package crypthash

import (
	"slices"
	"strings"
)

// Algorithm identifies a crypt(3) hashing scheme.
// Using a named string type prevents accidental confusion with plain strings.
type Algorithm string

const (
	// AlgorithmSHA512 selects sha512-crypt ($6$).
	AlgorithmSHA512 Algorithm = "sha512"
	// AlgorithmSHA256 selects sha256-crypt ($5$).
	AlgorithmSHA256 Algorithm = "sha256"
	// AlgorithmBlowfish selects bcrypt ($2b$ and friends).
	AlgorithmBlowfish Algorithm = "blowfish"
	// AlgorithmMD5 selects md5-crypt ($1$).
	AlgorithmMD5 Algorithm = "md5"
	// AlgorithmDES selects the legacy 13-character DES crypt.
	AlgorithmDES Algorithm = "crypt"
)

// KnownAlgorithms returns the five recognised scheme names in strength order.
// The returned slice is a fresh copy.
func KnownAlgorithms() []Algorithm {
	return []Algorithm{
		AlgorithmSHA512,
		AlgorithmSHA256,
		AlgorithmBlowfish,
		AlgorithmMD5,
		AlgorithmDES,
	}
}

func knownAlgorithm(a Algorithm) bool {
	return slices.Contains(KnownAlgorithms(), a)
}

// prefix returns the modular-crypt magic prefix for a, or "" for legacy DES.
func (a Algorithm) prefix() string {
	switch a {
	case AlgorithmSHA512:
		return "$6$"
	case AlgorithmSHA256:
		return "$5$"
	case AlgorithmBlowfish:
		return "$2b$"
	case AlgorithmMD5:
		return "$1$"
	}
	return ""
}

// DetectAlgorithm inspects a hash string and returns the [Algorithm] that
// produced it. It is a best-effort heuristic based on the hash prefix and
// does not verify the hash itself.
//
// Legacy DES hashes carry no prefix; they are recognised as exactly 13
// characters with no "$" or ":" in them.
//
// The second return value is false when the hash format is not recognised.
func DetectAlgorithm(hash string) (Algorithm, bool) {
	switch {
	case strings.HasPrefix(hash, "$6$"):
		return AlgorithmSHA512, true
	case strings.HasPrefix(hash, "$5$"):
		return AlgorithmSHA256, true
	case strings.HasPrefix(hash, "$2a$"),
		strings.HasPrefix(hash, "$2b$"),
		strings.HasPrefix(hash, "$2x$"),
		strings.HasPrefix(hash, "$2y$"):
		return AlgorithmBlowfish, true
	case strings.HasPrefix(hash, "$1$"):
		return AlgorithmMD5, true
	case len(hash) == 13 && !strings.ContainsAny(hash, "$:"):
		return AlgorithmDES, true
	default:
		return "", false
	}
}
