package crypthash

import (
	"fmt"
	"strings"

	"github.com/GehirnInc/crypt"
	_ "github.com/GehirnInc/crypt/md5_crypt"
	_ "github.com/GehirnInc/crypt/sha256_crypt"
	_ "github.com/GehirnInc/crypt/sha512_crypt"
)

// PureBackend hashes without touching the platform crypt(3): the modular
// crypt schemes run through GehirnInc/crypt and blowfish through the local
// bcrypt core. It is always available and behaves identically on every
// platform.
//
// Legacy DES crypt is deliberately absent from its method set; producing
// new DES hashes without a platform library to verify them against has no
// use case, so DES stays native-only.
type PureBackend struct{}

// NewPureBackend returns the pure Go backend.
func NewPureBackend() *PureBackend { return &PureBackend{} }

// Name returns "pure".
func (b *PureBackend) Name() string { return "pure" }

// Methods returns sha512, sha256, blowfish, md5 — strongest first, sha512
// being the backend default.
func (b *PureBackend) Methods() []Algorithm {
	return []Algorithm{AlgorithmSHA512, AlgorithmSHA256, AlgorithmBlowfish, AlgorithmMD5}
}

// Hash derives the crypt(3) string for password under algorithm.
// See [Backend] for the accepted salt forms.
func (b *PureBackend) Hash(password, salt string, algorithm Algorithm) (string, error) {
	switch algorithm {
	case AlgorithmSHA512, AlgorithmSHA256, AlgorithmMD5:
		return b.mcfHash(password, salt, algorithm)
	case AlgorithmBlowfish:
		return blowfishHash(password, salt)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
}

func (b *PureBackend) mcfHash(password, salt string, algorithm Algorithm) (string, error) {
	var crypter crypt.Crypter
	switch algorithm {
	case AlgorithmSHA512:
		crypter = crypt.SHA512.New()
	case AlgorithmSHA256:
		crypter = crypt.SHA256.New()
	case AlgorithmMD5:
		crypter = crypt.MD5.New()
	}
	var setting []byte
	if salt != "" {
		if !strings.HasPrefix(salt, "$") {
			salt = algorithm.prefix() + salt
		}
		setting = []byte(salt)
	}
	// An empty setting makes the crypter generate its own random salt.
	return crypter.Generate([]byte(password), setting)
}
