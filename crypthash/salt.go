package crypthash

import (
	"crypto/rand"
	"fmt"
	"io"
)

const (
	desSaltChars = 2
	md5SaltChars = 8
	shaSaltChars = 16
)

// settingAlphabet is the crypt(3) salt character set. Exactly 64 characters,
// so reducing a random byte modulo its length stays uniform.
const settingAlphabet = "./0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// randomSaltText returns n cryptographically random salt characters.
func randomSaltText(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("crypthash: failed to generate salt: %w", err)
	}
	for i, c := range buf {
		buf[i] = settingAlphabet[int(c)%len(settingAlphabet)]
	}
	return string(buf), nil
}

// generateSetting builds a full random setting string for algorithm, the
// crypt(3) mksalt equivalent.
func generateSetting(algorithm Algorithm) (string, error) {
	switch algorithm {
	case AlgorithmSHA512, AlgorithmSHA256:
		s, err := randomSaltText(shaSaltChars)
		if err != nil {
			return "", err
		}
		return algorithm.prefix() + s, nil
	case AlgorithmMD5:
		s, err := randomSaltText(md5SaltChars)
		if err != nil {
			return "", err
		}
		return algorithm.prefix() + s, nil
	case AlgorithmDES:
		return randomSaltText(desSaltChars)
	case AlgorithmBlowfish:
		raw := make([]byte, blowfishSaltBytes)
		if _, err := io.ReadFull(rand.Reader, raw); err != nil {
			return "", fmt.Errorf("crypthash: failed to generate salt: %w", err)
		}
		return fmt.Sprintf("$2b$%02d$%s",
			BlowfishDefaultCost, blowfishEncoding.EncodeToString(raw)), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
}
