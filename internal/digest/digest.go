// Package digest hashes the canonical form of JSON documents. Because the
// canonical encoding is byte-identical for semantically equal documents,
// the digests below are stable identifiers for JSON content.
package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"canonjson/internal/canonical"
)

// Algorithm selects the hash applied to the canonical bytes.
type Algorithm string

const (
	// SHA256 is the default algorithm
	SHA256 Algorithm = "sha256"
	// SHA512 selects SHA-512
	SHA512 Algorithm = "sha512"
	// BLAKE2b selects BLAKE2b-256
	BLAKE2b Algorithm = "blake2b"
)

// ParseAlgorithm maps a user-supplied name onto an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case SHA256, SHA512, BLAKE2b:
		return Algorithm(name), nil
	default:
		return "", fmt.Errorf("unknown digest algorithm %q (expected sha256, sha512, or blake2b)", name)
	}
}

// Sum canonicalizes input and returns the lowercase hex digest of the
// canonical byte sequence.
func Sum(input []byte, algo Algorithm) (string, error) {
	canon, err := canonical.Canonicalize(input)
	if err != nil {
		return "", err
	}
	return SumCanonical(canon, algo)
}

// SumCanonical hashes bytes that are already in canonical form.
func SumCanonical(canon []byte, algo Algorithm) (string, error) {
	switch algo {
	case SHA256:
		sum := sha256.Sum256(canon)
		return hex.EncodeToString(sum[:]), nil
	case SHA512:
		sum := sha512.Sum512(canon)
		return hex.EncodeToString(sum[:]), nil
	case BLAKE2b:
		sum := blake2b.Sum256(canon)
		return hex.EncodeToString(sum[:]), nil
	default:
		return "", fmt.Errorf("unknown digest algorithm %q (expected sha256, sha512, or blake2b)", algo)
	}
}
