package token

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

const (
	// DefaultKeyBytes is the number of random bytes in an access key.
	// 32 bytes base64-encode to 44 characters.
	DefaultKeyBytes = 32

	// MinKeyBytes is the smallest key GenerateWithLength accepts.
	MinKeyBytes = 16

	// fingerprintLength is the number of hex characters Fingerprint keeps.
	fingerprintLength = 12
)

// Generate creates a random access key of DefaultKeyBytes bytes.
//
// Returns:
//   - string: standard base64 encoding of the random bytes
//   - error: an error if the random source fails
func Generate() (string, error) {
	return GenerateWithLength(DefaultKeyBytes)
}

// GenerateWithLength creates a random access key of numBytes bytes.
//
// Parameters:
//   - numBytes: number of random bytes, at least MinKeyBytes
//
// Returns:
//   - string: standard base64 encoding of the random bytes
//   - error: an error if numBytes is too small or the random source fails
func GenerateWithLength(numBytes int) (string, error) {
	if numBytes < MinKeyBytes {
		return "", fmt.Errorf("key length must be at least %d bytes", MinKeyBytes)
	}

	b := make([]byte, numBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return base64.StdEncoding.EncodeToString(b), nil
}

// Equal reports whether provided matches expected in constant time.
// Both values are hashed first so the comparison does not depend on
// their lengths.
func Equal(provided, expected string) bool {
	a := sha256.Sum256([]byte(provided))
	b := sha256.Sum256([]byte(expected))
	return hmac.Equal(a[:], b[:])
}

// Fingerprint returns a short, stable, non-reversible identifier for a key.
func Fingerprint(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])[:fingerprintLength]
}
