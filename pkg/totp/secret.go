package totp

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base32"
	"errors"
	"strings"
	"time"
)

const (
	// DefaultBitSize is the secret strength used when callers do not ask
	// for a specific one.
	DefaultBitSize = 128

	// DerivedSecretLength is the fixed length, in Base32 characters, of a
	// secret derived from a password hash.
	DerivedSecretLength = 32
)

// GenerateSecret generates a Base32-encoded random secret with bitSize bits
// of entropy. bitSize values that are not a multiple of 8 truncate to the
// next lower byte boundary.
func GenerateSecret(bitSize int) (string, error) {
	byteSize := bitSize / 8
	if byteSize < 1 {
		return "", ErrInvalidBitSize
	}

	secret := make([]byte, byteSize)
	if _, err := rand.Read(secret); err != nil {
		return "", errors.Join(ErrFailedToGenerateSecretKey, err)
	}
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(secret), nil
}

// DeriveSecretFromHash deterministically derives a TOTP secret from a stored
// password hash. The ciphertext segment (first colon-delimited field) is
// digested with SHA-256, Base32-encoded, repeated until at least 32
// characters are available, and truncated to exactly 32 characters.
//
// The derivation is a pure function: the same password hash always yields
// the same secret, which allows recovering the secret without persisting it
// separately.
func DeriveSecretFromHash(passwordHash string) (string, error) {
	cipherText, _, _ := strings.Cut(passwordHash, ":")
	if cipherText == "" {
		return "", ErrEmptyPasswordHash
	}

	digest := sha256.Sum256([]byte(cipherText))
	encoded := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(digest[:])

	for len(encoded) < DerivedSecretLength {
		encoded += encoded
	}
	return encoded[:DerivedSecretLength], nil
}

// MeasureGeneration generates a random secret and reports the wall-clock
// time the generation took, in milliseconds with sub-millisecond precision.
// The measurement is instrumentation only; it never affects correctness.
func MeasureGeneration(bitSize int) (string, float64, error) {
	start := time.Now()
	secret, err := GenerateSecret(bitSize)
	if err != nil {
		return "", 0, err
	}
	elapsed := float64(time.Since(start).Nanoseconds()) / float64(time.Millisecond)
	return secret, elapsed, nil
}
