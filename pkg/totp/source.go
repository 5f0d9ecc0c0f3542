package totp

import "time"

// SecretSource selects one of the two supported secret derivation modes:
// a fresh random secret of a given bit strength, or a secret derived
// deterministically from a stored password hash. The two modes are
// functionally distinct and both remain supported; callers state which one
// they want instead of the package guessing.
type SecretSource struct {
	bitSize      int
	passwordHash string
	derived      bool
}

// RandomSecret selects random-mode generation with the given bit strength.
// A non-positive bitSize falls back to DefaultBitSize.
func RandomSecret(bitSize int) SecretSource {
	if bitSize <= 0 {
		bitSize = DefaultBitSize
	}
	return SecretSource{bitSize: bitSize}
}

// DerivedSecret selects deterministic derivation from the given password hash.
func DerivedSecret(passwordHash string) SecretSource {
	return SecretSource{passwordHash: passwordHash, derived: true}
}

// BitSize returns the entropy in bits of secrets this source produces.
// Derived secrets report the fixed SHA-256 digest strength.
func (s SecretSource) BitSize() int {
	if s.derived {
		return 256
	}
	return s.bitSize
}

// Resolve produces the secret along with the generation time in
// milliseconds. Derived secrets are pure and report zero elapsed time
// beyond the digest cost.
func (s SecretSource) Resolve() (string, float64, error) {
	if s.derived {
		start := time.Now()
		secret, err := DeriveSecretFromHash(s.passwordHash)
		if err != nil {
			return "", 0, err
		}
		elapsed := float64(time.Since(start).Nanoseconds()) / float64(time.Millisecond)
		return secret, elapsed, nil
	}
	return MeasureGeneration(s.bitSize)
}
