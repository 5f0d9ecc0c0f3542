package passhash

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when no custom cost is provided.
const DefaultCost = bcrypt.DefaultCost

// Hash hashes the password with bcrypt using a freshly generated salt.
// The same password produces a different hash on every call.
func Hash(password string) (string, error) {
	return HashWithCost(password, DefaultCost)
}

// HashWithCost hashes the password with an explicit bcrypt cost.
func HashWithCost(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", errors.Join(ErrFailedToHash, err)
	}
	return string(hash), nil
}

// Verify reports whether the password matches the stored hash.
// A mismatch returns (false, nil); a hash that is not valid bcrypt output
// returns ErrMalformedHash so callers can distinguish data corruption from
// a wrong password.
func Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, errors.Join(ErrMalformedHash, err)
	}
}
