package token

import (
	"time"

	"github.com/google/uuid"
)

// Entry statuses. Revocation is a soft delete: the entry stays in the
// ledger with StatusDeleted and keeps showing up in listings.
const (
	StatusActive  = "active"
	StatusDeleted = "deleted"
)

// Entry is one secret issuance event in the credential ledger.
type Entry struct {
	ID                string  `bson:"id" json:"id"`
	UserID            string  `bson:"user_id" json:"user_id"`
	Username          string  `bson:"username" json:"username"`
	SecretKey         string  `bson:"secret_key" json:"secret_key"`
	BitSize           int     `bson:"bit_size" json:"bit_size"`
	ComputationTimeMS float64 `bson:"computation_time" json:"computation_time"`
	CreatedAt         string  `bson:"created_at" json:"created_at"`
	Status            string  `bson:"status" json:"status"`

	// SecretEncrypted marks entries whose SecretKey is stored AES-encrypted.
	// Entries written before a key was configured stay plaintext.
	SecretEncrypted bool `bson:"secret_encrypted,omitempty" json:"-"`
}

// IssuedToken is returned to the client on issuance: the current code, the
// seconds left in its validity window, and provisioning material for
// authenticator apps.
type IssuedToken struct {
	Token            string  `json:"token"`
	RemainingSeconds int     `json:"remaining_time"`
	Secret           string  `json:"secret"`
	ProvisioningURI  string  `json:"provisioning_uri,omitempty"`
	QRCodePNG        string  `json:"qr_code_png,omitempty"`
	ComputationMS    float64 `json:"computation_time"`
}

func newID() string {
	return uuid.NewString()
}

// timeLayout pads fractional seconds to a fixed six digits. The store sorts
// created_at as a string, so the encoding must keep lexicographic order
// equal to chronological order; variable-width fractions break that.
const timeLayout = "2006-01-02T15:04:05.000000Z07:00"

func nowISO() string {
	return time.Now().UTC().Format(timeLayout)
}
