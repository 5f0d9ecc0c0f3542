package registration

import (
	"time"

	"github.com/google/uuid"
)

// User is an approved identity. Created only via approval of a PendingUser;
// immutable except for the approved flag.
type User struct {
	ID           string `bson:"id" json:"id"`
	Username     string `bson:"username" json:"username"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"password_hash" json:"-"`
	Approved     bool   `bson:"approved" json:"approved"`
	CreatedAt    string `bson:"created_at" json:"created_at"`
}

// Admin is an administrative identity with one of the two recognized roles.
type Admin struct {
	ID           string `bson:"id" json:"id"`
	Username     string `bson:"username" json:"username"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"password_hash" json:"-"`
	Role         string `bson:"role" json:"role"`
	CreatedAt    string `bson:"created_at" json:"created_at"`
}

// PendingUser is a submitted registration awaiting approval. Deleted on
// approval or rejection.
type PendingUser struct {
	ID           string `bson:"id" json:"id"`
	Username     string `bson:"username" json:"username"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"password_hash" json:"-"`
	CreatedAt    string `bson:"created_at" json:"created_at"`
}

// PendingAdmin is a submitted admin registration awaiting super-admin
// approval. RequestedRole is carried into the Admin record on approval.
type PendingAdmin struct {
	ID            string `bson:"id" json:"id"`
	Username      string `bson:"username" json:"username"`
	Email         string `bson:"email" json:"email"`
	PasswordHash  string `bson:"password_hash" json:"-"`
	RequestedRole string `bson:"requested_role" json:"requested_role"`
	CreatedAt     string `bson:"created_at" json:"created_at"`
}

// newID generates the string id entities carry, distinct from the store's
// native row identifier.
func newID() string {
	return uuid.NewString()
}

// timeLayout pads fractional seconds to a fixed six digits so persisted
// timestamps sort the same as strings and as instants.
const timeLayout = "2006-01-02T15:04:05.000000Z07:00"

// nowISO returns the current UTC time as an ISO-8601 string, the format all
// persisted timestamps use.
func nowISO() string {
	return time.Now().UTC().Format(timeLayout)
}
