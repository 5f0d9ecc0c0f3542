package auth

// Session is the role claim handed back on a successful login. There is no
// server-side session state behind it; the client presents the Role value
// on subsequent privileged calls.
type Session struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// UserAccount mirrors the users collection fields the login path needs.
type UserAccount struct {
	ID           string `bson:"id"`
	Username     string `bson:"username"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"password_hash"`
	Approved     bool   `bson:"approved"`
}

// AdminAccount mirrors the admins collection fields the login path needs.
type AdminAccount struct {
	ID           string `bson:"id"`
	Username     string `bson:"username"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"password_hash"`
	Role         string `bson:"role"`
}
