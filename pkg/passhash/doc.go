// Package passhash provides one-way password hashing and verification
// backed by bcrypt.
//
// Each call to Hash generates a fresh salt, so hashing the same password
// twice yields different outputs. Verify distinguishes a wrong password
// (false, nil) from a malformed stored hash (ErrMalformedHash), which is
// treated as a data error rather than a verification failure.
package passhash
