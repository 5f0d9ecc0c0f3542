// Package auth verifies account credentials and issues role claims.
//
// A login checks the username and email pair against the matching account
// collection, verifies the bcrypt password hash, and for administrators
// also checks the shared admin access password. The result is a Session
// value carrying the role claim that the authorization gate trusts on
// later calls; no token or server-side session backs it.
package auth
