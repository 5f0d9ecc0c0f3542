// Package token issues TOTP secrets and keeps the credential ledger.
//
// Every issuance is appended to the ledger with the secret, the requested
// bit strength, and the measured generation time. Revocation is a soft
// delete that flips the entry status; revoked entries stay visible in
// listings so the issuance history is never lost. When an encryption key
// is configured, secrets are AES-encrypted at rest and decrypted on read.
package token
