// Package totp implements RFC 6238 time-based one-time passwords together
// with the secret derivation modes the credential service issues them from.
//
// Two derivation modes coexist and both are first-class:
//
//   - Random mode (GenerateSecret): bitSize/8 bytes from crypto/rand,
//     Base32-encoded without padding. MeasureGeneration wraps it with a
//     wall-clock timing used for instrumentation.
//   - Deterministic mode (DeriveSecretFromHash): a SHA-256 digest of the
//     stored password-hash ciphertext, Base32-encoded and normalized to
//     exactly 32 characters. Idempotent, so the secret can be recovered
//     from the hash without storing it.
//
// SecretSource captures the caller's choice between the two as a tagged
// value instead of the package picking one.
//
// Code generation and verification follow RFC 4226/6238: HMAC-SHA1 over the
// 30-second Unix time step, 6 digits, with a ±1 step skew window on
// verification. RemainingSeconds reports how long the current code stays
// valid, always in [1, 30].
//
// EncryptSecret/DecryptSecret provide AES-256-GCM protection for secrets at
// rest; the key comes from the TOTP_ENCRYPTION_KEY environment variable as
// a base64-encoded 32-byte value (see GenerateEncodedEncryptionKey and the
// cmd/ helper for producing one).
package totp
