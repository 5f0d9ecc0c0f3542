// Package qrcode renders otpauth provisioning URIs (and any other short
// strings) as PNG QR codes, optionally base64-encoded for inline embedding.
package qrcode
