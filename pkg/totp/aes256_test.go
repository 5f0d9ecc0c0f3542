package totp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/totpvault/pkg/totp"
)

func TestEncryptDecryptSecret(t *testing.T) {
	t.Parallel()

	key, err := totp.GenerateEncryptionKey()
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		secret, err := totp.GenerateSecret(160)
		require.NoError(t, err)

		encrypted, err := totp.EncryptSecret(secret, key)
		require.NoError(t, err)
		assert.NotEqual(t, secret, encrypted)

		decrypted, err := totp.DecryptSecret(encrypted, key)
		require.NoError(t, err)
		assert.Equal(t, secret, decrypted)
	})

	t.Run("wrong key length rejected", func(t *testing.T) {
		t.Parallel()
		_, err := totp.EncryptSecret("secret", []byte("short"))
		assert.ErrorIs(t, err, totp.ErrInvalidEncryptionKeyLength)

		_, err = totp.DecryptSecret("whatever", []byte("short"))
		assert.ErrorIs(t, err, totp.ErrInvalidEncryptionKeyLength)
	})

	t.Run("tampered ciphertext rejected", func(t *testing.T) {
		t.Parallel()
		encrypted, err := totp.EncryptSecret("secret", key)
		require.NoError(t, err)

		otherKey, err := totp.GenerateEncryptionKey()
		require.NoError(t, err)

		_, err = totp.DecryptSecret(encrypted, otherKey)
		assert.ErrorIs(t, err, totp.ErrFailedToDecryptSecret)
	})

	t.Run("ciphertext too short", func(t *testing.T) {
		t.Parallel()
		_, err := totp.DecryptSecret("YQ==", key)
		assert.ErrorIs(t, err, totp.ErrInvalidCipherTooShort)
	})
}

func TestGetEncryptionKey(t *testing.T) {
	t.Parallel()

	t.Run("valid encoded key", func(t *testing.T) {
		t.Parallel()
		encoded, err := totp.GenerateEncodedEncryptionKey()
		require.NoError(t, err)

		key, err := totp.GetEncryptionKey(totp.Config{EncryptionKey: encoded})
		require.NoError(t, err)
		assert.Len(t, key, totp.AESKeySize)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		_, err := totp.GetEncryptionKey(totp.Config{})
		assert.ErrorIs(t, err, totp.ErrEncryptionKeyNotSet)
	})

	t.Run("wrong length", func(t *testing.T) {
		t.Parallel()
		_, err := totp.GetEncryptionKey(totp.Config{EncryptionKey: "dG9vc2hvcnQ="})
		assert.ErrorIs(t, err, totp.ErrInvalidEncryptionKeyLength)
	})
}
