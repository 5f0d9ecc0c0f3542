package totp_test

import (
	"encoding/base32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/totpvault/pkg/totp"
)

func TestGenerateSecret(t *testing.T) {
	t.Parallel()

	t.Run("decoded length matches bit size", func(t *testing.T) {
		t.Parallel()
		for _, bits := range []int{64, 128, 160, 256, 1024} {
			secret, err := totp.GenerateSecret(bits)
			require.NoError(t, err)
			assert.Regexp(t, totp.ValidateSecretKeyRegex, secret)

			decoded, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(secret)
			require.NoError(t, err)
			assert.Len(t, decoded, bits/8, "bit size %d", bits)
		}
	})

	t.Run("non-multiple of 8 truncates", func(t *testing.T) {
		t.Parallel()
		secret, err := totp.GenerateSecret(130)
		require.NoError(t, err)

		decoded, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(secret)
		require.NoError(t, err)
		assert.Len(t, decoded, 16)
	})

	t.Run("bit size below one byte rejected", func(t *testing.T) {
		t.Parallel()
		_, err := totp.GenerateSecret(7)
		assert.ErrorIs(t, err, totp.ErrInvalidBitSize)
		_, err = totp.GenerateSecret(0)
		assert.ErrorIs(t, err, totp.ErrInvalidBitSize)
	})

	t.Run("secrets differ between calls", func(t *testing.T) {
		t.Parallel()
		first, err := totp.GenerateSecret(128)
		require.NoError(t, err)
		second, err := totp.GenerateSecret(128)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}

func TestDeriveSecretFromHash(t *testing.T) {
	t.Parallel()

	t.Run("pure function", func(t *testing.T) {
		t.Parallel()
		hash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
		first, err := totp.DeriveSecretFromHash(hash)
		require.NoError(t, err)
		second, err := totp.DeriveSecretFromHash(hash)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("fixed 32-character output", func(t *testing.T) {
		t.Parallel()
		for _, hash := range []string{
			"$2a$10$N9qo8uLOickgx2ZMRZoMye",
			"ciphertext:salt:params",
			"x",
		} {
			secret, err := totp.DeriveSecretFromHash(hash)
			require.NoError(t, err)
			assert.Len(t, secret, totp.DerivedSecretLength)
			assert.Regexp(t, totp.ValidateSecretKeyRegex, secret)
		}
	})

	t.Run("only first colon-delimited field contributes", func(t *testing.T) {
		t.Parallel()
		first, err := totp.DeriveSecretFromHash("cipher:salt-a")
		require.NoError(t, err)
		second, err := totp.DeriveSecretFromHash("cipher:salt-b")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("different hashes yield different secrets", func(t *testing.T) {
		t.Parallel()
		first, err := totp.DeriveSecretFromHash("cipher-a")
		require.NoError(t, err)
		second, err := totp.DeriveSecretFromHash("cipher-b")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("empty hash rejected", func(t *testing.T) {
		t.Parallel()
		_, err := totp.DeriveSecretFromHash("")
		assert.ErrorIs(t, err, totp.ErrEmptyPasswordHash)
		_, err = totp.DeriveSecretFromHash(":salt")
		assert.ErrorIs(t, err, totp.ErrEmptyPasswordHash)
	})

	t.Run("derived secret generates valid codes", func(t *testing.T) {
		t.Parallel()
		secret, err := totp.DeriveSecretFromHash("$2a$10$N9qo8uLOickgx2ZMRZoMye")
		require.NoError(t, err)

		code, err := totp.GenerateTOTP(secret)
		require.NoError(t, err)

		ok, err := totp.ValidateTOTP(secret, code)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestMeasureGeneration(t *testing.T) {
	t.Parallel()

	secret, elapsed, err := totp.MeasureGeneration(1024)
	require.NoError(t, err)
	assert.NotEmpty(t, secret)
	assert.GreaterOrEqual(t, elapsed, 0.0)

	_, _, err = totp.MeasureGeneration(0)
	assert.ErrorIs(t, err, totp.ErrInvalidBitSize)
}

func TestSecretSource(t *testing.T) {
	t.Parallel()

	t.Run("random source", func(t *testing.T) {
		t.Parallel()
		src := totp.RandomSecret(128)
		assert.Equal(t, 128, src.BitSize())

		secret, _, err := src.Resolve()
		require.NoError(t, err)

		decoded, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(secret)
		require.NoError(t, err)
		assert.Len(t, decoded, 16)
	})

	t.Run("random source defaults bit size", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, totp.DefaultBitSize, totp.RandomSecret(0).BitSize())
	})

	t.Run("derived source is deterministic", func(t *testing.T) {
		t.Parallel()
		src := totp.DerivedSecret("cipher:salt")
		first, _, err := src.Resolve()
		require.NoError(t, err)
		second, _, err := src.Resolve()
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
