package token_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/totpvault/modules/token"
)

func newRouterFixture(t *testing.T) (http.Handler, *fakeStorage) {
	t.Helper()

	storage := newFakeStorage()
	storage.accounts["u1"] = &token.Account{
		ID:           "u1",
		Username:     "alice",
		PasswordHash: "$2b$12$abcdefghijklmnopqrstuv:salt",
	}
	ledger := token.NewLedger(storage)
	issuer := token.NewIssuer(storage, ledger, token.IssuerConfig{
		IssuerName: "TOTP Vault",
		QRCodeSize: 256,
	})

	r := chi.NewRouter()
	token.NewHandler(issuer, ledger).Register(r)
	return r, storage
}

func recordedBitSize(t *testing.T, storage *fakeStorage) int {
	t.Helper()
	require.Len(t, storage.entries, 1)
	for _, e := range storage.entries {
		return e.BitSize
	}
	return 0
}

func TestHandleGenerateBitSize(t *testing.T) {
	t.Parallel()

	t.Run("defaults to 1024 bits", func(t *testing.T) {
		t.Parallel()

		router, storage := newRouterFixture(t)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/user/generate-token?user_id=u1", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1024, recordedBitSize(t, storage))
	})

	t.Run("explicit value is honored", func(t *testing.T) {
		t.Parallel()

		router, storage := newRouterFixture(t)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/user/generate-token?user_id=u1&bit_size=512", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 512, recordedBitSize(t, storage))
	})

	t.Run("oversized value falls back to the default", func(t *testing.T) {
		t.Parallel()

		router, storage := newRouterFixture(t)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/user/generate-token?user_id=u1&bit_size=999999999999", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1024, recordedBitSize(t, storage))
	})

	t.Run("regenerate applies the same bounds", func(t *testing.T) {
		t.Parallel()

		router, storage := newRouterFixture(t)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/regenerate-token?user_id=u1&bit_size=888888888", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1024, recordedBitSize(t, storage))
	})
}
