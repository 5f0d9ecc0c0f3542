package token

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/totpvault/pkg/httpx"
	"github.com/dmitrymomot/totpvault/pkg/totp"
)

// Bounds for the bit_size query parameter. The default matches the
// original dashboard's generate-token endpoint; the cap keeps a hostile
// value from driving an oversized secret allocation.
const (
	defaultIssueBitSize = 1024
	maxIssueBitSize     = 8192
)

// Handler bundles the issuance and ledger services behind one router.
type Handler struct {
	issuer *Issuer
	ledger *Ledger
}

// NewHandler creates the token HTTP API.
func NewHandler(issuer *Issuer, ledger *Ledger) *Handler {
	return &Handler{issuer: issuer, ledger: ledger}
}

// Register attaches the token HTTP API to the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/user/generate-token", h.handleGenerate)
	r.Post("/user/verify-token", h.handleVerify)

	r.Get("/admin/token-logs", h.handleListLogs)
	r.Delete("/admin/token/{id}", h.handleRevoke)
	r.Post("/admin/regenerate-token", h.handleRegenerate)
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		httpx.Error(w, http.StatusBadRequest, errors.New("user_id is required"))
		return
	}
	bitSize := queryBitSize(r)
	mode := ModeRandom
	if r.URL.Query().Get("mode") == string(ModeDerived) {
		mode = ModeDerived
	}

	issued, err := h.issuer.Issue(r.Context(), userID, mode, bitSize)
	if err != nil {
		writeTokenError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, issued)
}

type verifyRequest struct {
	Secret string `json:"secret"`
	Token  string `json:"token"`
}

func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, err)
		return
	}

	valid, err := h.issuer.Verify(r.Context(), req.Secret, req.Token)
	if err != nil {
		writeTokenError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"valid": valid})
}

func (h *Handler) handleListLogs(w http.ResponseWriter, r *http.Request) {
	entries, err := h.ledger.List(r.Context())
	if err != nil {
		writeTokenError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, entries)
}

func (h *Handler) handleRevoke(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.Revoke(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeTokenError(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, "Token deleted successfully")
}

func (h *Handler) handleRegenerate(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		httpx.Error(w, http.StatusBadRequest, errors.New("user_id is required"))
		return
	}
	bitSize := queryBitSize(r)

	elapsed, err := h.issuer.Regenerate(r.Context(), userID, bitSize)
	if err != nil {
		writeTokenError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"message":          "Token regenerated successfully",
		"computation_time": elapsed,
	})
}

// queryBitSize reads the bit_size parameter, falling back to the default
// for missing, unparseable, or out-of-range values.
func queryBitSize(r *http.Request) int {
	raw := r.URL.Query().Get("bit_size")
	if raw == "" {
		return defaultIssueBitSize
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 || n > maxIssueBitSize {
		return defaultIssueBitSize
	}
	return n
}

func writeTokenError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.Error(w, http.StatusNotFound, err)
	case errors.Is(err, totp.ErrInvalidSecret), errors.Is(err, totp.ErrInvalidBitSize):
		httpx.Error(w, http.StatusBadRequest, err)
	default:
		httpx.Error(w, http.StatusInternalServerError, err)
	}
}
