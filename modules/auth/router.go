package auth

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/totpvault/pkg/httpx"
)

// Register attaches the login HTTP API to the router.
func (s *Service) Register(r chi.Router) {
	r.Post("/user/login", s.handleLoginUser)
	r.Post("/admin/login", s.handleLoginAdmin)
}

type loginRequest struct {
	Username            string `json:"username"`
	Email               string `json:"email"`
	Password            string `json:"password"`
	AdminAccessPassword string `json:"admin_access_password,omitempty"`
}

func (s *Service) handleLoginUser(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, err)
		return
	}

	session, err := s.LoginUser(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeLoginError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, session)
}

func (s *Service) handleLoginAdmin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, err)
		return
	}

	session, err := s.LoginAdmin(r.Context(), req.Username, req.Email, req.Password, req.AdminAccessPassword)
	if err != nil {
		writeLoginError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, session)
}

func writeLoginError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		httpx.Error(w, http.StatusUnauthorized, err)
	case errors.Is(err, ErrNotApproved):
		httpx.Error(w, http.StatusForbidden, err)
	default:
		httpx.Error(w, http.StatusInternalServerError, err)
	}
}
