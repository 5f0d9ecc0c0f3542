package registration

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/totpvault/pkg/httpx"
	"github.com/dmitrymomot/totpvault/pkg/rbac"
	"github.com/dmitrymomot/totpvault/pkg/validator"
)

// Register attaches the registration HTTP API to the router. The caller's
// role claim rides in the X-Role header; the transport only forwards it to
// the service, which enforces the authorization rules.
func (s *Service) Register(r chi.Router) {
	r.Post("/user/register", s.handleSubmitUser)
	r.Post("/admin/register", s.handleSubmitAdmin)

	r.Get("/admin/pending-registrations", s.handleListPendingUsers)
	r.Post("/admin/approve-user/{id}", s.handleApproveUser)
	r.Delete("/admin/reject-user/{id}", s.handleRejectUser)
	r.Get("/admin/users", s.handleListUsers)

	r.Get("/admin/pending-admin-registrations", s.handleListPendingAdmins)
	r.Post("/admin/approve-admin/{id}", s.handleApproveAdmin)
	r.Delete("/admin/reject-admin/{id}", s.handleRejectAdmin)
	r.Post("/admin/create-admin", s.handleCreateAdmin)

	r.Post("/init-super-admin", s.handleInitSuperAdmin)
}

type submitRequest struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	RequestedRole string `json:"requested_role,omitempty"`
}

func (s *Service) handleSubmitUser(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, err)
		return
	}

	if _, err := s.SubmitUser(r.Context(), req.Username, req.Email, req.Password); err != nil {
		writeWorkflowError(w, err)
		return
	}
	httpx.Message(w, http.StatusAccepted, "Registration submitted. Awaiting admin approval.")
}

func (s *Service) handleSubmitAdmin(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, err)
		return
	}
	if req.RequestedRole == "" {
		req.RequestedRole = rbac.RoleAdmin
	}

	if _, err := s.SubmitAdmin(r.Context(), req.Username, req.Email, req.Password, req.RequestedRole); err != nil {
		writeWorkflowError(w, err)
		return
	}
	httpx.Message(w, http.StatusAccepted, "Admin registration submitted. Awaiting super admin approval.")
}

func (s *Service) handleListPendingUsers(w http.ResponseWriter, r *http.Request) {
	pending, err := s.ListPendingUsers(r.Context())
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, pending)
}

func (s *Service) handleApproveUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.ApproveUser(r.Context(), chi.URLParam(r, "id"), callerRole(r))
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, user)
}

func (s *Service) handleRejectUser(w http.ResponseWriter, r *http.Request) {
	if err := s.RejectUser(r.Context(), chi.URLParam(r, "id"), callerRole(r)); err != nil {
		writeWorkflowError(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, "Registration rejected")
}

func (s *Service) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.ListUsers(r.Context())
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, users)
}

func (s *Service) handleListPendingAdmins(w http.ResponseWriter, r *http.Request) {
	pending, err := s.ListPendingAdmins(r.Context(), callerRole(r))
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, pending)
}

func (s *Service) handleApproveAdmin(w http.ResponseWriter, r *http.Request) {
	admin, err := s.ApproveAdmin(r.Context(), chi.URLParam(r, "id"), callerRole(r))
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, admin)
}

func (s *Service) handleRejectAdmin(w http.ResponseWriter, r *http.Request) {
	if err := s.RejectAdmin(r.Context(), chi.URLParam(r, "id"), callerRole(r)); err != nil {
		writeWorkflowError(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, "Admin registration rejected")
}

type createAdminRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (s *Service) handleCreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req createAdminRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, err)
		return
	}

	admin, err := s.CreateAdmin(r.Context(), req.Username, req.Email, req.Password, req.Role, callerRole(r))
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, admin)
}

func (s *Service) handleInitSuperAdmin(w http.ResponseWriter, r *http.Request) {
	admin, err := s.InitSuperAdmin(r.Context())
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]string{
		"message":  "Super admin created. Rotate the bootstrap credentials now.",
		"username": admin.Username,
		"email":    admin.Email,
	})
}

// callerRole extracts the caller's role claim from the X-Role header. The
// claim is trusted as provided (see pkg/rbac).
func callerRole(r *http.Request) string {
	return r.Header.Get("X-Role")
}

func writeWorkflowError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		httpx.Error(w, http.StatusBadRequest, err)
	case errors.Is(err, ErrDuplicateIdentity),
		errors.Is(err, ErrDuplicatePending),
		errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrAlreadyInitialized):
		httpx.Error(w, http.StatusBadRequest, err)
	case errors.Is(err, rbac.ErrUnauthorized):
		httpx.Error(w, http.StatusForbidden, err)
	case errors.Is(err, ErrNotFound):
		httpx.Error(w, http.StatusNotFound, err)
	default:
		httpx.Error(w, http.StatusInternalServerError, err)
	}
}
