package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/apex/log"

	middleware "github.com/Nitinnn1403/kisan-drishti/internal/api/middlewares"
	"github.com/Nitinnn1403/kisan-drishti/internal/services"
	"github.com/Nitinnn1403/kisan-drishti/internal/ui"
)

type AuthHandler struct {
	auth    *services.AuthService
	session *services.Session
	toasts  *ui.Toasts
	secret  string
}

func NewAuthHandler(auth *services.AuthService, session *services.Session, toasts *ui.Toasts, secret string) *AuthHandler {
	return &AuthHandler{auth: auth, session: session, toasts: toasts, secret: secret}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username        string `json:"username"`
	Contact         string `json:"contact"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type changePasswordRequest struct {
	CurrentPassword    string `json:"current_password"`
	NewPassword        string `json:"new_password"`
	ConfirmNewPassword string `json:"confirm_new_password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	if err := h.auth.Login(r.Context(), req.Username, req.Password); err != nil {
		h.authFailure(w, err)
		return
	}

	if err := middleware.IssueSession(w, h.secret, h.session.Username()); err != nil {
		writeError(w, http.StatusInternalServerError, "could not start session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"username": h.session.Username(),
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	err := h.auth.Register(r.Context(), req.Username, req.Contact, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		h.authFailure(w, err)
		return
	}

	if err := middleware.IssueSession(w, h.secret, h.session.Username()); err != nil {
		writeError(w, http.StatusInternalServerError, "could not start session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"username": h.session.Username(),
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context()); err != nil {
		h.toasts.Show(ui.SeverityError, err.Error())
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"success": false,
			"toasts":  h.toasts.Active(),
		})
		return
	}
	middleware.ClearSession(w)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	status, err := h.auth.Check(r.Context())
	if err != nil {
		log.WithError(err).Warn("session check failed")
		writeJSON(w, http.StatusOK, map[string]any{"isAuthenticated": false})
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	ack, err := h.auth.ChangePassword(r.Context(), req.CurrentPassword, req.NewPassword, req.ConfirmNewPassword)
	if err != nil {
		h.authFailure(w, err)
		return
	}
	h.toasts.Show(ui.SeveritySuccess, ack.Message)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": ack.Message,
		"toasts":  h.toasts.Active(),
	})
}

func (h *AuthHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	ack, err := h.auth.DeleteAccount(r.Context())
	if err != nil {
		h.authFailure(w, err)
		return
	}
	middleware.ClearSession(w)
	h.toasts.Show(ui.SeveritySuccess, ack.Message)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": ack.Message,
		"toasts":  h.toasts.Active(),
	})
}

// authFailure maps a service error to a toast and status code. Validation
// failures surface as warnings without a backend round trip having happened.
func (h *AuthHandler) authFailure(w http.ResponseWriter, err error) {
	if services.IsValidation(err) {
		h.toasts.Show(ui.SeverityWarning, err.Error())
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   err.Error(),
			"toasts":  h.toasts.Active(),
		})
		return
	}
	h.toasts.Show(ui.SeverityError, err.Error())
	writeJSON(w, http.StatusUnauthorized, map[string]any{
		"success": false,
		"error":   err.Error(),
		"toasts":  h.toasts.Active(),
	})
}
