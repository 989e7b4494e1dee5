package services

import (
	"context"

	"github.com/apex/log"

	"github.com/Nitinnn1403/kisan-drishti/internal/core/backend"
	"github.com/Nitinnn1403/kisan-drishti/internal/models"
)

// AuthService owns the sign-in lifecycle against the backend.
type AuthService struct {
	api     *backend.Client
	session *Session
}

func NewAuthService(api *backend.Client, session *Session) *AuthService {
	return &AuthService{api: api, session: session}
}

// Check asks the backend whether the jar holds a live session and records
// the username when it does.
func (s *AuthService) Check(ctx context.Context) (*models.AuthStatus, error) {
	status, err := s.api.CheckAuth(ctx)
	if err != nil {
		return nil, err
	}
	if status.IsAuthenticated {
		s.session.SetUsername(status.Username)
	}
	return status, nil
}

// Login validates credentials locally first: empty fields never reach the
// network.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return validationErr("Please enter both username and password.")
	}
	if _, err := s.api.Login(ctx, email, password); err != nil {
		return err
	}
	status, err := s.api.CheckAuth(ctx)
	if err == nil && status.IsAuthenticated {
		s.session.SetUsername(status.Username)
	}
	return nil
}

// Register creates an account; all fields are required and the two password
// entries must match before any request is sent.
func (s *AuthService) Register(ctx context.Context, username, contact, email, password, confirm string) error {
	if username == "" || email == "" || password == "" || confirm == "" {
		return validationErr("Please fill in all fields.")
	}
	if password != confirm {
		return validationErr("Passwords do not match.")
	}
	if _, err := s.api.Register(ctx, username, contact, email, password); err != nil {
		return err
	}
	s.session.SetUsername(username)
	return nil
}

// Logout ends the backend session and clears all session state. A failed
// logout leaves the session untouched so the user stays where they are.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.api.Logout(ctx); err != nil {
		return err
	}
	s.session.Reset()
	return nil
}

// ChangePassword rotates the password after checking the confirmation
// locally.
func (s *AuthService) ChangePassword(ctx context.Context, current, next, confirm string) (*models.Ack, error) {
	if next != confirm {
		return nil, validationErr("New passwords do not match.")
	}
	return s.api.ChangePassword(ctx, current, next)
}

// DeleteAccount permanently removes the account. Failure leaves the user
// signed in with a visible message; only success clears the session.
func (s *AuthService) DeleteAccount(ctx context.Context) (*models.Ack, error) {
	ack, err := s.api.DeleteAccount(ctx)
	if err != nil {
		return nil, err
	}
	log.WithField("user", s.session.Username()).Info("account deleted")
	s.session.Reset()
	return ack, nil
}
