package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/Joaolrm/racha-do-mes-fe/internal/session"
)

// Common errors
var (
	ErrMissingCredentials = errors.New("email/phone and password are required")
	ErrMissingName        = errors.New("name is required")
	ErrMissingContact     = errors.New("either an email or a phone number is required")
)

// authAPI is the backend access the service needs
type authAPI interface {
	Login(ctx context.Context, req *LoginRequest) (*Response, error)
	Register(ctx context.Context, req *RegisterRequest) (*Response, error)
}

// Service handles authentication and session lifecycle
type Service struct {
	repo    authAPI
	session *session.Session
}

// NewService creates a new auth service
func NewService(repo authAPI, sess *session.Session) *Service {
	return &Service{repo: repo, session: sess}
}

// Login authenticates and persists the resulting session
func (s *Service) Login(ctx context.Context, emailOrPhone, password string) (*session.User, error) {
	emailOrPhone = strings.TrimSpace(emailOrPhone)
	if emailOrPhone == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	resp, err := s.repo.Login(ctx, &LoginRequest{EmailOrPhone: emailOrPhone, Password: password})
	if err != nil {
		return nil, err
	}

	if err := s.session.Set(resp.AccessToken, resp.User); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Register creates an account and persists the resulting session
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*session.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, ErrMissingName
	}
	if req.Email == "" && req.PhoneNumber == "" {
		return nil, ErrMissingContact
	}
	if req.Password == "" {
		return nil, ErrMissingCredentials
	}

	resp, err := s.repo.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.session.Set(resp.AccessToken, resp.User); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Logout clears the persisted session
func (s *Service) Logout() error {
	return s.session.Clear()
}
