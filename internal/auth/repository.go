package auth

import (
	"context"
	"net/http"

	"github.com/Joaolrm/racha-do-mes-fe/internal/api"
)

// Repository performs authentication calls against the backend
type Repository struct {
	api *api.Client
}

// NewRepository creates a new auth repository with the API client injected
func NewRepository(client *api.Client) *Repository {
	return &Repository{api: client}
}

// Login exchanges credentials for an access token
func (r *Repository) Login(ctx context.Context, req *LoginRequest) (*Response, error) {
	var resp Response
	if err := r.api.Do(ctx, http.MethodPost, "/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and returns its first access token
func (r *Repository) Register(ctx context.Context, req *RegisterRequest) (*Response, error) {
	var resp Response
	if err := r.api.Do(ctx, http.MethodPost, "/auth/register", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
