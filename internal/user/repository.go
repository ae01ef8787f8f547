package user

import (
	"context"
	"net/http"

	"github.com/Joaolrm/racha-do-mes-fe/internal/api"
)

// Repository fetches user data from the backend
type Repository struct {
	api *api.Client
}

// NewRepository creates a new user repository with the API client injected
func NewRepository(client *api.Client) *Repository {
	return &Repository{api: client}
}

// List retrieves all known users
func (r *Repository) List(ctx context.Context) ([]User, error) {
	var users []User
	if err := r.api.Do(ctx, http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
