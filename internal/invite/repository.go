package invite

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Joaolrm/racha-do-mes-fe/internal/api"
)

// respondRequest is the body of an invite decision
type respondRequest struct {
	Status Status `json:"status"`
}

// Repository accesses invite data on the backend
type Repository struct {
	api *api.Client
}

// NewRepository creates a new invite repository with the API client injected
func NewRepository(client *api.Client) *Repository {
	return &Repository{api: client}
}

// Pending retrieves the caller's pending invites
func (r *Repository) Pending(ctx context.Context) ([]Pending, error) {
	var invites []Pending
	if err := r.api.Do(ctx, http.MethodGet, "/bills/invites/pending", nil, nil, &invites); err != nil {
		return nil, err
	}
	return invites, nil
}

// Respond sends the invitee's decision for a bill
func (r *Repository) Respond(ctx context.Context, billID int64, status Status) error {
	path := fmt.Sprintf("/bills/%d/invite", billID)
	return r.api.Do(ctx, http.MethodPatch, path, nil, &respondRequest{Status: status}, nil)
}
