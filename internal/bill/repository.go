package bill

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/Joaolrm/racha-do-mes-fe/internal/api"
)

// Repository accesses bill data on the backend
type Repository struct {
	api *api.Client
}

// NewRepository creates a new bill repository with the API client injected
func NewRepository(client *api.Client) *Repository {
	return &Repository{api: client}
}

// ListMonthly retrieves the caller's bill instances for one month
func (r *Repository) ListMonthly(ctx context.Context, month, year int) ([]MonthlyInstance, error) {
	query := url.Values{
		"month": []string{strconv.Itoa(month)},
		"year":  []string{strconv.Itoa(year)},
	}

	var instances []MonthlyInstance
	if err := r.api.Do(ctx, http.MethodGet, "/bills/my-bills/monthly", query, nil, &instances); err != nil {
		return nil, err
	}
	return instances, nil
}

// Create submits a new bill
func (r *Repository) Create(ctx context.Context, req *CreateBillRequest) (*Bill, error) {
	var created Bill
	if err := r.api.Do(ctx, http.MethodPost, "/bills", nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete removes a bill. Owner-only; deleting a recurring bill removes
// its entire generated chain.
func (r *Repository) Delete(ctx context.Context, billID int64) error {
	return r.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/bills/%d", billID), nil, nil, nil)
}

// Values retrieves the materialized monthly value records of a bill
// filtered to one month
func (r *Repository) Values(ctx context.Context, billID int64, month, year int) ([]Value, error) {
	query := url.Values{
		"month": []string{strconv.Itoa(month)},
		"year":  []string{strconv.Itoa(year)},
	}

	var values []Value
	if err := r.api.Do(ctx, http.MethodGet, fmt.Sprintf("/bills/%d/values", billID), query, nil, &values); err != nil {
		return nil, err
	}
	return values, nil
}

// UpdateValue edits one month's value of a bill. Owner-only.
func (r *Repository) UpdateValue(ctx context.Context, billID int64, month, year int, value decimal.Decimal) error {
	path := fmt.Sprintf("/bills/%d/values/%d/%d", billID, month, year)
	return r.api.Do(ctx, http.MethodPatch, path, nil, &UpdateValueRequest{Value: value}, nil)
}
