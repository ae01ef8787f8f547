package balance

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/Joaolrm/racha-do-mes-fe/internal/api"
)

// Repository accesses balance data on the backend
type Repository struct {
	api *api.Client
}

// NewRepository creates a new balance repository with the API client injected
func NewRepository(client *api.Client) *Repository {
	return &Repository{api: client}
}

// Credits retrieves what others owe the caller, aggregated per debtor
func (r *Repository) Credits(ctx context.Context) ([]Edge, error) {
	var edges []Edge
	if err := r.api.Do(ctx, http.MethodGet, "/balance/me/credits", nil, nil, &edges); err != nil {
		return nil, err
	}
	return edges, nil
}

// CreditDetail retrieves the breakdown of one debtor's balance
func (r *Repository) CreditDetail(ctx context.Context, debtorID int64) (*Detail, error) {
	var detail Detail
	path := fmt.Sprintf("/balance/me/credits/%d", debtorID)
	if err := r.api.Do(ctx, http.MethodGet, path, nil, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Debts retrieves what the caller owes, aggregated per creditor
func (r *Repository) Debts(ctx context.Context) ([]Edge, error) {
	var edges []Edge
	if err := r.api.Do(ctx, http.MethodGet, "/balance/me/debts", nil, nil, &edges); err != nil {
		return nil, err
	}
	return edges, nil
}

// DebtDetail retrieves the breakdown of one creditor's balance
func (r *Repository) DebtDetail(ctx context.Context, creditorID int64) (*Detail, error) {
	var detail Detail
	path := fmt.Sprintf("/balance/me/debts/%d", creditorID)
	if err := r.api.Do(ctx, http.MethodGet, path, nil, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// ConfirmPayment declares a debtor's payment as received. A nil value
// settles the full known total.
func (r *Repository) ConfirmPayment(ctx context.Context, debtorID int64, value *decimal.Decimal) (*ConfirmPaymentResponse, error) {
	var resp ConfirmPaymentResponse
	path := fmt.Sprintf("/balance/me/credits/%d/confirm-payment", debtorID)
	if err := r.api.Do(ctx, http.MethodPost, path, nil, &ConfirmPaymentRequest{PaymentValue: value}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
