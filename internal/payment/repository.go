package payment

import (
	"context"
	"time"

	"github.com/Joaolrm/racha-do-mes-fe/internal/api"
)

// Repository submits payments to the backend
type Repository struct {
	api *api.Client
}

// NewRepository creates a new payment repository with the API client injected
func NewRepository(client *api.Client) *Repository {
	return &Repository{api: client}
}

// CreatePayment transmits a payment as a multipart body: the receipt, if
// present, as a binary part, everything else as text parts. The target
// contributes exactly one addressing form.
func (r *Repository) CreatePayment(ctx context.Context, req *Request) error {
	fields := map[string]string{
		"payment_value": req.Value.StringFixed(2),
		"payed_at":      req.PayedAt.Format(time.RFC3339),
	}
	req.Target.encode(fields)

	var file *api.FilePart
	if req.Receipt != nil {
		file = &api.FilePart{
			FieldName: "receipt_photo",
			FileName:  req.Receipt.FileName,
			Data:      req.Receipt.Data,
		}
	}

	return r.api.DoMultipart(ctx, "/payments", fields, file, nil)
}
