package bill

import "github.com/shopspring/decimal"

// Participant is one (user, share) pair in a bill-creation request
type Participant struct {
	UserID          int64   `json:"user_id"`
	SharePercentage float64 `json:"share_percentage"`
}

// CreateBillRequest is the submission payload for a new bill. The variant
// fields are pointers so that the unselected variant is absent from the
// encoded payload, not merely zero.
type CreateBillRequest struct {
	Description  string        `json:"description"`
	Type         Type          `json:"type"`
	DueDay       int           `json:"due_day"`
	Participants []Participant `json:"participants"`

	// installment variant
	TotalValue       *decimal.Decimal `json:"total_value,omitempty"`
	InstallmentCount *int             `json:"installment_count,omitempty"`
	StartMonth       *int             `json:"start_month,omitempty"`
	StartYear        *int             `json:"start_year,omitempty"`

	// recurring variant
	CurrentMonthValue *decimal.Decimal `json:"current_month_value,omitempty"`
}

// UpdateValueRequest is the payload for an owner editing one month's value
type UpdateValueRequest struct {
	Value decimal.Decimal `json:"value"`
}
