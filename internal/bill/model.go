package bill

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type discriminates how a bill generates monthly occurrences
type Type string

const (
	// TypeRecurring recreates a monthly instance indefinitely at a
	// per-month value
	TypeRecurring Type = "recurring"
	// TypeInstallment splits a fixed total across a finite number of
	// monthly occurrences
	TypeInstallment Type = "installment"
)

// Bill is a created bill as returned by the backend
type Bill struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Type        Type   `json:"type"`
	DueDay      int    `json:"due_day"`
	OwnerID     int64  `json:"owner_id"`
}

// MonthlyInstance is one month's occurrence of a bill, as computed by the
// backend. UserValue is the caller's share applied to the total; the
// client never recomputes it.
type MonthlyInstance struct {
	BillID            int64           `json:"bill_id"`
	Description       string          `json:"description"`
	Type              Type            `json:"type"`
	InstallmentNumber *int            `json:"installment_number"`
	TotalInstallments *int            `json:"total_installments"`
	InstallmentInfo   *string         `json:"installment_info"`
	DueDate           time.Time       `json:"due_date"`
	Value             decimal.Decimal `json:"value"`
	IsPaid            bool            `json:"is_paid"`
	SharePercentage   decimal.Decimal `json:"share_percentage"`
	UserValue         decimal.Decimal `json:"user_value"`

	// Set only once the backend has materialized this month's value record
	BillValueID *int64 `json:"bill_value_id,omitempty"`
}

// Value is the backend's materialized per-month value record for a bill
type Value struct {
	ID     int64           `json:"id"`
	BillID int64           `json:"bill_id"`
	Month  int             `json:"month"`
	Year   int             `json:"year"`
	Value  decimal.Decimal `json:"value"`
}
