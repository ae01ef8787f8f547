package balance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Edge is an aggregated directed balance with one counterparty. On the
// credits view UserID is a debtor; on the debts view it is a creditor.
type Edge struct {
	UserID     int64           `json:"user_id"`
	UserName   string          `json:"user_name"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// HistoryItem is one bill share contributing to a balance
type HistoryItem struct {
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Detail is the per-counterparty breakdown of an edge
type Detail struct {
	UserID     int64           `json:"user_id"`
	UserName   string          `json:"user_name"`
	TotalValue decimal.Decimal `json:"total_value"`
	History    []HistoryItem   `json:"history"`
}
