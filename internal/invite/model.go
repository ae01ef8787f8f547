package invite

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Joaolrm/racha-do-mes-fe/internal/bill"
)

// Status is the invitee's decision
type Status string

const (
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the two terminal decisions
func (s Status) Valid() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Pending is a participation request awaiting the invitee's decision
type Pending struct {
	BillID          int64           `json:"bill_id"`
	Description     string          `json:"description"`
	Type            bill.Type       `json:"type"`
	DueDay          int             `json:"due_day"`
	SharePercentage decimal.Decimal `json:"share_percentage"`
	OwnerName       string          `json:"owner_name"`
	CreatedAt       time.Time       `json:"created_at"`
}
