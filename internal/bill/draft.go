package bill

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Common errors
var (
	ErrEmptyDescription        = errors.New("description is required")
	ErrNoParticipants          = errors.New("at least one participant is required")
	ErrInvalidDueDay           = errors.New("due day must be between 1 and 31")
	ErrInvalidTotalValue       = errors.New("a total value greater than zero is required for installment bills")
	ErrInvalidInstallmentCount = errors.New("an installment count of at least 1 is required for installment bills")
	ErrInvalidStartMonth       = errors.New("start month must be between 1 and 12")
	ErrInvalidMonthValue       = errors.New("a monthly value greater than zero is required for recurring bills")
)

// Draft is a bill definition awaiting submission. Exactly two
// implementations exist, one per bill type; the interface is sealed so no
// mixed-variant payload can be constructed.
type Draft interface {
	// Base returns the fields shared by both variants
	Base() DraftBase
	// apply validates the variant's own fields and writes them into req
	apply(req *CreateBillRequest) error
}

// DraftBase holds the fields common to both bill types
type DraftBase struct {
	Description  string
	DueDay       int
	Participants []Participant
}

func (b DraftBase) validate() error {
	if strings.TrimSpace(b.Description) == "" {
		return ErrEmptyDescription
	}
	if b.DueDay < 1 || b.DueDay > 31 {
		return ErrInvalidDueDay
	}
	if len(b.Participants) == 0 {
		return ErrNoParticipants
	}
	alloc := Allocator{participants: b.Participants}
	return alloc.ValidateShares()
}

// RecurringDraft defines a bill recreated every month at an editable value
type RecurringDraft struct {
	DraftBase
	CurrentMonthValue decimal.Decimal
}

// Base returns the shared fields
func (d RecurringDraft) Base() DraftBase { return d.DraftBase }

func (d RecurringDraft) apply(req *CreateBillRequest) error {
	if !d.CurrentMonthValue.IsPositive() {
		return ErrInvalidMonthValue
	}
	req.Type = TypeRecurring
	value := d.CurrentMonthValue
	req.CurrentMonthValue = &value
	return nil
}

// InstallmentDraft defines a fixed total split across a finite number of
// monthly occurrences starting at a given month/year
type InstallmentDraft struct {
	DraftBase
	TotalValue       decimal.Decimal
	InstallmentCount int
	StartMonth       int
	StartYear        int
}

// Base returns the shared fields
func (d InstallmentDraft) Base() DraftBase { return d.DraftBase }

func (d InstallmentDraft) apply(req *CreateBillRequest) error {
	if !d.TotalValue.IsPositive() {
		return ErrInvalidTotalValue
	}
	if d.InstallmentCount < 1 {
		return ErrInvalidInstallmentCount
	}
	if d.StartMonth < 1 || d.StartMonth > 12 {
		return ErrInvalidStartMonth
	}
	req.Type = TypeInstallment
	total := d.TotalValue
	count := d.InstallmentCount
	month := d.StartMonth
	year := d.StartYear
	req.TotalValue = &total
	req.InstallmentCount = &count
	req.StartMonth = &month
	req.StartYear = &year
	return nil
}

// Build validates a draft and assembles its submission payload. Only the
// selected variant's fields appear in the result.
func Build(d Draft) (*CreateBillRequest, error) {
	base := d.Base()
	if err := base.validate(); err != nil {
		return nil, err
	}

	req := &CreateBillRequest{
		Description:  strings.TrimSpace(base.Description),
		DueDay:       base.DueDay,
		Participants: base.Participants,
	}
	if err := d.apply(req); err != nil {
		return nil, err
	}
	return req, nil
}
