package bill

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Joaolrm/racha-do-mes-fe/internal/user"
)

// Form is the in-memory state of the bill-creation dialog: the shared
// fields, both variants' fields, and the participant allocator. Only the
// fields of the selected type reach the payload (see Draft).
type Form struct {
	Description string
	Type        Type
	DueDay      int

	TotalValue       decimal.Decimal
	InstallmentCount int
	StartMonth       int
	StartYear        int

	CurrentMonthValue decimal.Decimal

	Allocator *Allocator

	currentUserID int64
}

// NewForm creates a form at its initial defaults: recurring type, due day
// 1, current month/year, the current user as sole participant at 100%.
func NewForm(users []user.User, currentUserID int64, now time.Time) *Form {
	f := &Form{
		Allocator:     NewAllocator(users),
		currentUserID: currentUserID,
	}
	f.Reset(now)
	return f
}

// Reset restores the initial defaults
func (f *Form) Reset(now time.Time) {
	f.Description = ""
	f.Type = TypeRecurring
	f.DueDay = 1
	f.TotalValue = decimal.Zero
	f.InstallmentCount = 0
	f.StartMonth = int(now.Month())
	f.StartYear = now.Year()
	f.CurrentMonthValue = decimal.Zero
	f.Allocator.Seed(f.currentUserID)
}

// SetType switches the bill type, clearing the other variant's fields
func (f *Form) SetType(t Type) {
	f.Type = t
	if t == TypeInstallment {
		f.CurrentMonthValue = decimal.Zero
	} else {
		f.TotalValue = decimal.Zero
		f.InstallmentCount = 0
	}
}

// Draft assembles the variant matching the selected type
func (f *Form) Draft() Draft {
	base := DraftBase{
		Description:  f.Description,
		DueDay:       f.DueDay,
		Participants: f.Allocator.Participants(),
	}

	if f.Type == TypeInstallment {
		return InstallmentDraft{
			DraftBase:        base,
			TotalValue:       f.TotalValue,
			InstallmentCount: f.InstallmentCount,
			StartMonth:       f.StartMonth,
			StartYear:        f.StartYear,
		}
	}
	return RecurringDraft{
		DraftBase:         base,
		CurrentMonthValue: f.CurrentMonthValue,
	}
}
