package bill

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Common errors
var (
	ErrDeleteInFlight = errors.New("a delete for this bill is already in progress")
	ErrInvalidValue   = errors.New("value must be greater than zero")
)

// repository is the backend access the service needs
type repository interface {
	ListMonthly(ctx context.Context, month, year int) ([]MonthlyInstance, error)
	Create(ctx context.Context, req *CreateBillRequest) (*Bill, error)
	Delete(ctx context.Context, billID int64) error
	UpdateValue(ctx context.Context, billID int64, month, year int, value decimal.Decimal) error
}

// Service handles bill workflows
type Service struct {
	repo repository
	log  *zap.SugaredLogger

	mu       sync.Mutex
	deleting map[int64]struct{}
}

// NewService creates a new bill service
func NewService(repo repository, log *zap.SugaredLogger) *Service {
	return &Service{
		repo:     repo,
		log:      log,
		deleting: map[int64]struct{}{},
	}
}

// ListMonthly retrieves the caller's bill instances for one month
func (s *Service) ListMonthly(ctx context.Context, month, year int) ([]MonthlyInstance, error) {
	return s.repo.ListMonthly(ctx, month, year)
}

// Create validates the form, submits the bill and, on success, resets the
// form to its initial defaults.
func (s *Service) Create(ctx context.Context, form *Form, now time.Time) (*Bill, error) {
	req, err := Build(form.Draft())
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.log.Infow("bill created", "bill_id", created.ID, "type", created.Type)
	form.Reset(now)
	return created, nil
}

// Delete removes a bill. A second delete for the same bill while one is
// pending is rejected; deletes for other bills proceed independently.
func (s *Service) Delete(ctx context.Context, billID int64) error {
	s.mu.Lock()
	if _, inFlight := s.deleting[billID]; inFlight {
		s.mu.Unlock()
		return ErrDeleteInFlight
	}
	s.deleting[billID] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.deleting, billID)
		s.mu.Unlock()
	}()

	return s.repo.Delete(ctx, billID)
}

// EditValue changes one month's value of a bill the caller owns
func (s *Service) EditValue(ctx context.Context, billID int64, month, year int, value decimal.Decimal) error {
	if !value.IsPositive() {
		return ErrInvalidValue
	}
	return s.repo.UpdateValue(ctx, billID, month, year, value)
}
