package payment

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MaxReceiptSize is the upper bound for a receipt photo
const MaxReceiptSize = 5 << 20

// Common errors
var (
	ErrNegativeValue   = errors.New("payment value cannot be negative")
	ErrReceiptTooLarge = errors.New("receipt photo must be at most 5 MB")
	ErrReceiptNotImage = errors.New("receipt photo must be an image")
	ErrFutureDate      = errors.New("payment date cannot be in the future")
	ErrSubmitInFlight  = errors.New("a payment submission is already in progress")
)

// Receipt is an optional proof-of-payment photo
type Receipt struct {
	FileName string
	Data     []byte
}

// Request is a payment ready for submission
type Request struct {
	Target  Target
	Value   decimal.Decimal
	PayedAt time.Time
	Receipt *Receipt
}

// creator is the backend access the service needs
type creator interface {
	CreatePayment(ctx context.Context, req *Request) error
}

// Service handles payment submission
type Service struct {
	repo creator
	log  *zap.SugaredLogger

	now        func() time.Time
	submitting atomic.Bool
	onSuccess  []func()
}

// NewService creates a new payment service
func NewService(repo creator, log *zap.SugaredLogger) *Service {
	return &Service{repo: repo, log: log, now: time.Now}
}

// OnSuccess registers a callback fired after every successful submission
// (bill list reloads and similar refreshes)
func (s *Service) OnSuccess(fn func()) {
	s.onSuccess = append(s.onSuccess, fn)
}

// Submit validates and transmits a payment. While one submission is
// pending a second call is rejected, mirroring the disabled submit
// button; submissions from other service instances are independent.
func (s *Service) Submit(ctx context.Context, req *Request) error {
	if !s.submitting.CompareAndSwap(false, true) {
		return ErrSubmitInFlight
	}
	defer s.submitting.Store(false)

	if req.Value.IsNegative() {
		return ErrNegativeValue
	}
	if err := validateReceipt(req.Receipt); err != nil {
		return err
	}

	today := endOfDay(s.now())
	if req.PayedAt.After(today) {
		return ErrFutureDate
	}
	// Pin the timestamp to midday so date-only inputs survive timezone
	// conversion on the backend.
	req.PayedAt = atNoon(req.PayedAt)

	if err := s.repo.CreatePayment(ctx, req); err != nil {
		return err
	}

	s.log.Infow("payment submitted", "value", req.Value, "has_receipt", req.Receipt != nil)
	for _, fn := range s.onSuccess {
		fn()
	}
	return nil
}

func validateReceipt(receipt *Receipt) error {
	if receipt == nil {
		return nil
	}
	if len(receipt.Data) > MaxReceiptSize {
		return ErrReceiptTooLarge
	}
	if !strings.HasPrefix(mimetype.Detect(receipt.Data).String(), "image/") {
		return ErrReceiptNotImage
	}
	return nil
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, t.Location())
}

func atNoon(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, t.Location())
}
