package balance

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockRepository implements the repository interface for service tests
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Credits(ctx context.Context) ([]Edge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Edge), args.Error(1)
}

func (m *MockRepository) CreditDetail(ctx context.Context, debtorID int64) (*Detail, error) {
	args := m.Called(ctx, debtorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Detail), args.Error(1)
}

func (m *MockRepository) Debts(ctx context.Context) ([]Edge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Edge), args.Error(1)
}

func (m *MockRepository) DebtDetail(ctx context.Context, creditorID int64) (*Detail, error) {
	args := m.Called(ctx, creditorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Detail), args.Error(1)
}

func (m *MockRepository) ConfirmPayment(ctx context.Context, debtorID int64, value *decimal.Decimal) (*ConfirmPaymentResponse, error) {
	args := m.Called(ctx, debtorID, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ConfirmPaymentResponse), args.Error(1)
}

func detailOwing(total string) *Detail {
	return &Detail{
		UserID:     3,
		UserName:   "Bruno",
		TotalValue: decimal.RequireFromString(total),
	}
}

func newTestService(repo repository) *Service {
	return NewService(repo, zap.NewNop().Sugar())
}

func TestConfirmFullSettlement(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("ConfirmPayment", mock.Anything, int64(3), (*decimal.Decimal)(nil)).
		Return(&ConfirmPaymentResponse{Message: "pagamento confirmado"}, nil)
	repo.On("CreditDetail", mock.Anything, int64(3)).Return(detailOwing("0.00"), nil)

	resp, detail, err := svc.Confirm(context.Background(), 3, nil)
	require.NoError(t, err)
	assert.Equal(t, "pagamento confirmado", resp.Message)
	require.NotNil(t, detail)
	assert.True(t, detail.TotalValue.IsZero())

	// Full settlement needs no prior detail lookup.
	repo.AssertNumberOfCalls(t, "CreditDetail", 1)
}

func TestConfirmOverpaymentWithinSoftBound(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	// Known total 80.00, confirming 1.5x = 120.00 must go through.
	amount := decimal.RequireFromString("120.00")
	repo.On("CreditDetail", mock.Anything, int64(3)).Return(detailOwing("80.00"), nil).Once()
	repo.On("ConfirmPayment", mock.Anything, int64(3), mock.MatchedBy(func(v *decimal.Decimal) bool {
		return v != nil && v.Equal(amount)
	})).Return(&ConfirmPaymentResponse{Message: "ok"}, nil)
	// The backend inverted the debt; refreshed detail reflects it.
	repo.On("CreditDetail", mock.Anything, int64(3)).Return(detailOwing("-40.00"), nil).Once()

	resp, detail, err := svc.Confirm(context.Background(), 3, &amount)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Message)
	require.NotNil(t, detail)
	assert.True(t, detail.TotalValue.IsNegative(), "overpayment inverts the edge")
}

func TestConfirmValidation(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	repo.On("CreditDetail", mock.Anything, int64(3)).Return(detailOwing("80.00"), nil)

	zero := decimal.Zero
	_, _, err := svc.Confirm(context.Background(), 3, &zero)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	tooMuch := decimal.RequireFromString("160.01")
	_, _, err = svc.Confirm(context.Background(), 3, &tooMuch)
	assert.ErrorIs(t, err, ErrAmountTooHigh)

	repo.AssertNotCalled(t, "ConfirmPayment", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmExactlyTwiceTheTotal(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	amount := decimal.RequireFromString("160.00")
	repo.On("CreditDetail", mock.Anything, int64(3)).Return(detailOwing("80.00"), nil)
	repo.On("ConfirmPayment", mock.Anything, int64(3), mock.Anything).
		Return(&ConfirmPaymentResponse{Message: "ok"}, nil)

	_, _, err := svc.Confirm(context.Background(), 3, &amount)
	assert.NoError(t, err, "the bound is inclusive")
}

func TestConfirmRefreshFailureStillReportsSuccess(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("ConfirmPayment", mock.Anything, int64(3), (*decimal.Decimal)(nil)).
		Return(&ConfirmPaymentResponse{Message: "ok"}, nil)
	repo.On("CreditDetail", mock.Anything, int64(3)).Return(nil, assert.AnError)

	resp, detail, err := svc.Confirm(context.Background(), 3, nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Message)
	assert.Nil(t, detail)
}

func TestChargeMessage(t *testing.T) {
	detail := &Detail{
		UserName:   "Bruno",
		TotalValue: decimal.RequireFromString("230.00"),
		History: []HistoryItem{
			{
				Description: "Aluguel do apartamento",
				Value:       decimal.RequireFromString("150.00"),
				CreatedAt:   time.Date(2025, time.July, 5, 12, 0, 0, 0, time.UTC),
			},
			{
				Description: "Internet",
				Value:       decimal.RequireFromString("80.00"),
				CreatedAt:   time.Date(2025, time.July, 10, 12, 0, 0, 0, time.UTC),
			},
		},
	}

	msg := ChargeMessage(detail)
	assert.Contains(t, msg, "Olá, Bruno!")
	assert.Contains(t, msg, "Aluguel do apartamento")
	assert.Contains(t, msg, "R$ 150,00")
	assert.Contains(t, msg, "05/07/2025")
	assert.Contains(t, msg, "Total devido: R$ 230,00")
}
