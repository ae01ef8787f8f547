package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/Joaolrm/racha-do-mes-fe/internal/bill"
)

// MockValues implements the bill-values lookup for resolver tests
type MockValues struct {
	mock.Mock
}

func (m *MockValues) Values(ctx context.Context, billID int64, month, year int) ([]bill.Value, error) {
	args := m.Called(ctx, billID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bill.Value), args.Error(1)
}

func TestResolveFound(t *testing.T) {
	values := new(MockValues)
	values.On("Values", mock.Anything, int64(4), 7, 2025).Return([]bill.Value{
		{ID: 99, BillID: 4, Month: 7, Year: 2025},
	}, nil)

	resolver := NewResolver(values, zap.NewNop().Sugar())
	res := resolver.Resolve(context.Background(), 4, 7, 2025)

	assert.Equal(t, TargetFound, res.Outcome)
	assert.NoError(t, res.Err)
	assert.Equal(t, ValueTarget{BillValueID: 99}, res.Target)
}

func TestResolveIgnoresOtherMonths(t *testing.T) {
	values := new(MockValues)
	values.On("Values", mock.Anything, int64(4), 7, 2025).Return([]bill.Value{
		{ID: 98, BillID: 4, Month: 6, Year: 2025},
		{ID: 97, BillID: 4, Month: 7, Year: 2024},
	}, nil)

	resolver := NewResolver(values, zap.NewNop().Sugar())
	res := resolver.Resolve(context.Background(), 4, 7, 2025)

	assert.Equal(t, TargetNotFound, res.Outcome)
	assert.Equal(t, FallbackTarget{BillID: 4, Month: 7, Year: 2025}, res.Target)
}

func TestResolveNotFound(t *testing.T) {
	values := new(MockValues)
	values.On("Values", mock.Anything, int64(4), 7, 2025).Return([]bill.Value{}, nil)

	resolver := NewResolver(values, zap.NewNop().Sugar())
	res := resolver.Resolve(context.Background(), 4, 7, 2025)

	assert.Equal(t, TargetNotFound, res.Outcome)
	assert.NoError(t, res.Err)
	assert.Equal(t, FallbackTarget{BillID: 4, Month: 7, Year: 2025}, res.Target)
}

func TestResolveLookupFailureDegradesToFallback(t *testing.T) {
	values := new(MockValues)
	values.On("Values", mock.Anything, int64(4), 7, 2025).Return(nil, assert.AnError)

	resolver := NewResolver(values, zap.NewNop().Sugar())
	res := resolver.Resolve(context.Background(), 4, 7, 2025)

	assert.Equal(t, LookupFailed, res.Outcome)
	assert.ErrorIs(t, res.Err, assert.AnError)
	assert.Equal(t, FallbackTarget{BillID: 4, Month: 7, Year: 2025}, res.Target,
		"a failed lookup still yields a usable coordinate target")
}

func TestTargetEncodingIsMutuallyExclusive(t *testing.T) {
	fields := map[string]string{}
	ValueTarget{BillValueID: 12}.encode(fields)
	assert.Equal(t, map[string]string{"bill_value_id": "12"}, fields)

	fields = map[string]string{}
	FallbackTarget{BillID: 4, Month: 7, Year: 2025}.encode(fields)
	assert.Equal(t, map[string]string{"bill_id": "4", "month": "7", "year": "2025"}, fields)
}
