package balance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Joaolrm/racha-do-mes-fe/pkg/format"
)

// Common errors
var (
	ErrInvalidAmount = errors.New("payment value must be greater than zero")
	ErrAmountTooHigh = errors.New("payment value cannot exceed twice the amount owed")
)

// repository is the backend access the service needs
type repository interface {
	Credits(ctx context.Context) ([]Edge, error)
	CreditDetail(ctx context.Context, debtorID int64) (*Detail, error)
	Debts(ctx context.Context) ([]Edge, error)
	DebtDetail(ctx context.Context, creditorID int64) (*Detail, error)
	ConfirmPayment(ctx context.Context, debtorID int64, value *decimal.Decimal) (*ConfirmPaymentResponse, error)
}

// Service handles credit/debt views and settlement confirmation
type Service struct {
	repo repository
	log  *zap.SugaredLogger
}

// NewService creates a new balance service
func NewService(repo repository, log *zap.SugaredLogger) *Service {
	return &Service{repo: repo, log: log}
}

// Credits retrieves what others owe the caller
func (s *Service) Credits(ctx context.Context) ([]Edge, error) {
	return s.repo.Credits(ctx)
}

// CreditDetail retrieves the breakdown of one debtor's balance
func (s *Service) CreditDetail(ctx context.Context, debtorID int64) (*Detail, error) {
	return s.repo.CreditDetail(ctx, debtorID)
}

// Debts retrieves what the caller owes
func (s *Service) Debts(ctx context.Context) ([]Edge, error) {
	return s.repo.Debts(ctx)
}

// DebtDetail retrieves the breakdown of one creditor's balance
func (s *Service) DebtDetail(ctx context.Context, creditorID int64) (*Detail, error) {
	return s.repo.DebtDetail(ctx, creditorID)
}

// Confirm declares a debtor's payment as received. A nil amount settles
// the full known total. An amount above the total is allowed up to twice
// the total and inverts the debt direction; that recomputation is the
// backend's, so the refreshed detail is fetched and returned alongside
// the confirmation.
func (s *Service) Confirm(ctx context.Context, debtorID int64, amount *decimal.Decimal) (*ConfirmPaymentResponse, *Detail, error) {
	if amount != nil {
		if !amount.IsPositive() {
			return nil, nil, ErrInvalidAmount
		}
		detail, err := s.repo.CreditDetail(ctx, debtorID)
		if err != nil {
			return nil, nil, err
		}
		if amount.GreaterThan(detail.TotalValue.Mul(decimal.NewFromInt(2))) {
			return nil, nil, ErrAmountTooHigh
		}
	}

	resp, err := s.repo.ConfirmPayment(ctx, debtorID, amount)
	if err != nil {
		return nil, nil, err
	}
	s.log.Infow("payment confirmed", "debtor_id", debtorID, "full_settlement", amount == nil)

	refreshed, err := s.repo.CreditDetail(ctx, debtorID)
	if err != nil {
		// The confirmation went through; only the refresh failed.
		s.log.Warnw("failed to refresh credit detail after confirmation", "debtor_id", debtorID, "error", err)
		return resp, nil, nil
	}
	return resp, refreshed, nil
}

// ChargeMessage renders the WhatsApp collection text for a debtor
func ChargeMessage(detail *Detail) string {
	var b strings.Builder

	fmt.Fprintf(&b, "💰 *Cobrança - %s*\n\n", detail.UserName)
	fmt.Fprintf(&b, "Olá, %s! 😊\n\n", detail.UserName)
	b.WriteString("Segue o detalhamento do que você me deve:\n\n")

	for _, item := range detail.History {
		fmt.Fprintf(&b, "• %s\n", item.Description)
		fmt.Fprintf(&b, "  Valor: *%s*\n", format.Currency(item.Value))
		fmt.Fprintf(&b, "  Data: %s\n\n", format.Date(item.CreatedAt))
	}

	fmt.Fprintf(&b, "📊 *Total devido: %s*\n\n", format.Currency(detail.TotalValue))
	b.WriteString("Quando puder, vamos acertar isso, combinado? Obrigado! 😊\n\n")
	b.WriteString("_Mensagem gerada pelo Racha do Mês_")
	return b.String()
}
