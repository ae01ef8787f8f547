package balance

import "github.com/shopspring/decimal"

// ConfirmPaymentRequest is the body of a settlement confirmation. A nil
// PaymentValue means full settlement of the currently known total.
type ConfirmPaymentRequest struct {
	PaymentValue *decimal.Decimal `json:"payment_value,omitempty"`
}

// ConfirmPaymentResponse carries the backend's outcome message
type ConfirmPaymentResponse struct {
	Message string `json:"message"`
}
