package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/paydash/payment-tracker/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// createPaymentRequest carries the payment fields. Amount is a decimal string
// ("100.50") so values stay exact end to end.
type createPaymentRequest struct {
	Amount   string `json:"amount"   validate:"required"`
	Receiver string `json:"receiver" validate:"required"`
	Status   string `json:"status"   validate:"required,oneof=success failed pending"`
	Method   string `json:"method"   validate:"required,oneof=upi card bank cash"`
}

type paymentResponse struct {
	ID        int64           `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Receiver  string          `json:"receiver"`
	Status    string          `json:"status"`
	Method    string          `json:"method"`
	CreatedAt time.Time       `json:"created_at"`
}

func toPaymentResponse(p *domain.Payment) paymentResponse {
	return paymentResponse{
		ID:        p.ID,
		Amount:    p.Amount,
		Receiver:  p.Receiver,
		Status:    string(p.Status),
		Method:    string(p.Method),
		CreatedAt: p.CreatedAt,
	}
}

func toPaymentResponses(payments []*domain.Payment) []paymentResponse {
	out := make([]paymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, toPaymentResponse(p))
	}
	return out
}
