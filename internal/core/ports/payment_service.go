package ports

import (
	"context"
	"time"

	"github.com/paydash/payment-tracker/internal/core/domain"
)

// CreatePaymentInput carries all data needed to record a new payment.
// Amount is the raw decimal string from the request so that parsing and
// validation stay in one place.
type CreatePaymentInput struct {
	Amount   string
	Receiver string
	Status   string
	Method   string
	// IdempotencyKey, when non-empty, makes the create replay-safe: a
	// repeated key returns the previously created payment.
	IdempotencyKey string
}

// CreatePaymentResult is returned by CreatePayment.
type CreatePaymentResult struct {
	Payment *domain.Payment
	// AlreadyExisted is true when the Idempotency-Key matched an existing payment.
	AlreadyExisted bool
}

// ListPaymentsInput carries the (all optional) list filters.
type ListPaymentsInput struct {
	Status    string
	Method    string
	StartDate time.Time
	EndDate   time.Time
}

// PaymentService defines use-case operations for the payment ledger.
type PaymentService interface {
	CreatePayment(ctx context.Context, input CreatePaymentInput) (*CreatePaymentResult, error)
	ListPayments(ctx context.Context, input ListPaymentsInput) ([]*domain.Payment, error)
	GetPayment(ctx context.Context, id int64) (*domain.Payment, error)
}

// StatsService computes the derived dashboard statistics.
type StatsService interface {
	// ComputeStats reduces the ledger over the trailing revenue window
	// anchored at now. An empty ledger yields zero counters and an empty
	// day map, never an error.
	ComputeStats(ctx context.Context, now time.Time) (*domain.StatisticsSnapshot, error)
}
