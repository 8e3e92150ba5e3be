package ports

import (
	"context"
	"time"

	"github.com/paydash/payment-tracker/internal/core/domain"
)

// ListPaymentsFilter carries the query options for listing payments.
// Zero-valued fields impose no constraint; set fields combine with AND.
type ListPaymentsFilter struct {
	Status    string    // optional: restrict to matching status
	Method    string    // optional: restrict to matching method
	StartDate time.Time // optional: created_at >= StartDate (inclusive)
	EndDate   time.Time // optional: created_at <= EndDate (inclusive)
}

// PaymentRepository defines persistence operations for payment records.
type PaymentRepository interface {
	// Create inserts a new payment and returns the stored record with its
	// assigned ID and created_at.
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	// FindByID returns domain.ErrPaymentNotFound when absent.
	FindByID(ctx context.Context, id int64) (*domain.Payment, error)
	// List returns payments matching filter, ordered by created_at descending.
	List(ctx context.Context, filter ListPaymentsFilter) ([]*domain.Payment, error)
}
