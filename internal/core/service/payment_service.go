package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/paydash/payment-tracker/internal/core/domain"
	"github.com/paydash/payment-tracker/internal/core/ports"
)

// maxPaymentAmount is the largest value the NUMERIC(10,2) amount column can
// hold. Anything above it is rejected up front instead of failing the insert.
var maxPaymentAmount = decimal.New(9_999_999_999, -2)

// IdempotencyStore abstracts the replay-detection store (Redis).
type IdempotencyStore interface {
	// Lookup returns the payment ID previously remembered for key, if any.
	Lookup(ctx context.Context, key string) (int64, bool, error)
	// Remember associates key with a created payment ID.
	Remember(ctx context.Context, key string, id int64) error
}

// PaymentService implements the payment ledger use cases.
type PaymentService struct {
	repo   ports.PaymentRepository
	idem   IdempotencyStore
	logger zerolog.Logger
}

// NewPaymentService returns a PaymentService. idem may be nil, in which case
// Idempotency-Key headers are ignored.
func NewPaymentService(repo ports.PaymentRepository, idem IdempotencyStore, logger zerolog.Logger) *PaymentService {
	return &PaymentService{repo: repo, idem: idem, logger: logger}
}

// CreatePayment validates and records a new payment. If an idempotency key is
// provided and already seen, the previously created payment is returned
// without side effects.
func (s *PaymentService) CreatePayment(ctx context.Context, input ports.CreatePaymentInput) (*ports.CreatePaymentResult, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(input.Amount))
	if err != nil {
		return nil, domain.ErrInvalidAmount
	}
	if amount.IsNegative() || amount.Exponent() < -2 || amount.GreaterThan(maxPaymentAmount) {
		return nil, domain.ErrInvalidAmount
	}
	if strings.TrimSpace(input.Receiver) == "" {
		return nil, domain.ErrInvalidReceiver
	}

	status := domain.PaymentStatus(input.Status)
	method := domain.PaymentMethod(input.Method)
	if !status.Valid() || !method.Valid() {
		return nil, domain.ErrInvalidEnum
	}

	if input.IdempotencyKey != "" && s.idem != nil {
		if existing := s.replay(ctx, input.IdempotencyKey); existing != nil {
			return &ports.CreatePaymentResult{Payment: existing, AlreadyExisted: true}, nil
		}
	}

	payment := &domain.Payment{
		Amount:    amount,
		Receiver:  strings.TrimSpace(input.Receiver),
		Status:    status,
		Method:    method,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, payment)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create payment")
		return nil, err
	}

	if input.IdempotencyKey != "" && s.idem != nil {
		if err := s.idem.Remember(ctx, input.IdempotencyKey, created.ID); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("failed to set idempotency key")
		}
	}

	s.logger.Info().
		Int64("payment_id", created.ID).
		Str("method", string(created.Method)).
		Str("status", string(created.Status)).
		Msg("payment recorded")

	return &ports.CreatePaymentResult{Payment: created}, nil
}

// replay returns the payment previously created under key, or nil when the
// key is unseen or the store is unavailable (degrade to a normal create).
func (s *PaymentService) replay(ctx context.Context, key string) *domain.Payment {
	id, found, err := s.idem.Lookup(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency check failed, processing anyway")
		return nil
	}
	if !found {
		return nil
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Int64("payment_id", id).Msg("idempotent replay target missing")
		return nil
	}

	s.logger.Info().Str("idempotency_key", key).Int64("payment_id", id).Msg("idempotent replay")
	return existing
}

func (s *PaymentService) ListPayments(ctx context.Context, input ports.ListPaymentsInput) ([]*domain.Payment, error) {
	return s.repo.List(ctx, ports.ListPaymentsFilter{
		Status:    input.Status,
		Method:    input.Method,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
}

func (s *PaymentService) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	return s.repo.FindByID(ctx, id)
}
