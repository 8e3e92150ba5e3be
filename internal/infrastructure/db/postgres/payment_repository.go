package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/paydash/payment-tracker/internal/core/domain"
	"github.com/paydash/payment-tracker/internal/core/ports"
)

// PaymentRepository provides Postgres-backed persistence for payments.
// Amounts live in a NUMERIC(10,2) column and cross the driver boundary as
// text so they never pass through a float.
type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	const query = `
		INSERT INTO payments (amount, receiver, status, method, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, amount::text, receiver, status, method, created_at`

	row := r.pool.QueryRow(ctx, query, p.Amount.String(), p.Receiver, string(p.Status), string(p.Method), p.CreatedAt)
	created, err := scanPayment(row)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	return created, nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id int64) (*domain.Payment, error) {
	const query = `
		SELECT id, amount::text, receiver, status, method, created_at
		FROM payments
		WHERE id = $1`

	payment, err := scanPayment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("find payment: %w", err)
	}
	return payment, nil
}

func (r *PaymentRepository) List(ctx context.Context, filter ports.ListPaymentsFilter) ([]*domain.Payment, error) {
	query := `
		SELECT id, amount::text, receiver, status, method, created_at
		FROM payments`

	var (
		where []string
		args  []any
	)
	cond := func(expr string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(expr, len(args)))
	}

	if filter.Status != "" {
		cond("status = $%d", filter.Status)
	}
	if filter.Method != "" {
		cond("method = $%d", filter.Method)
	}
	if !filter.StartDate.IsZero() {
		cond("created_at >= $%d", filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		cond("created_at <= $%d", filter.EndDate)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []*domain.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("list payments: %w", err)
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var (
		p      domain.Payment
		amount string
	)
	if err := row.Scan(&p.ID, &amount, &p.Receiver, &p.Status, &p.Method, &p.CreatedAt); err != nil {
		return nil, err
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	p.Amount = parsed
	return &p, nil
}
