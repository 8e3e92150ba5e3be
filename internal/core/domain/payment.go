package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the settlement state recorded for a payment.
type PaymentStatus string

const (
	StatusSuccess PaymentStatus = "success"
	StatusFailed  PaymentStatus = "failed"
	StatusPending PaymentStatus = "pending"
)

// PaymentMethod is the channel a payment was made through.
type PaymentMethod string

const (
	MethodUPI  PaymentMethod = "upi"
	MethodCard PaymentMethod = "card"
	MethodBank PaymentMethod = "bank"
	MethodCash PaymentMethod = "cash"
)

// Valid reports whether s is one of the enumerated statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case StatusSuccess, StatusFailed, StatusPending:
		return true
	}
	return false
}

// Valid reports whether m is one of the enumerated methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodUPI, MethodCard, MethodBank, MethodCash:
		return true
	}
	return false
}

// Payment is a recorded transaction. Amount is an exact decimal with two
// fractional digits; it is never touched by float arithmetic. Records are
// immutable after creation.
type Payment struct {
	ID        int64           `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Receiver  string          `json:"receiver"`
	Status    PaymentStatus   `json:"status"`
	Method    PaymentMethod   `json:"method"`
	CreatedAt time.Time       `json:"created_at"`
}
