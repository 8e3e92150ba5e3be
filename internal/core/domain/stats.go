package domain

import "github.com/shopspring/decimal"

// StatisticsSnapshot is the derived dashboard view computed over the trailing
// revenue window. It is recomputed from the ledger on every request and never
// stored.
//
// RevenueLast7Days keys are UTC calendar days (YYYY-MM-DD); days without any
// payment are absent, not zero-filled. encoding/json emits map keys sorted,
// which for this key format is chronological order.
type StatisticsSnapshot struct {
	TotalPaymentsToday int                        `json:"totalPaymentsToday"`
	TotalRevenue       decimal.Decimal            `json:"totalRevenue"`
	FailedTransactions int                        `json:"failedTransactions"`
	RevenueLast7Days   map[string]decimal.Decimal `json:"revenueLast7Days"`
}
