package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/paydash/payment-tracker/internal/core/domain"
	"github.com/paydash/payment-tracker/internal/core/ports"
)

const dayFormat = "2006-01-02"

// StatsService reduces the payment ledger into the dashboard statistics.
type StatsService struct {
	repo   ports.PaymentRepository
	logger zerolog.Logger
}

func NewStatsService(repo ports.PaymentRepository, logger zerolog.Logger) *StatsService {
	return &StatsService{repo: repo, logger: logger}
}

// ComputeStats fetches every payment inside the trailing revenue window and
// reduces it in one pass. The window runs from midnight UTC of the calendar
// day 7 days before now through 23:59:59.999 of now's calendar day, an
// 8-calendar-day inclusive span. TotalRevenue counts every status, failed
// and pending included.
func (s *StatsService) ComputeStats(ctx context.Context, now time.Time) (*domain.StatisticsSnapshot, error) {
	now = now.UTC()
	sy, sm, sd := now.AddDate(0, 0, -7).Date()
	windowStart := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	ey, em, ed := now.Date()
	windowEnd := time.Date(ey, em, ed, 23, 59, 59, int(999*time.Millisecond), time.UTC)

	payments, err := s.repo.List(ctx, ports.ListPaymentsFilter{
		StartDate: windowStart,
		EndDate:   windowEnd,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch payments for stats")
		return nil, err
	}

	today := now.Format(dayFormat)
	snapshot := &domain.StatisticsSnapshot{
		TotalRevenue:     decimal.Zero,
		RevenueLast7Days: make(map[string]decimal.Decimal),
	}

	for _, p := range payments {
		day := p.CreatedAt.UTC().Format(dayFormat)

		snapshot.TotalRevenue = snapshot.TotalRevenue.Add(p.Amount)
		snapshot.RevenueLast7Days[day] = snapshot.RevenueLast7Days[day].Add(p.Amount)

		if day == today {
			snapshot.TotalPaymentsToday++
		}
		if p.Status == domain.StatusFailed {
			snapshot.FailedTransactions++
		}
	}

	return snapshot, nil
}
