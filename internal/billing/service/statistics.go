package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/samandr77/restaurant-erp/internal/entity"
)

const moneyPlaces = 2

// Statistics summarises every stored bill. Bills without created_at only count towards the totals.
func (s *Service) Statistics(ctx context.Context) (entity.BillStatistics, error) {
	bills, err := s.repo.Bills(ctx, entity.BillFilter{})
	if err != nil {
		return entity.BillStatistics{}, fmt.Errorf("list bills: %w", err)
	}

	for _, b := range bills {
		if !finite(b.Total) {
			slog.WarnContext(ctx, "bill with non-finite total left out of statistics", "bill_id", b.ID)
		}
	}

	return Summarize(bills), nil
}

// Summarize aggregates bills. Bills whose total is NaN or infinite are skipped entirely.
func Summarize(bills []entity.Bill) entity.BillStatistics {
	revenue := decimal.Zero
	orders := 0
	months := make(map[string]*entity.MonthlyStatistics)

	for _, b := range bills {
		if !finite(b.Total) {
			continue
		}

		orders++

		total := decimal.NewFromFloat(b.Total)
		revenue = revenue.Add(total)

		if b.CreatedAt == nil {
			continue
		}

		key := b.CreatedAt.UTC().Format("2006-01")

		m, ok := months[key]
		if !ok {
			m = &entity.MonthlyStatistics{Month: key, Revenue: decimal.Zero}
			months[key] = m
		}

		m.Orders++
		m.Revenue = m.Revenue.Add(total)
	}

	stats := entity.BillStatistics{
		TotalOrders:       orders,
		TotalRevenue:      revenue.Round(moneyPlaces),
		AverageOrderValue: decimal.Zero,
		MonthlyData:       make([]entity.MonthlyStatistics, 0, len(months)),
	}

	if orders > 0 {
		stats.AverageOrderValue = revenue.Div(decimal.NewFromInt(int64(orders))).Round(moneyPlaces)
	}

	for _, m := range months {
		m.Revenue = m.Revenue.Round(moneyPlaces)
		stats.MonthlyData = append(stats.MonthlyData, *m)
	}

	slices.SortFunc(stats.MonthlyData, func(a, b entity.MonthlyStatistics) int {
		return strings.Compare(a.Month, b.Month)
	})

	return stats
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
