package service

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"

	"github.com/samandr77/restaurant-erp/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../../mocks/dashboard_service.go -package=mocks

type BillingClient interface {
	Statistics(ctx context.Context) (entity.BillingSummary, error)
}

type CustomerClient interface {
	Count(ctx context.Context) (json.RawMessage, error)
}

type MenuClient interface {
	Count(ctx context.Context) (json.RawMessage, error)
}

type StaffClient interface {
	Summary(ctx context.Context) (entity.StaffSummary, error)
}

// Sources as reported in AggregationError.
const (
	SourceBilling  = "billing"
	SourceCustomer = "customer"
	SourceMenu     = "menu"
	SourceStaff    = "staff"
)

type Service struct {
	billing  BillingClient
	customer CustomerClient
	menu     MenuClient
	staff    StaffClient
}

func New(billing BillingClient, customer CustomerClient, menu MenuClient, staff StaffClient) *Service {
	return &Service{
		billing:  billing,
		customer: customer,
		menu:     menu,
		staff:    staff,
	}
}

// Summary queries all four services concurrently. The first failure cancels the
// remaining calls and is returned as *entity.AggregationError; no partial summary is built.
func (s *Service) Summary(ctx context.Context) (entity.DashboardSummary, error) {
	var (
		bills         entity.BillingSummary
		customerCount json.RawMessage
		menuCount     json.RawMessage
		staff         entity.StaffSummary
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		bills, err = s.billing.Statistics(ctx)
		if err != nil {
			return &entity.AggregationError{Source: SourceBilling, Err: err}
		}

		return nil
	})

	g.Go(func() error {
		var err error

		customerCount, err = s.customer.Count(ctx)
		if err != nil {
			return &entity.AggregationError{Source: SourceCustomer, Err: err}
		}

		return nil
	})

	g.Go(func() error {
		var err error

		menuCount, err = s.menu.Count(ctx)
		if err != nil {
			return &entity.AggregationError{Source: SourceMenu, Err: err}
		}

		return nil
	})

	g.Go(func() error {
		var err error

		staff, err = s.staff.Summary(ctx)
		if err != nil {
			return &entity.AggregationError{Source: SourceStaff, Err: err}
		}

		return nil
	})

	err := g.Wait()
	if err != nil {
		return entity.DashboardSummary{}, err
	}

	return entity.DashboardSummary{
		TotalOrders:       bills.TotalOrders,
		TotalRevenue:      bills.TotalRevenue,
		AverageOrderValue: bills.AverageOrderValue,
		MonthlyData:       bills.MonthlyData,
		TotalSalaries:     staff.TotalSalaries,
		StaffCount:        staff.Count,
		CustomerCount:     customerCount,
		MenuCount:         menuCount,
	}, nil
}
