package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/samandr77/restaurant-erp/internal/entity"
	"github.com/samandr77/restaurant-erp/pkg/httpapi"
)

// @title Dashboard API
// @version 1.0
// @description Restaurant-wide statistics merged from the billing, customer, menu and staff services
// @BasePath /

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../../mocks/dashboard_api.go -package=mocks -mock_names=Service=MockDashboardService

type Service interface {
	Summary(ctx context.Context) (entity.DashboardSummary, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

// StatisticsResponse holds downstream values exactly as they were received.
type StatisticsResponse struct {
	TotalOrders       json.RawMessage `json:"totalOrders" swaggertype:"number"`
	TotalRevenue      json.RawMessage `json:"totalRevenue" swaggertype:"number"`
	AverageOrderValue json.RawMessage `json:"averageOrderValue" swaggertype:"number"`
	TotalSalaries     json.RawMessage `json:"totalSalaries" swaggertype:"number"`
	CustomerCount     json.RawMessage `json:"customerCount" swaggertype:"integer"`
	MenuCount         json.RawMessage `json:"menuCount" swaggertype:"integer"`
	StaffCount        json.RawMessage `json:"staffCount" swaggertype:"integer"`
	MonthlyData       json.RawMessage `json:"monthlyData" swaggertype:"array,object"`
}

// Statistics returns the dashboard summary
// @Summary Dashboard statistics
// @Description Queries all dependencies concurrently; any failure fails the whole request
// @Tags dashboard
// @Produce json
// @Success 200 {object} StatisticsResponse
// @Failure 500 {object} httpapi.ErrorResponse "A dependency failed"
// @Router /dashboard/statistics [get]
func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.s.Summary(ctx)
	if err != nil {
		var aggErr *entity.AggregationError

		switch {
		case errors.As(err, &aggErr):
			httpapi.SendJSONErr(ctx, w, http.StatusInternalServerError, err, aggErr.Error())
		default:
			httpapi.SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Internal error")
		}

		return
	}

	httpapi.SendJSON(ctx, w, http.StatusOK, StatisticsResponse{
		TotalOrders:       summary.TotalOrders,
		TotalRevenue:      summary.TotalRevenue,
		AverageOrderValue: summary.AverageOrderValue,
		TotalSalaries:     summary.TotalSalaries,
		CustomerCount:     summary.CustomerCount,
		MenuCount:         summary.MenuCount,
		StaffCount:        summary.StaffCount,
		MonthlyData:       summary.MonthlyData,
	})
}
