package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/restaurant-erp/internal/dashboard/api"
	"github.com/samandr77/restaurant-erp/internal/dashboard/clients/billing"
	"github.com/samandr77/restaurant-erp/internal/dashboard/clients/customer"
	"github.com/samandr77/restaurant-erp/internal/dashboard/clients/menu"
	"github.com/samandr77/restaurant-erp/internal/dashboard/clients/staff"
	"github.com/samandr77/restaurant-erp/internal/dashboard/service"
	"github.com/samandr77/restaurant-erp/internal/entity"
	"github.com/samandr77/restaurant-erp/internal/mocks"
	"github.com/samandr77/restaurant-erp/pkg/httpapi"
)

var summaryFields = []string{
	"totalOrders", "totalRevenue", "averageOrderValue", "totalSalaries",
	"customerCount", "menuCount", "staffCount", "monthlyData",
}

func getStatistics(t *testing.T, h http.Handler) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/statistics", nil))

	return w
}

func TestHandler_Statistics(t *testing.T) {
	t.Parallel()

	s := mocks.NewMockDashboardService(gomock.NewController(t))
	h := api.NewRouter(api.NewHandler(s), httpapi.NewMiddleware())

	s.EXPECT().Summary(gomock.Any()).Return(entity.DashboardSummary{
		TotalOrders:   json.RawMessage(`2`),
		TotalRevenue:  json.RawMessage(`19.99`),
		CustomerCount: json.RawMessage(`"n/a"`),
	}, nil)

	w := getStatistics(t, h)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{
		"totalOrders": 2, "totalRevenue": 19.99, "averageOrderValue": null,
		"totalSalaries": null, "customerCount": "n/a", "menuCount": null,
		"staffCount": null, "monthlyData": null
	}`, w.Body.String())
}

func TestHandler_Statistics_Error(t *testing.T) {
	t.Parallel()

	s := mocks.NewMockDashboardService(gomock.NewController(t))
	h := api.NewRouter(api.NewHandler(s), httpapi.NewMiddleware())

	gomock.InOrder(
		s.EXPECT().Summary(gomock.Any()).Return(entity.DashboardSummary{},
			&entity.AggregationError{Source: "menu", Err: errors.New("timeout")}),
		s.EXPECT().Summary(gomock.Any()).Return(entity.DashboardSummary{}, errors.New("unexpected")),
	)

	w := getStatistics(t, h)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error": "menu: timeout"}`, w.Body.String())

	w = getStatistics(t, h)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error": "Internal error"}`, w.Body.String())
}

type downstream struct {
	billing, customer, menu, staff http.HandlerFunc
}

func body(s string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, s)
	}
}

func healthyDownstream() downstream {
	return downstream{
		billing: body(`{"totalOrders": 3, "totalRevenue": 150.75, "averageOrderValue": 50.25,
			"monthlyData": [{"month": "2026-02", "orders": 1, "revenue": 50.25},
			{"month": "2026-03", "orders": 2, "revenue": 100.5}]}`),
		customer: body(`{"count": 58}`),
		menu:     body(`{"count": 24}`),
		staff:    body(`{"count": 9, "totalSalaries": 31500.0}`),
	}
}

// newDashboard starts the four dependencies and returns a dashboard wired to them with real clients.
func newDashboard(t *testing.T, d downstream, timeout time.Duration) http.Handler {
	t.Helper()

	serve := func(pattern string, h http.HandlerFunc) string {
		mux := http.NewServeMux()
		mux.HandleFunc(pattern, h)

		server := httptest.NewServer(mux)
		t.Cleanup(server.Close)

		return server.URL
	}

	s := service.New(
		billing.NewClient(serve("GET /bills/statistics", d.billing), timeout),
		customer.NewClient(serve("GET /customers/count", d.customer), timeout),
		menu.NewClient(serve("GET /menu-items/count", d.menu), timeout),
		staff.NewClient(serve("GET /staff/count", d.staff), timeout),
	)

	return api.NewRouter(api.NewHandler(s), httpapi.NewMiddleware())
}

func TestDashboard_EndToEnd(t *testing.T) {
	t.Parallel()

	h := newDashboard(t, healthyDownstream(), time.Second)

	w := getStatistics(t, h)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, len(summaryFields))

	for _, f := range summaryFields {
		require.Contains(t, got, f)
	}

	require.JSONEq(t, `{
		"totalOrders": 3, "totalRevenue": 150.75, "averageOrderValue": 50.25,
		"totalSalaries": 31500.0, "customerCount": 58, "menuCount": 24, "staffCount": 9,
		"monthlyData": [{"month": "2026-02", "orders": 1, "revenue": 50.25},
			{"month": "2026-03", "orders": 2, "revenue": 100.5}]
	}`, w.Body.String())

	// Values are passed through, not re-encoded from floats.
	require.Equal(t, "31500.0", string(got["totalSalaries"]))
}

func TestDashboard_EndToEnd_Failures(t *testing.T) {
	t.Parallel()

	failing := func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}

	hanging := func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}

	tests := []struct {
		name   string
		mutate func(d *downstream)
		source string
	}{
		{name: "billing 503", mutate: func(d *downstream) { d.billing = failing }, source: "billing"},
		{name: "customer not json", mutate: func(d *downstream) { d.customer = body(`<html></html>`) }, source: "customer"},
		{name: "menu array", mutate: func(d *downstream) { d.menu = body(`[24]`) }, source: "menu"},
		{name: "staff timeout", mutate: func(d *downstream) { d.staff = hanging }, source: "staff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := healthyDownstream()
			tt.mutate(&d)

			h := newDashboard(t, d, 200*time.Millisecond)

			w := getStatistics(t, h)
			require.Equal(t, http.StatusInternalServerError, w.Code)

			var got map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			require.Len(t, got, 1)

			msg, ok := got["error"].(string)
			require.True(t, ok)
			require.Regexp(t, "^"+tt.source+": ", msg)

			for _, f := range summaryFields {
				require.NotContains(t, got, f)
			}
		})
	}
}

func TestDashboard_ContextCanceled(t *testing.T) {
	t.Parallel()

	h := newDashboard(t, healthyDownstream(), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/statistics", nil).WithContext(ctx))
	require.Equal(t, http.StatusInternalServerError, w.Code)
}
