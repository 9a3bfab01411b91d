package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/samandr77/restaurant-erp/internal/entity"
	"github.com/samandr77/restaurant-erp/pkg/httpapi"
)

// @title Billing API
// @version 1.0
// @description CRUD over restaurant bills and billing statistics
// @BasePath /

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../../mocks/billing_api.go -package=mocks -mock_names=Service=MockBillingService

type Service interface {
	Bills(ctx context.Context, filter entity.BillFilter) ([]entity.Bill, error)
	CreateBill(ctx context.Context, req entity.NewBill) (entity.Bill, error)
	Bill(ctx context.Context, id string) (entity.Bill, error)
	UpdateBill(ctx context.Context, id string, patch entity.BillPatch) (entity.Bill, error)
	DeleteBill(ctx context.Context, id string) error
	Statistics(ctx context.Context) (entity.BillStatistics, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

const (
	msgBillNotFound = "Bill not found"
	msgInternal     = "Internal error"
	dateLayout      = time.DateOnly
)

type BillResponse struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Total      float64       `json:"total"`
	CreatedAt  *time.Time    `json:"created_at"`
	Items      []entity.Item `json:"items"`
}

func billResponse(b entity.Bill) BillResponse {
	items := b.Items
	if items == nil {
		items = []entity.Item{}
	}

	return BillResponse{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		Total:      b.Total,
		CreatedAt:  b.CreatedAt,
		Items:      items,
	}
}

// Bills lists bills
// @Summary List bills
// @Description Returns every bill, optionally filtered by customer and creation date
// @Tags bills
// @Produce json
// @Param customer_id query string false "Customer id"
// @Param from_date query string false "Created on or after, YYYY-MM-DD"
// @Param to_date query string false "Created on or before, YYYY-MM-DD"
// @Success 200 {array} BillResponse
// @Failure 400 {object} httpapi.ErrorResponse "Invalid filter"
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /bills [get]
func (h *Handler) Bills(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := billFilter(r)
	if err != nil {
		h.sendErr(ctx, w, err)
		return
	}

	bills, err := h.s.Bills(ctx, filter)
	if err != nil {
		h.sendErr(ctx, w, err)
		return
	}

	resp := make([]BillResponse, 0, len(bills))
	for _, b := range bills {
		resp = append(resp, billResponse(b))
	}

	httpapi.SendJSON(ctx, w, http.StatusOK, resp)
}

func billFilter(r *http.Request) (entity.BillFilter, error) {
	q := r.URL.Query()

	filter := entity.BillFilter{
		CustomerID: q.Get("customer_id"),
	}

	if v := q.Get("from_date"); v != "" {
		from, err := time.Parse(dateLayout, v)
		if err != nil {
			return entity.BillFilter{}, entity.NewValidationError("from_date", "expected YYYY-MM-DD")
		}

		filter.From = &from
	}

	if v := q.Get("to_date"); v != "" {
		to, err := time.Parse(dateLayout, v)
		if err != nil {
			return entity.BillFilter{}, entity.NewValidationError("to_date", "expected YYYY-MM-DD")
		}

		to = to.AddDate(0, 0, 1)
		filter.To = &to
	}

	return filter, nil
}

type CreateBillRequest struct {
	CustomerID *string       `json:"customer_id"`
	Total      *float64      `json:"total"`
	Items      []entity.Item `json:"items"`
}

// CreateBill creates a bill
// @Summary Create bill
// @Description Stores a new bill; id and created_at are assigned by the server
// @Tags bills
// @Accept json
// @Produce json
// @Param CreateBillRequest body CreateBillRequest true "Bill"
// @Success 201 {object} BillResponse
// @Failure 400 {object} httpapi.ErrorResponse "Missing or invalid fields"
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /bills [post]
func (h *Handler) CreateBill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateBillRequest

	err := decodeBody(r, &req)
	if err != nil {
		h.sendErr(ctx, w, err)
		return
	}

	bill, err := h.s.CreateBill(ctx, entity.NewBill{
		CustomerID: req.CustomerID,
		Total:      req.Total,
		Items:      req.Items,
	})
	if err != nil {
		h.sendErr(ctx, w, err)
		return
	}

	httpapi.SendJSON(ctx, w, http.StatusCreated, billResponse(bill))
}

// Bill returns a bill
// @Summary Get bill
// @Tags bills
// @Produce json
// @Param id path string true "Bill id"
// @Success 200 {object} BillResponse
// @Failure 404 {object} httpapi.ErrorResponse "Bill not found"
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /bills/{id} [get]
func (h *Handler) Bill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bill, err := h.s.Bill(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.sendErr(ctx, w, err)
		return
	}

	httpapi.SendJSON(ctx, w, http.StatusOK, billResponse(bill))
}

// UpdateBillRequest lists the fields an update may change. Other keys are ignored.
type UpdateBillRequest struct {
	CustomerID *string        `json:"customer_id"`
	Total      *float64       `json:"total"`
	Items      *[]entity.Item `json:"items"`
}

// UpdateBill updates a bill
// @Summary Update bill
// @Description Merges customer_id, total and items onto the stored bill; other fields are ignored
// @Tags bills
// @Accept json
// @Produce json
// @Param id path string true "Bill id"
// @Param UpdateBillRequest body UpdateBillRequest true "Fields to change"
// @Success 200 {object} BillResponse
// @Failure 400 {object} httpapi.ErrorResponse "Invalid field type"
// @Failure 404 {object} httpapi.ErrorResponse "Bill not found"
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /bills/{id} [put]
func (h *Handler) UpdateBill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateBillRequest

	err := decodeBody(r, &req)
	if err != nil {
		h.sendErr(ctx, w, err)
		return
	}

	bill, err := h.s.UpdateBill(ctx, chi.URLParam(r, "id"), entity.BillPatch{
		CustomerID: req.CustomerID,
		Total:      req.Total,
		Items:      req.Items,
	})
	if err != nil {
		h.sendErr(ctx, w, err)
		return
	}

	httpapi.SendJSON(ctx, w, http.StatusOK, billResponse(bill))
}

// DeleteBill deletes a bill
// @Summary Delete bill
// @Tags bills
// @Produce json
// @Param id path string true "Bill id"
// @Success 200 {object} httpapi.MessageResponse
// @Failure 404 {object} httpapi.ErrorResponse "Bill not found"
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /bills/{id} [delete]
func (h *Handler) DeleteBill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.s.DeleteBill(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.sendErr(ctx, w, err)
		return
	}

	httpapi.SendJSON(ctx, w, http.StatusOK, httpapi.MessageResponse{Message: "Deleted"})
}

type StatisticsResponse struct {
	TotalOrders       int                 `json:"totalOrders"`
	TotalRevenue      float64             `json:"totalRevenue"`
	AverageOrderValue float64             `json:"averageOrderValue"`
	MonthlyData       []MonthlyStatistics `json:"monthlyData"`
}

type MonthlyStatistics struct {
	Month   string  `json:"month"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// Statistics returns billing totals
// @Summary Billing statistics
// @Description Order count, revenue, average order value and a per-month breakdown
// @Tags bills
// @Produce json
// @Success 200 {object} StatisticsResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /bills/statistics [get]
func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.s.Statistics(ctx)
	if err != nil {
		h.sendErr(ctx, w, err)
		return
	}

	monthly := make([]MonthlyStatistics, 0, len(stats.MonthlyData))
	for _, m := range stats.MonthlyData {
		monthly = append(monthly, MonthlyStatistics{
			Month:   m.Month,
			Orders:  m.Orders,
			Revenue: m.Revenue.InexactFloat64(),
		})
	}

	httpapi.SendJSON(ctx, w, http.StatusOK, StatisticsResponse{
		TotalOrders:       stats.TotalOrders,
		TotalRevenue:      stats.TotalRevenue.InexactFloat64(),
		AverageOrderValue: stats.AverageOrderValue.InexactFloat64(),
		MonthlyData:       monthly,
	})
}

// decodeBody turns JSON type mismatches into validation errors for the offending field.
// The body must hold exactly one JSON value.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)

	err := dec.Decode(dst)
	if err == nil {
		_, err = dec.Token()
		if !errors.Is(err, io.EOF) {
			return entity.NewValidationError("body", "invalid JSON")
		}

		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field, _, _ := strings.Cut(typeErr.Field, ".")
		if field == "" {
			field = "body"
		}

		return entity.NewValidationError(field, fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value))
	}

	return entity.NewValidationError("body", "invalid JSON")
}

func (h *Handler) sendErr(ctx context.Context, w http.ResponseWriter, err error) {
	var verr *entity.ValidationError

	switch {
	case errors.As(err, &verr):
		httpapi.SendJSON(ctx, w, http.StatusBadRequest, httpapi.ErrorResponse{Error: "validation failed", Fields: verr.Fields})
	case errors.Is(err, entity.ErrNotFound):
		httpapi.SendJSONErr(ctx, w, http.StatusNotFound, err, msgBillNotFound)
	default:
		httpapi.SendJSONErr(ctx, w, http.StatusInternalServerError, err, msgInternal)
	}
}
