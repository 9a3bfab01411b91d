package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type BillStatistics struct {
	TotalOrders       int
	TotalRevenue      decimal.Decimal
	AverageOrderValue decimal.Decimal
	MonthlyData       []MonthlyStatistics
}

type MonthlyStatistics struct {
	Month   string // YYYY-MM
	Orders  int
	Revenue decimal.Decimal
}

// DashboardSummary carries downstream values as raw JSON so they are passed through untouched.
// A nil field is rendered as null.
type DashboardSummary struct {
	TotalOrders       json.RawMessage
	TotalRevenue      json.RawMessage
	AverageOrderValue json.RawMessage
	MonthlyData       json.RawMessage
	TotalSalaries     json.RawMessage
	StaffCount        json.RawMessage
	CustomerCount     json.RawMessage
	MenuCount         json.RawMessage
}

type BillingSummary struct {
	TotalOrders       json.RawMessage
	TotalRevenue      json.RawMessage
	AverageOrderValue json.RawMessage
	MonthlyData       json.RawMessage
}

type StaffSummary struct {
	Count         json.RawMessage
	TotalSalaries json.RawMessage
}
