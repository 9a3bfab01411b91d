package billing

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/samandr77/restaurant-erp/internal/entity"
	"github.com/samandr77/restaurant-erp/pkg/transport"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    transport.NewClient(timeout),
	}
}

// Statistics fetches GET /bills/statistics. Members the billing service omits stay nil.
func (c *Client) Statistics(ctx context.Context) (entity.BillingSummary, error) {
	obj, err := transport.GetJSONObject(ctx, c.http, c.baseURL+"/bills/statistics")
	if err != nil {
		return entity.BillingSummary{}, fmt.Errorf("get bill statistics: %w", err)
	}

	return entity.BillingSummary{
		TotalOrders:       obj["totalOrders"],
		TotalRevenue:      obj["totalRevenue"],
		AverageOrderValue: obj["averageOrderValue"],
		MonthlyData:       obj["monthlyData"],
	}, nil
}
