package staff

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

// Summary fetches GET /staff/count, which reports headcount and the salary total.
func (c *Client) Summary(ctx context.Context) (entity.StaffSummary, error) {
	obj, err := transport.GetJSONObject(ctx, c.http, c.baseURL+"/staff/count")
	if err != nil {
		return entity.StaffSummary{}, fmt.Errorf("get staff summary: %w", err)
	}

	return entity.StaffSummary{
		Count:         obj["count"],
		TotalSalaries: obj["totalSalaries"],
	}, nil
}
