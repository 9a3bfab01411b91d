package customer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

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

// Count returns the raw "count" member of GET /customers/count.
func (c *Client) Count(ctx context.Context) (json.RawMessage, error) {
	obj, err := transport.GetJSONObject(ctx, c.http, c.baseURL+"/customers/count")
	if err != nil {
		return nil, fmt.Errorf("get customer count: %w", err)
	}

	return obj["count"], nil
}
