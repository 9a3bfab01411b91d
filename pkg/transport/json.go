package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// NewClient returns an http.Client with the logging RoundTripper and the given timeout.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: NewRoundTripper(http.DefaultTransport),
	}
}

const (
	maxBodySize     = 1 << 20
	maxErrorBodyLen = 256
)

// GetJSON performs a GET and decodes a 200 response body into dst.
func GetJSON(ctx context.Context, c *http.Client, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if len(body) > maxErrorBodyLen {
			body = append(body[:maxErrorBodyLen:maxErrorBodyLen], "..."...)
		}

		return fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, body)
	}

	if len(body) > maxBodySize {
		return fmt.Errorf("read response: body exceeds %d bytes", maxBodySize)
	}

	err = json.Unmarshal(body, dst)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

var ErrNotObject = errors.New("response is not a JSON object")

// GetJSONObject performs a GET and returns the top-level members of a JSON object body.
// Values are kept raw. Arrays, scalars and null are rejected with ErrNotObject.
func GetJSONObject(ctx context.Context, c *http.Client, url string) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage

	err := GetJSON(ctx, c, url, &obj)
	if err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("decode response: %w", ErrNotObject)
		}

		return nil, err
	}

	if obj == nil {
		return nil, fmt.Errorf("decode response: %w", ErrNotObject)
	}

	return obj, nil
}
