package transport_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/restaurant-erp/pkg/logger"
	"github.com/samandr77/restaurant-erp/pkg/transport"
)

//nolint:paralleltest
func TestRoundTripper_RoundTrip(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := new(bytes.Buffer)

	now := time.Now().Format(time.DateOnly)

	slog.SetDefault(slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "time" {
				return slog.Attr{Key: a.Key, Value: slog.StringValue(now)}
			}
			return a
		},
	})))

	var gotReqID string

	mux := http.NewServeMux()
	mux.HandleFunc("/count", func(w http.ResponseWriter, r *http.Request) {
		gotReqID = r.Header.Get("X-Request-Id")
		_, _ = fmt.Fprintf(w, `{"count": 3}`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := transport.NewClient(10 * time.Second)

	ctx := logger.WithRequestID(context.Background(), "req-42")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/count", nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, "req-42", gotReqID)
	require.Equal(t,
		fmt.Sprintf(`{"time":"%s","level":"INFO","msg":"outgoing request","request":"GET %s/count"}
{"time":"%s","level":"INFO","msg":"incoming response","response":"GET %s/count","status":200}
`, now, server.URL, now, server.URL),
		buf.String())
}

func TestGetJSON(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"count": 7}`)
	})
	mux.HandleFunc("/fail", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	})
	mux.HandleFunc("/garbage", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `<html>`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := &http.Client{Timeout: time.Second}

	var dst struct {
		Count int `json:"count"`
	}

	err := transport.GetJSON(context.Background(), client, server.URL+"/ok", &dst)
	require.NoError(t, err)
	require.Equal(t, 7, dst.Count)

	err = transport.GetJSON(context.Background(), client, server.URL+"/fail", &dst)
	require.ErrorContains(t, err, "unexpected status code: 502")

	err = transport.GetJSON(context.Background(), client, server.URL+"/garbage", &dst)
	require.ErrorContains(t, err, "decode response")
}

func TestGetJSON_LargeBodies(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/fail", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = fmt.Fprint(w, strings.Repeat("x", 10_000))
	})
	mux.HandleFunc("/huge", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprintf(w, `{"count": "%s"}`, strings.Repeat("9", 2<<20))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := &http.Client{Timeout: 5 * time.Second}

	var dst map[string]any

	err := transport.GetJSON(context.Background(), client, server.URL+"/fail", &dst)
	require.ErrorContains(t, err, "unexpected status code: 500")
	require.Less(t, len(err.Error()), 400)
	require.True(t, strings.HasSuffix(err.Error(), "..."))

	err = transport.GetJSON(context.Background(), client, server.URL+"/huge", &dst)
	require.ErrorContains(t, err, "body exceeds")
}

func TestGetJSONObject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    map[string]json.RawMessage
		wantErr error
	}{
		{
			name: "object",
			body: `{"count": 12, "extra": [1, 2]}`,
			want: map[string]json.RawMessage{"count": json.RawMessage(`12`), "extra": json.RawMessage(`[1, 2]`)},
		},
		{name: "array", body: `[{"count": 12}]`, wantErr: transport.ErrNotObject},
		{name: "number", body: `12`, wantErr: transport.ErrNotObject},
		{name: "null", body: `null`, wantErr: transport.ErrNotObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = fmt.Fprint(w, tt.body)
			}))
			t.Cleanup(server.Close)

			got, err := transport.GetJSONObject(context.Background(), &http.Client{Timeout: time.Second}, server.URL)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
