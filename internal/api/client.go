// Package api is the sole network boundary of the console. Every backend
// call goes through Client.do, which attaches the bearer credential from the
// session store and normalizes success and failure into a single contract:
// parsed domain values on success, *Error with a short human-readable
// message on any non-success status.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/myurl/console/internal/core/ports"
	"github.com/myurl/console/internal/metrics"
)

// fallbackMessage is reported when the backend supplies no usable error
// field. Callers render messages verbatim, so it must never be empty.
const fallbackMessage = "Request failed"

// Client calls the myURL backend REST API. It implements ports.Backend.
// Methods are safe for concurrent use; each in-flight call populates only
// its own result.
type Client struct {
	baseURL string
	http    *http.Client
	store   ports.SessionStore
	log     zerolog.Logger
}

// New creates a Client rooted at baseURL. A timeout of zero leaves requests
// bounded only by the caller's context.
func New(baseURL string, timeout time.Duration, store ports.SessionStore, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		store:   store,
		log:     log,
	}
}

// errEnvelope is the backend's error body convention.
type errEnvelope struct {
	Error string `json:"error"`
}

// do performs one round trip. path is the concrete request path; route is
// the logical route used as a metrics label (no embedded IDs). body is
// JSON-encoded when non-nil; out, when non-nil, receives the decoded
// success payload.
func (c *Client) do(ctx context.Context, method, path, route string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, route, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, route, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	// Absent token means the request goes out unauthenticated; the server
	// decides whether that is acceptable.
	if s := c.store.Get(); s != nil {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(method, route, "transport_error").Inc()
		c.log.Warn().Err(err).Str("method", method).Str("path", route).Msg("request transport failure")
		return fmt.Errorf("call %s %s: %w", method, route, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(method, route, "transport_error").Inc()
		return fmt.Errorf("read %s %s response: %w", method, route, err)
	}

	metrics.RequestsTotal.WithLabelValues(method, route, fmt.Sprint(resp.StatusCode)).Inc()
	metrics.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The whole body was read as text first; a parse failure here is
		// deferred into the generic fallback rather than failing the call
		// with a decode error.
		msg := fallbackMessage
		var env errEnvelope
		if err := json.Unmarshal(raw, &env); err == nil && env.Error != "" {
			msg = env.Error
		} else {
			// Keep the unusable body reachable for diagnosis without
			// leaking it into the user-facing message.
			c.log.Debug().Int("status", resp.StatusCode).Str("body", string(raw)).Msg("error body had no usable error field")
		}
		c.log.Debug().Int("status", resp.StatusCode).Str("method", method).Str("path", route).Str("error", msg).Msg("request rejected")
		return &Error{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, route, err)
		}
	}
	return nil
}
