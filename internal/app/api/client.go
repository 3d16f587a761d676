// Package api is the HTTP client for the dwellhub backend REST API.
//
// The backend is the single system of record: every screen in the web tier
// fetches and mutates data through this package and keeps no storage of its
// own. Endpoints follow one convention per resource (base path P):
//
//	GET    P       list
//	POST   P       create
//	PUT    P/{id}  update
//	DELETE P/{id}  delete
//
// Responses are wrapped in a {success, data, message} envelope. Failures are
// mapped onto a small taxonomy (see errors.go) so callers can tell a
// retryable transport problem from a reference conflict or a stale id.
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
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single backend round trip when the config does not
// say otherwise.
const DefaultTimeout = 15 * time.Second

// Client is the shared transport for all collection endpoints. Construct one
// in bootstrap and derive per-resource collections from it.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	log     *zap.Logger
}

// New builds a Client for the given base URL. apiKey may be empty in local
// development against an open backend.
func New(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: timeout},
		log:     logger,
	}
}

// BaseURL reports the configured backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// envelope is the backend's standard response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// do performs one round trip. body (if non-nil) is sent as JSON; on success
// the envelope's data field is decoded into out (if non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		rdr = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", reqID),
			zap.Error(err))
		return &RequestError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &RequestError{Method: method, Path: path, Err: err}
	}

	var env envelope
	if len(raw) > 0 {
		// A non-envelope body (e.g. a proxy error page) is not fatal here;
		// status mapping below still applies.
		_ = json.Unmarshal(raw, &env)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		return &ConflictError{Message: remoteMessage(env, "the record is still referenced by another resource")}
	case resp.StatusCode >= 500:
		c.log.Warn("backend server error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("request_id", reqID))
		return &RequestError{Method: method, Path: path, Status: resp.StatusCode,
			Err: fmt.Errorf("server returned %s", resp.Status)}
	case resp.StatusCode >= 400:
		return &RemoteError{Status: resp.StatusCode, Message: remoteMessage(env, resp.Status)}
	}

	if !env.Success {
		return &RemoteError{Status: resp.StatusCode, Message: remoteMessage(env, "request rejected")}
	}

	if out != nil {
		if len(env.Data) == 0 {
			return &RemoteError{Status: resp.StatusCode, Message: "empty response data"}
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return nil
}

// maxResponseBytes caps a single backend response body.
const maxResponseBytes = 8 << 20

// Ping verifies the backend is reachable. Used by the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func remoteMessage(env envelope, fallback string) string {
	if m := strings.TrimSpace(env.Message); m != "" {
		return m
	}
	return fallback
}
