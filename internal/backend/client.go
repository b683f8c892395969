// Package backend is the HTTP client for the CareXYZ API, where all business
// truth lives. One attempt per call, no retries, no caching; failures come
// back as *APIError for the caller to render locally.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

// IsUnauthorized reports whether err is a 401/403 from the backend.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden)
}

func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusNotFound
}

// Recorder observes outbound backend calls. Satisfied by the metrics package.
type Recorder interface {
	ObserveBackendCall(op string, status int, elapsed time.Duration)
}

type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
	rec     Recorder
}

func NewClient(baseURL string, log zerolog.Logger, rec Recorder) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     log,
		rec:     rec,
	}
}

// do performs one JSON request. A non-2xx response becomes an *APIError
// carrying the server-provided message, falling back to a generic one.
func (c *Client) do(ctx context.Context, op, method, path string, body any, token string, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(op, 0, start)
		return fmt.Errorf("call backend: %w", err)
	}
	defer resp.Body.Close()

	c.observe(op, resp.StatusCode, start)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Message: "Request failed"}
		var parsed struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(data, &parsed); err == nil && parsed.Message != "" {
			apiErr.Message = parsed.Message
		}

		c.log.Debug().
			Str("op", op).
			Int("status", resp.StatusCode).
			Str("message", apiErr.Message).
			Msg("backend error")
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) observe(op string, status int, start time.Time) {
	if c.rec != nil {
		c.rec.ObserveBackendCall(op, status, time.Since(start))
	}
}

func (c *Client) get(ctx context.Context, op, path, token string, out any) error {
	return c.do(ctx, op, http.MethodGet, path, nil, token, out)
}

func (c *Client) post(ctx context.Context, op, path string, body any, token string, out any) error {
	return c.do(ctx, op, http.MethodPost, path, body, token, out)
}

func (c *Client) patch(ctx context.Context, op, path string, body any, token string, out any) error {
	return c.do(ctx, op, http.MethodPatch, path, body, token, out)
}
