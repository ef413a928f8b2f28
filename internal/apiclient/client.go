// Package apiclient is the typed boundary to the TripWise REST backend.
// Every resource has explicit request/response types; callers never see the
// backend's {data, message, code} envelope.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Error codes the backend uses for structured business failures.
const (
	CodeQuotaExceeded        = "QUOTA_EXCEEDED"
	CodeSubscriptionNotFound = "SUBSCRIPTION_NOT_FOUND"
	CodeUnauthenticated      = "UNAUTHENTICATED"
	CodeTokenExpired         = "TOKEN_EXPIRED"
	CodeInvalidToken         = "INVALID_TOKEN"
	CodeDuplicateEmail       = "DUPLICATE_EMAIL"
	CodeDuplicateUsername    = "DUPLICATE_USERNAME"
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("backend %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("backend %d: %s", e.Status, e.Message)
}

// IsUnauthorized reports whether the caller's tokens were rejected.
func (e *APIError) IsUnauthorized() bool {
	if e.Status == http.StatusUnauthorized {
		return true
	}
	switch e.Code {
	case CodeUnauthenticated, CodeTokenExpired, CodeInvalidToken:
		return true
	}
	return false
}

// IsServer reports a backend-side failure.
func (e *APIError) IsServer() bool {
	return e.Status >= 500
}

// AsAPIError unwraps err into *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// Auth identifies the caller on a backend request. The zero value is anonymous.
type Auth struct {
	AccessToken string
	DeviceID    string
	RequestID   string
}

// Client issues JSON requests against BaseURL.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a Client with its own http.Client and timeout.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Error   string          `json:"error"`
}

func (c *Client) do(ctx context.Context, a Auth, method, path string, query url.Values, body, out any) error {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+a.AccessToken)
	}
	if a.DeviceID != "" {
		req.Header.Set("X-Device-Id", a.DeviceID)
	}
	if a.RequestID != "" {
		req.Header.Set("X-Request-ID", a.RequestID)
	}

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, raw)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s %s data: %w", method, path, err)
	}
	return nil
}

func decodeError(status int, raw []byte) error {
	apiErr := &APIError{Status: status}
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil {
		apiErr.Code = env.Code
		apiErr.Message = env.Message
		if apiErr.Message == "" {
			apiErr.Message = env.Error
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

func (c *Client) get(ctx context.Context, a Auth, path string, query url.Values, out any) error {
	return c.do(ctx, a, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, a Auth, path string, body, out any) error {
	return c.do(ctx, a, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, a Auth, path string, body, out any) error {
	return c.do(ctx, a, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, a Auth, path string, body, out any) error {
	return c.do(ctx, a, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, a Auth, path string) error {
	return c.do(ctx, a, http.MethodDelete, path, nil, nil, nil)
}

func idPath(format string, id int64) string {
	return fmt.Sprintf(format, id)
}
