// Package backend implements the HTTP client for the external incident API.
// The panel holds no data of its own; every screen reads and writes through
// this client.
package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// Kind classifies a failed backend call. Screens surface one static message
// regardless, but the classification is preserved for callers that need it.
type Kind int

const (
	// KindTransport covers network-level failures: refused connections,
	// DNS errors, timeouts, canceled contexts.
	KindTransport Kind = iota
	// KindStatus covers non-success HTTP responses other than 404.
	KindStatus
	// KindNotFound is a 404 from the backend.
	KindNotFound
	// KindDecode covers responses whose body could not be decoded.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindNotFound:
		return "not found"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error describes a failed backend call.
type Error struct {
	Kind       Kind
	StatusCode int
	Op         string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("backend %s: %s (HTTP %d)", e.Op, e.Kind, e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind == KindNotFound
	}
	return false
}

// Client talks to the incident backend. A zero timeout leaves requests
// unbounded except by the caller's context.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Ping checks that the backend answers HTTP at all. Any response counts,
// including 401; only transport failures report the backend as down.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Op: "ping", Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// do performs one request against the backend. The bearer token is attached
// when present; a missing token is not an error at this layer, the backend
// decides authorization. out, when non-nil, receives the decoded JSON body.
func (c *Client) do(ctx context.Context, method, path, token, contentType string, body []byte, out any) error {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, Err: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &Error{Kind: KindNotFound, StatusCode: resp.StatusCode, Op: op}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &Error{Kind: KindStatus, StatusCode: resp.StatusCode, Op: op}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindDecode, StatusCode: resp.StatusCode, Op: op, Err: err}
	}
	return nil
}

// get issues a GET and decodes the response into out.
func (c *Client) get(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, token, "", nil, out)
}

// postJSON issues a POST with a JSON body and decodes the response into out.
func (c *Client) postJSON(ctx context.Context, path, token string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return &Error{Kind: KindDecode, Op: "POST " + path, Err: err}
	}
	return c.do(ctx, http.MethodPost, path, token, "application/json", body, out)
}

// putJSON issues a PUT with a JSON body and decodes the response into out.
func (c *Client) putJSON(ctx context.Context, path, token string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return &Error{Kind: KindDecode, Op: "PUT " + path, Err: err}
	}
	return c.do(ctx, http.MethodPut, path, token, "application/json", body, out)
}

// del issues a DELETE and discards the response body.
func (c *Client) del(ctx context.Context, path, token string) error {
	return c.do(ctx, http.MethodDelete, path, token, "", nil, nil)
}
