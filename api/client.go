// ABOUTME: HTTP client for the remote relationship-OS API
// ABOUTME: Uniform envelope decoding, bearer auth, retries and debug logging
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

// TokenSource supplies the current bearer token. An empty string means the
// request goes out unauthenticated; the server enforces authorization.
type TokenSource func() string

// Error is a server-reported application error. The message is shown to
// the user verbatim.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// envelope is the uniform response shape every endpoint returns.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Client talks JSON over HTTP to the remote API.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
	debug   bool
}

// New constructs a Client with optional functional arguments. The default
// transport carries a 30 second timeout so a dead server cannot leave the
// UI in a perpetual loading state.
func New(base string, opts ...Option) *Client {
	c := &Client{
		baseURL: base,
		http:    &http.Client{Timeout: 30 * time.Second},
		token:   func() string { return "" },
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	return c
}

// debugTransport logs every request/response round trip at debug level.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if dump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(dump)).Msg("HTTP request")
	}
	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}
	if dump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(dump)).Msg("HTTP response")
	}
	return resp, nil
}

// send performs one HTTP exchange. GET requests are retried a couple of
// times on transport failure since they are idempotent.
func (c *Client) send(ctx context.Context, method, url string, body []byte) (*http.Response, error) {
	attempt := func() (*http.Response, error) {
		var reader *bytes.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		} else {
			reader = bytes.NewReader(nil)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
		return c.http.Do(req)
	}

	if method != http.MethodGet {
		return attempt()
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(500*time.Millisecond), 2), ctx)
	return backoff.RetryWithData(attempt, policy)
}

// call issues a request and decodes the uniform envelope. Transport
// failures and non-JSON bodies are converted to errors carrying the
// per-action fallback message; they never escape as panics. Server
// application errors surface their message verbatim.
func call[T any](ctx context.Context, c *Client, method, path string, body any, fallback string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("%s: %w", fallback, err)
		}
		payload = b
	}

	resp, err := c.send(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", fallback, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return zero, fmt.Errorf("%s: %w", fallback, err)
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = fallback
		}
		return zero, &Error{Message: msg}
	}

	var out T
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &out); err != nil {
			return zero, fmt.Errorf("%s: %w", fallback, err)
		}
	}
	return out, nil
}
