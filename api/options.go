// ABOUTME: Functional options for constructing the API client
// ABOUTME: Keeps the available knobs discoverable in one place
package api

import (
	"fmt"
	"net/http"
)

// Option mutates the Client during New().
type Option func(*Client) error

// WithHTTPClient injects a custom *http.Client. Useful for setting
// transport timeouts, custom TLS settings, or httptest clients.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("nil http client")
		}
		c.http = hc
		return nil
	}
}

// WithTokenSource wires the session's bearer token into every request.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) error {
		if ts == nil {
			return fmt.Errorf("nil token source")
		}
		c.token = ts
		return nil
	}
}

// WithDebugLogging wraps the transport so every request/response pair is
// dumped at debug level when enabled.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			transport := c.http.Transport
			if transport == nil {
				transport = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: transport}
			c.debug = true
		}
		return nil
	}
}
