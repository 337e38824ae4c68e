// internal/common/http/client.go
package http

import (
	"net/http"
	"time"
)

// Client is the outbound HTTP client for external APIs (text generation).
// A zero timeout disables the client-level deadline so the per-request
// context is the single source of cancellation.
type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 4,
			},
		},
	}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.httpClient.Do(req)
}
