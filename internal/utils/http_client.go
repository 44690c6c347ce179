package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8000", 5*time.Second)
//	status, err := client.GetJSON(ctx, "/health", &snapshot)
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance whose
// requests are resolved against baseURL and time out after timeout.
// A zero timeout leaves resty's default (none) in place.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// GetJSON issues GET path and decodes a JSON body into out, whatever the
// status code. It returns the status code; err is set only for transport
// failures.
func (c *HTTPClient) GetJSON(ctx context.Context, path string, out any) (int, error) {
	resp, err := c.R().
		SetContext(ctx).
		SetResult(out).
		SetError(out).
		Get(path)
	if err != nil {
		return 0, fmt.Errorf("GET %s: %w", path, err)
	}

	return resp.StatusCode(), nil
}
