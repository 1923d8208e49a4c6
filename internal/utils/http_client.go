package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds a [resty.Client] preconfigured for a JSON API rooted at
// a base URL.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that sends every request to
// baseURL with a JSON content type. A positive timeout bounds each request.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
