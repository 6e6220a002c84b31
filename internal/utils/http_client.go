package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps *resty.Client so the whole resty API stays available
// while callers get a client preconfigured for the auth API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an HTTPClient targeting baseURL. A non-positive
// timeout leaves resty's default (no timeout) in place.
//
//	client := utils.NewHTTPClient("http://localhost:8080", 15*time.Second)
//	resp, err := client.R().Get("/api/version")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		cli.SetTimeout(timeout)
	}

	return &HTTPClient{Client: cli}
}
