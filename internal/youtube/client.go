// Package youtube provides a minimal client for the YouTube Data API v3
// commentThreads endpoint. It fetches exactly one page per call; following
// the pagination token is the caller's job.
package youtube

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// maxResults is the page size requested from the API. 100 is the documented
// maximum for commentThreads.
const maxResults = "100"

type Client struct {
	baseURL string
	client  *resty.Client
}

func NewClient(baseURL string) *Client {
	restyClient := resty.New().
		SetTimeout(30 * time.Second).
		SetHeader("User-Agent", "YouTube-Comments-to-CSV/1.0").
		SetHeader("Accept", "application/json")

	return &Client{
		baseURL: baseURL,
		client:  restyClient,
	}
}

// SetTimeout allows customizing the HTTP timeout after client creation
func (c *Client) SetTimeout(timeout time.Duration) *Client {
	c.client.SetTimeout(timeout)
	return c
}
