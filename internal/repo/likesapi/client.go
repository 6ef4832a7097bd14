package likesapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxResponseBytes = 1 * 1024 * 1024

// Client calls the external likes API. The endpoint is a templated URL
// with {uid}, {region} and {key} placeholders substituted per request.
type Client struct {
	urlTemplate string
	apiKey      string
	httpClient  *http.Client
}

func NewClient(urlTemplate string, apiKey string, timeout time.Duration) (*Client, error) {
	trimmedTemplate := strings.TrimSpace(urlTemplate)
	trimmedKey := strings.TrimSpace(apiKey)
	if trimmedTemplate == "" || trimmedKey == "" {
		return nil, errors.New("likes api url template or api key is empty")
	}

	if timeout <= 0 {
		timeout = 8 * time.Second
	}

	return &Client{
		urlTemplate: trimmedTemplate,
		apiKey:      trimmedKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// FetchLikes performs a single GET against the likes API and returns the
// raw response body. Any non-200 status or transport failure is an error;
// the caller decides what to do with it.
func (c *Client) FetchLikes(ctx context.Context, uid string, region string) (string, error) {
	requestURL := strings.NewReplacer(
		"{uid}", url.QueryEscape(uid),
		"{region}", url.QueryEscape(region),
		"{key}", url.QueryEscape(c.apiKey),
	).Replace(c.urlTemplate)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return "", fmt.Errorf("create likes api request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute likes api request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read likes api response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("likes api status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return string(body), nil
}
