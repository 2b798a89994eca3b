package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// A thing capable of retrieving the raw content of a named resource,
// e.g. "alerts.csv". Any failure is fatal for the load that requested
// the resource.
type Fetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// HTTP fetches resources relative to a base URL.
type HTTP struct {
	BaseURL string
	Headers map[string]string

	client *http.Client
}

func NewHTTP(baseURL string, timeout time.Duration) *HTTP {
	return &HTTP{
		BaseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (h *HTTP) Fetch(ctx context.Context, name string) ([]byte, error) {
	url := h.BaseURL
	if url != "" && url[len(url)-1] != '/' {
		url += "/"
	}
	url += name

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for k, v := range h.Headers {
		req.Header.Add(k, v)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d %s", name, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	return body, nil
}
