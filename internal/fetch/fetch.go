// Package fetch retrieves and decodes JSON payloads from user-supplied API
// endpoints. It performs no validation of the decoded value beyond JSON
// well-formedness; shape checks belong to the dataset layer.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Errors returned by the fetch layer.
var (
	ErrInvalidURL = errors.New("invalid URL")
	ErrDecode     = errors.New("response is not valid JSON")
)

// StatusError reports a non-success HTTP response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Code, e.Body)
}

// Result is one fetched payload: the parsed value plus the raw document
// bytes, kept so column display order can be recovered from the wire form.
type Result struct {
	URL  string
	Raw  interface{}
	Body []byte
}

// Client fetches and decodes JSON API responses.
type Client struct {
	http     *http.Client
	maxBytes int64
}

// NewClient creates a fetch client. maxBytes caps the response size; 0
// selects the 10 MiB default.
func NewClient(timeout time.Duration, maxBytes int64) *Client {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &Client{
		http:     &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
	}
}

// ValidateURL checks that raw is an absolute http or https URL.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https", ErrInvalidURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return nil
}

// Fetch GETs the endpoint and decodes the JSON response.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*Result, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var raw interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return &Result{URL: rawURL, Raw: raw, Body: body}, nil
}
