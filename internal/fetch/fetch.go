// Package fetch provides the low-level HTTP transport shared by the APOD
// metadata client and the image pipeline. It performs single GET requests
// with no retry; callers decide how to decode the returned bytes.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "cosmonaut/0.1"
)

// NetworkError reports a transport-level failure: DNS, timeout, connection
// reset, or a non-2xx HTTP status.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("fetch %s: %v", e.URL, e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError reports a response body that does not match the expected
// shape (malformed JSON, or bytes that are not a decodable image).
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode %s: %v", e.URL, e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// Fetcher issues HTTP GET requests.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// New builds a Fetcher. A non-positive timeout falls back to the default.
func New(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}
}

// Get performs a single GET and returns the raw body bytes.
func (f *Fetcher) Get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: rawURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{URL: rawURL, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: rawURL, Err: err}
	}
	return data, nil
}

// GetJSON performs a GET and unmarshals the body into dest.
func (f *Fetcher) GetJSON(ctx context.Context, rawURL string, dest any) error {
	data, err := f.Get(ctx, rawURL)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return &DecodeError{URL: rawURL, Err: err}
	}
	return nil
}
