// Package verify confirms that external links are reachable.
package verify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const DefaultTimeout = 10 * time.Second

// Verifier checks one URL. A nil error means reachable.
type Verifier interface {
	Verify(ctx context.Context, rawURL string) error
}

// HTTPVerifier sends a HEAD request and never reads the body. Only transport failures
// count unless CheckStatus is set.
type HTTPVerifier struct {
	client      *http.Client
	timeout     time.Duration
	checkStatus bool
	userAgent   string
}

type Option func(*HTTPVerifier)

func WithClient(client *http.Client) Option {
	return func(v *HTTPVerifier) { v.client = client }
}

func WithTimeout(timeout time.Duration) Option {
	return func(v *HTTPVerifier) {
		if timeout > 0 {
			v.timeout = timeout
		}
	}
}

// WithStatusCheck treats HTTP status codes of 400 and above as failures.
func WithStatusCheck(enabled bool) Option {
	return func(v *HTTPVerifier) { v.checkStatus = enabled }
}

func WithUserAgent(userAgent string) Option {
	return func(v *HTTPVerifier) { v.userAgent = userAgent }
}

func NewHTTPVerifier(opts ...Option) *HTTPVerifier {
	v := &HTTPVerifier{
		client:    &http.Client{},
		timeout:   DefaultTimeout,
		userAgent: "mdlinkcheck",
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *HTTPVerifier) Verify(ctx context.Context, rawURL string) error {
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return fmt.Errorf("malformed url: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if v.userAgent != "" {
		req.Header.Set("User-Agent", v.userAgent)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach %s: %w", rawURL, err)
	}
	resp.Body.Close()

	if v.checkStatus && resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("encountered status code %d when pinging %s", resp.StatusCode, rawURL)
	}
	return nil
}

// Offline accepts every URL without touching the network.
type Offline struct{}

func (Offline) Verify(context.Context, string) error {
	return nil
}
