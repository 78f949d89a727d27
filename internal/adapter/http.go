package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ticket-marketplace/internal/logger"
)

// HTTPClient defines an interface for HTTP client operations to enable mocking
//
//go:generate mockgen -source=http.go -destination=../mocks/http.go -package=mocks -mock_names=HTTPClient=MockHTTPClient
type HTTPClient interface {
	// Get performs a GET request and unmarshals the response into result.
	// Rate limited (429), 5xx responses and network errors are retried with exponential backoff.
	Get(ctx context.Context, url string, result interface{}) error

	// GetNoRetry performs a single GET request and unmarshals the response into result
	GetNoRetry(ctx context.Context, url string, result interface{}) error

	// Post performs a POST request with the given headers and returns the response body.
	// Rate limited (429) responses and network errors are retried with exponential backoff;
	// 5xx responses are not, the upload may have been accepted.
	Post(ctx context.Context, url string, headers map[string]string, body []byte) ([]byte, error)
}

// RetryConfig controls the exponential backoff of retried requests
type RetryConfig struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

// DefaultRetryConfig is used when NewHTTPClient is given a zero RetryConfig
var DefaultRetryConfig = RetryConfig{
	InitialInterval: 2 * time.Second,
	MaxInterval:     30 * time.Second,
	MaxElapsedTime:  time.Minute,
}

// RealHTTPClient implements HTTPClient using the standard http package
type RealHTTPClient struct {
	client *http.Client
	retry  RetryConfig
}

// NewHTTPClient creates a new real HTTP client
func NewHTTPClient(timeout time.Duration, retry RetryConfig) HTTPClient {
	if retry == (RetryConfig{}) {
		retry = DefaultRetryConfig
	}
	return &RealHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		retry: retry,
	}
}

// newRequest builds a fresh request for each attempt so that the body can be replayed
type newRequest func() (*http.Request, error)

// do executes a single request and returns the body of a 200/201 response
func (c *RealHTTPClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warn("failed to close response body", zap.Error(err), zap.String("url", req.URL.String()))
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, errRateLimited
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", errServerError, resp.StatusCode, string(body))
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, backoff.Permanent(fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body)))
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to read response body: %w", err))
	}

	return respBody, nil
}

var (
	errRateLimited = errors.New("rate limited (429), retrying")
	errServerError = errors.New("server error")
)

// doWithRetry executes a request with exponential backoff retry for rate limiting and network errors.
// 5xx responses are retried only when retryServerErrors is set.
func (c *RealHTTPClient) doWithRetry(ctx context.Context, build newRequest, retryServerErrors bool) ([]byte, error) {
	var respBody []byte

	operation := func() error {
		req, err := build()
		if err != nil {
			return backoff.Permanent(err)
		}

		body, err := c.do(req)
		switch {
		case errors.Is(err, errRateLimited):
			logger.Warn("rate limited, retrying with backoff", zap.String("url", req.URL.String()))
		case errors.Is(err, errServerError) && !retryServerErrors:
			return backoff.Permanent(err)
		}
		if err != nil {
			return err
		}

		respBody = body
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retry.InitialInterval
	b.MaxInterval = c.retry.MaxInterval
	b.MaxElapsedTime = c.retry.MaxElapsedTime
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("request failed after retries: %w", err)
	}

	return respBody, nil
}

// Get performs a GET request and unmarshals the response into result
func (c *RealHTTPClient) Get(ctx context.Context, url string, result interface{}) error {
	respBody, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return newGetRequest(ctx, url)
	}, true)
	if err != nil {
		return err
	}

	return decode(respBody, result)
}

// GetNoRetry performs a single GET request and unmarshals the response into result
func (c *RealHTTPClient) GetNoRetry(ctx context.Context, url string, result interface{}) error {
	req, err := newGetRequest(ctx, url)
	if err != nil {
		return err
	}

	respBody, err := c.do(req)
	if err != nil {
		var permanent *backoff.PermanentError
		if errors.As(err, &permanent) {
			return permanent.Err
		}
		return err
	}

	return decode(respBody, result)
}

// Post performs a POST request with the given headers and returns the response body
func (c *RealHTTPClient) Post(ctx context.Context, url string, headers map[string]string, body []byte) ([]byte, error) {
	return c.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		return req, nil
	}, false)
}

func newGetRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func decode(body []byte, result interface{}) error {
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
