package paddle

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// ProductionBaseURL is the live Paddle Billing API endpoint.
	ProductionBaseURL = "https://api.paddle.com"

	// SandboxBaseURL is the sandbox Paddle Billing API endpoint.
	SandboxBaseURL = "https://sandbox-api.paddle.com"
)

// Client is the core Paddle Billing API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string

	maxRetries  int
	backoffBase time.Duration
	backoffMax  time.Duration

	rateLimiter *rateLimiter

	// Services used for communicating with the Paddle API endpoints.
	Products      *ProductService
	Prices        *PriceService
	Customers     *CustomerService
	Discounts     *DiscountService
	Subscriptions *SubscriptionService
	Events        *EventService
}

// NewClient creates a new Paddle API client authenticated with the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		baseURL:     ProductionBaseURL,
		apiKey:      apiKey,
		maxRetries:  3,
		backoffBase: 1 * time.Second,
		backoffMax:  60 * time.Second,
		rateLimiter: newRateLimiter(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.Products = &ProductService{client: c}
	c.Prices = &PriceService{client: c}
	c.Customers = &CustomerService{client: c}
	c.Discounts = &DiscountService{client: c}
	c.Subscriptions = &SubscriptionService{client: c}
	c.Events = &EventService{client: c}

	return c
}

// Do executes an HTTP request with context, authentication, rate limiting,
// and automatic retries on 429 Too Many Requests.
//
// The caller's request is never mutated; headers are set on a clone.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	req = req.Clone(ctx)

	// Inject authentication header if available.
	if c.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}

	// Set standard headers.
	req.Header.Set("Accept", "application/json")
	if req.Header.Get("Content-Type") == "" && req.Method != http.MethodGet {
		req.Header.Set("Content-Type", "application/json")
	}

	var resp *http.Response
	var err error
	var attempt int

	for {
		// Enforce local rate limit before executing request.
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("local rate limit wait interrupted: %w", err)
		}

		// Execute HTTP request.
		resp, err = c.httpClient.Do(req)
		if err != nil {
			// If context is canceled or deadline exceeded, return immediately.
			if ctx.Err() != nil {
				return nil, fmt.Errorf("request aborted by context: %w", ctx.Err())
			}
			return nil, fmt.Errorf("http execute request failed: %w", err)
		}

		// Success or non-retryable error, break loop.
		if resp.StatusCode != http.StatusTooManyRequests {
			break
		}

		// Handle 429 Too Many Requests
		if attempt >= c.maxRetries {
			// Drain and close body before returning error to prevent leaks
			body, _ := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			return nil, mapHTTPError(resp, body)
		}

		// Drain body to reuse connection
		_, _ = io.ReadAll(resp.Body)
		_ = resp.Body.Close()

		backoff := calculateBackoff(attempt, c.backoffBase, c.backoffMax)

		select {
		case <-time.After(backoff):
			// Proceed to retry
			attempt++
		case <-ctx.Done():
			return nil, fmt.Errorf("context canceled during rate limit backoff: %w", ctx.Err())
		}
	}

	// Handle standard HTTP errors (4xx, 5xx).
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		return nil, mapHTTPError(resp, body)
	}

	return resp, nil
}
