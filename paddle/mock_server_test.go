package paddle

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// newMockServer creates an httptest.Server configured to respond dynamically
// to specific Paddle API routes with literal mock JSON payloads.
func newMockServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	// 1. Product - Get Mock
	mux.HandleFunc("/products/pro_123", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"data": {
				"id": "pro_123",
				"name": "ChatApp Pro",
				"description": "Monthly team plan",
				"type": "standard",
				"tax_category": "saas",
				"status": "active",
				"created_at": "2026-02-24T12:00:00Z",
				"updated_at": "2026-02-24T13:00:00Z"
			},
			"meta": {"request_id": "req_get_product"}
		}`))
	})

	// 2. Product - Create Mock
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{
				"data": {
					"id": "pro_456",
					"name": "ChatApp Starter",
					"type": "standard",
					"tax_category": "saas",
					"status": "active",
					"created_at": "2026-02-24T12:00:00Z",
					"updated_at": "2026-02-24T12:00:00Z"
				},
				"meta": {"request_id": "req_create_product"}
			}`))
			return
		}

		// List - Paginated (two pages keyed off the `after` cursor)
		switch r.URL.Query().Get("after") {
		case "":
			_, _ = w.Write([]byte(`{
				"data": [{"id": "pro_1", "name": "First", "type": "standard", "tax_category": "saas", "status": "active", "created_at": "2026-02-24T12:00:00Z", "updated_at": "2026-02-24T12:00:00Z"}],
				"meta": {
					"request_id": "req_list_1",
					"pagination": {"per_page": 1, "next": "https://api.paddle.com/products?after=pro_1", "has_more": true, "estimated_total": 2}
				}
			}`))
		case "pro_1":
			_, _ = w.Write([]byte(`{
				"data": [{"id": "pro_2", "name": "Second", "type": "standard", "tax_category": "saas", "status": "active", "created_at": "2026-02-24T12:00:00Z", "updated_at": "2026-02-24T12:00:00Z"}],
				"meta": {
					"request_id": "req_list_2",
					"pagination": {"per_page": 1, "next": "https://api.paddle.com/products?after=pro_2", "has_more": false, "estimated_total": 2}
				}
			}`))
		}
	})

	// 3. Customer - Get Mock
	mux.HandleFunc("/customers/ctm_123", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"data": {
				"id": "ctm_123",
				"name": "Sam Miller",
				"email": "sam@example.com",
				"marketing_consent": false,
				"status": "active",
				"locale": "en",
				"created_at": "2026-01-10T08:30:00Z",
				"updated_at": "2026-02-01T09:00:00Z"
			},
			"meta": {"request_id": "req_get_customer"}
		}`))
	})

	// 4. Event Types Mock
	mux.HandleFunc("/event-types", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"data": [
				{"name": "transaction.completed", "description": "Occurs when a transaction is completed.", "group": "Transaction", "available_versions": [1]},
				{"name": "subscription.canceled", "description": "Occurs when a subscription is canceled.", "group": "Subscription", "available_versions": [1]}
			],
			"meta": {"request_id": "req_event_types"}
		}`))
	})

	// 5. Rate Limit Generator Mock
	mux.HandleFunc("/429-generator", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"type": "request_error", "code": "too_many_requests", "detail": "Too many requests", "documentation_url": "https://developer.paddle.com/errors/shared/too_many_requests"}, "meta": {"request_id": "req_429"}}`))
	})

	// 6. Broken Endpoint Mock (Auth Error)
	mux.HandleFunc("/403-generator", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": {"type": "request_error", "code": "forbidden", "detail": "You aren't permitted to perform this request.", "documentation_url": "https://developer.paddle.com/errors/shared/forbidden"}, "meta": {"request_id": "req_403"}}`))
	})

	// 7. Context Cancellation Delay Mock
	mux.HandleFunc("/delay", func(w http.ResponseWriter, r *http.Request) {
		// Blocks until the handler context is canceled
		<-r.Context().Done()
	})

	return httptest.NewServer(mux)
}

// newMockClient builds a Paddle client connected directly to the mock server
// base URL.
func newMockClient(ts *httptest.Server, opts ...Option) *Client {
	defaultOpts := []Option{
		WithBaseURL(ts.URL),
		// Shorter backoff logic so tests don't permanently stall
		WithMaxRetries(3),
		WithBackoffBase(time.Millisecond),
		WithBackoffMax(5 * time.Millisecond),
	}
	defaultOpts = append(defaultOpts, opts...)
	return NewClient("test-api-key", defaultOpts...)
}
