package paddle

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestClient_Do_ContextCancellation(t *testing.T) {
	ts := newMockServer(t)
	defer ts.Close()

	client := newMockClient(ts)

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/delay", nil)

	// Context with immediate 1 millisecond execution cancellation
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := client.Do(ctx, req)
	duration := time.Since(start)

	if err == nil {
		t.Fatal("expected context deadline exceeded error, got nil")
	}

	// Make sure the request correctly aborted and returned quickly
	if duration > 100*time.Millisecond {
		t.Errorf("request took too long to abort on cancelled context: %v", duration)
	}
}

func TestClient_Do_CustomErrorMapping(t *testing.T) {
	ts := newMockServer(t)
	defer ts.Close()

	client := newMockClient(ts)

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/403-generator", nil)
	_, err := client.Do(context.Background(), req)

	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %T: %v", err, err)
	}
	if authErr.StatusCode != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", authErr.StatusCode)
	}

	// The wrapped APIError carries Paddle's structured error envelope.
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected wrapped APIError, got %v", err)
	}
	if apiErr.Code != "forbidden" {
		t.Errorf("expected code 'forbidden', got %q", apiErr.Code)
	}
}

// TestClient_Do_CallerRequestUntouched verifies that the caller's request is
// never mutated by Client.Do.
func TestClient_Do_CallerRequestUntouched(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "https://example.com", nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("X-Custom-Header", "original-value")

	client := NewClient("test-api-key")

	// Use a mock transport to avoid actual network calls
	client.httpClient.Transport = &safetyCheckTransport{}

	_, _ = client.Do(context.Background(), req)

	if req.Header.Get("Authorization") != "" {
		t.Errorf("original request header was modified! Authorization: %s", req.Header.Get("Authorization"))
	}
	if req.Header.Get("Accept") != "" {
		t.Errorf("original request header was modified! Accept: %s", req.Header.Get("Accept"))
	}
	if req.Header.Get("X-Custom-Header") != "original-value" {
		t.Errorf("original custom header lost: %s", req.Header.Get("X-Custom-Header"))
	}
}

type safetyCheckTransport struct {
	lastReq *http.Request
}

func (m *safetyCheckTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	m.lastReq = req
	return &http.Response{
		StatusCode: 200,
		Body:       http.NoBody,
	}, nil
}

func TestClient_Do_Headers(t *testing.T) {
	tests := []struct {
		name            string
		apiKey          string
		method          string
		expectedHeaders map[string]string
		unexpectedKeys  []string
	}{
		{
			name:   "With API Key",
			apiKey: "pdl_test_key",
			method: http.MethodGet,
			expectedHeaders: map[string]string{
				"Authorization": "Bearer pdl_test_key",
				"Accept":        "application/json",
			},
		},
		{
			name:           "Without API Key",
			apiKey:         "",
			method:         http.MethodGet,
			unexpectedKeys: []string{"Authorization"},
		},
		{
			name:   "Content Type On Writes",
			apiKey: "pdl_test_key",
			method: http.MethodPost,
			expectedHeaders: map[string]string{
				"Content-Type": "application/json",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := &safetyCheckTransport{}
			client := NewClient(tt.apiKey)
			client.httpClient.Transport = transport

			req, _ := http.NewRequest(tt.method, "https://example.com", nil)
			if _, err := client.Do(context.Background(), req); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			sent := transport.lastReq
			if sent == nil {
				t.Fatal("no request reached the transport")
			}

			for key, want := range tt.expectedHeaders {
				if got := sent.Header.Get(key); got != want {
					t.Errorf("expected header %s=%q, got %q", key, want, got)
				}
			}
			for _, key := range tt.unexpectedKeys {
				if got := sent.Header.Get(key); got != "" {
					t.Errorf("expected no %s header, got %q", key, got)
				}
			}
		})
	}
}

func TestServiceInitialization(t *testing.T) {
	client := NewClient("test-api-key")

	if client.Products == nil {
		t.Error("expected client.Products to be initialized")
	}
	if client.Prices == nil {
		t.Error("expected client.Prices to be initialized")
	}
	if client.Customers == nil {
		t.Error("expected client.Customers to be initialized")
	}
	if client.Discounts == nil {
		t.Error("expected client.Discounts to be initialized")
	}
	if client.Subscriptions == nil {
		t.Error("expected client.Subscriptions to be initialized")
	}
	if client.Events == nil {
		t.Error("expected client.Events to be initialized")
	}
}
