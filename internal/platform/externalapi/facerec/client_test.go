package facerec

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"login_backend/internal/feature/auth/usecase"
)

func TestNewClient(t *testing.T) {
	t.Parallel()

	cfg := Config{
		BaseURL: "http://recognizer.test",
		Timeout: 10 * time.Second,
	}
	client := NewClient(cfg, &http.Client{})

	if client == nil {
		t.Fatal("expected non-nil client")
	}
	if client.cfg.BaseURL != cfg.BaseURL {
		t.Errorf("expected base URL %q, got %q", cfg.BaseURL, client.cfg.BaseURL)
	}
}

// newRecognizerServer returns a test server that asserts the request contract
// (POST /recognize, JSON body with an "image" field) and responds with body.
func newRecognizerServer(t *testing.T, image string, status int, body string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/recognize" {
			t.Errorf("expected path /recognize, got %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected Content-Type application/json, got %s", ct)
		}

		var req struct {
			Image string `json:"image"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if req.Image != image {
			t.Errorf("expected image %q, got %q", image, req.Image)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestClient_Recognize_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want uint
	}{
		{name: "integer uid", body: `{"uid": 7}`, want: 7},
		{name: "wide integer uid", body: `{"uid": 4294967397}`, want: 4294967397},
		{name: "numeric string uid", body: `{"uid": "7"}`, want: 7},
		{name: "extra fields are ignored", body: `{"uid": 7, "confidence": 0.98}`, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newRecognizerServer(t, "aW1hZ2U=", http.StatusOK, tt.body)
			defer server.Close()

			client := NewClient(Config{BaseURL: server.URL}, server.Client())

			uid, err := client.Recognize(context.Background(), "aW1hZ2U=")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if uid != tt.want {
				t.Errorf("expected uid %d, got %d", tt.want, uid)
			}
		})
	}
}

func TestClient_Recognize_NoMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "uid field omitted", status: http.StatusOK, body: `{"message": "no match"}`},
		{name: "uid is null", status: http.StatusOK, body: `{"uid": null}`},
		{name: "uid is not numeric", status: http.StatusOK, body: `{"uid": "abc"}`},
		{name: "non-2xx response", status: http.StatusInternalServerError, body: `{"error": "boom"}`},
		{name: "malformed body", status: http.StatusOK, body: `{"uid": `},
		{name: "empty body", status: http.StatusOK, body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newRecognizerServer(t, "aW1hZ2U=", tt.status, tt.body)
			defer server.Close()

			client := NewClient(Config{BaseURL: server.URL}, server.Client())

			_, err := client.Recognize(context.Background(), "aW1hZ2U=")
			if !errors.Is(err, usecase.ErrFaceNotRecognized) {
				t.Errorf("expected ErrFaceNotRecognized, got: %v", err)
			}
		})
	}
}

func TestClient_Recognize_TransportFaultsAreAbsorbed(t *testing.T) {
	t.Parallel()

	t.Run("connection refused", func(t *testing.T) {
		// Grab an address that no longer has a listener behind it.
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		client := NewClient(Config{BaseURL: url}, &http.Client{Timeout: time.Second})

		_, err := client.Recognize(context.Background(), "aW1hZ2U=")
		if !errors.Is(err, usecase.ErrFaceNotRecognized) {
			t.Errorf("expected ErrFaceNotRecognized, got: %v", err)
		}
	})

	t.Run("timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(`{"uid": 7}`))
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL}, &http.Client{Timeout: 20 * time.Millisecond})

		_, err := client.Recognize(context.Background(), "aW1hZ2U=")
		if !errors.Is(err, usecase.ErrFaceNotRecognized) {
			t.Errorf("expected ErrFaceNotRecognized, got: %v", err)
		}
	})
}
