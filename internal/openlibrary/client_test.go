package openlibrary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/oltools/openlibrary-mcp/internal/common"
)

func newTestClient(serverURL string) *Client {
	return NewClient(serverURL, 5*time.Second, common.NewSilentLogger())
}

func TestClientGet_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search.json" {
			t.Errorf("Expected path /search.json, got %s", r.URL.Path)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Expected Accept application/json, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"numFound": 1}`))
	}))
	defer mockServer.Close()

	client := newTestClient(mockServer.URL)
	body, err := client.Get(context.Background(), "/search.json")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(body) != `{"numFound": 1}` {
		t.Errorf("Unexpected body: %s", body)
	}
}

func TestClientGet_StatusError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer mockServer.Close()

	client := newTestClient(mockServer.URL)
	_, err := client.Get(context.Background(), "/search.json")
	if err == nil {
		t.Fatal("Expected error for 429 response")
	}

	se, ok := err.(*StatusError)
	if !ok {
		t.Fatalf("Expected *StatusError, got %T", err)
	}
	if se.StatusCode != http.StatusTooManyRequests {
		t.Errorf("Expected status code 429, got %d", se.StatusCode)
	}
	if se.StatusText() != "Too Many Requests" {
		t.Errorf("Expected status text 'Too Many Requests', got %q", se.StatusText())
	}
}

func TestIsNotFound(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer mockServer.Close()

	client := newTestClient(mockServer.URL)
	_, err := client.Get(context.Background(), "/authors/OL0A.json")
	if !IsNotFound(err) {
		t.Errorf("Expected IsNotFound true for 404, got %v", err)
	}

	if IsNotFound(&StatusError{StatusCode: http.StatusInternalServerError, Status: "500 Internal Server Error"}) {
		t.Error("Expected IsNotFound false for 500")
	}
	if IsNotFound(nil) {
		t.Error("Expected IsNotFound false for nil")
	}
}

func TestClientGet_TransportError(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1")
	_, err := client.Get(context.Background(), "/search.json")
	if err == nil {
		t.Fatal("Expected transport error")
	}
	if IsNotFound(err) {
		t.Error("Transport error must not classify as not-found")
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient("", 0, common.NewSilentLogger())
	if client.BaseURL() != DefaultBaseURL {
		t.Errorf("Expected default base URL, got %q", client.BaseURL())
	}
}
