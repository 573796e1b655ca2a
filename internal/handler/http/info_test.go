package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRootHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	RootHandler{}.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	expected := map[string]any{
		"message":   "Hello from the Analytica backend!",
		"endpoints": []any{"/summarize", "/test"},
	}
	if diff := cmp.Diff(expected, body); diff != "" {
		t.Errorf("body mismatch (-expected +got):\n%s", diff)
	}
}

func TestHelloHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	HelloHandler{}.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/hello", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "Hello from the backend API!" {
		t.Errorf("message = %q", body["message"])
	}
}
