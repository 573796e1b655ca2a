package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, map[string]string{"key": "value"})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, expected 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, expected application/json", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["key"] != "value" {
		t.Errorf("body = %v", body)
	}
}

func TestJSON_NilBody(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusNoContent, nil)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, expected 204", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, expected empty", rec.Body.String())
	}
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusBadRequest, errors.New("no input provided: submit text, a file, or an image"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "no input provided: submit text, a file, or an image" {
		t.Errorf("error = %q, expected the verbatim message", body["error"])
	}
}

func TestSafeError(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		err      error
		expected string
	}{
		{
			name:     "validation error is echoed",
			code:     http.StatusBadRequest,
			err:      errors.New("tone is invalid"),
			expected: "tone is invalid",
		},
		{
			name:     "no-input error is echoed",
			code:     http.StatusBadRequest,
			err:      errors.New("no input provided: submit text, a file, or an image"),
			expected: "no input provided: submit text, a file, or an image",
		},
		{
			name:     "unreadable file error is echoed",
			code:     http.StatusBadRequest,
			err:      errors.New("could not read uploaded file as text"),
			expected: "could not read uploaded file as text",
		},
		{
			name:     "internal detail is masked",
			code:     http.StatusBadRequest,
			err:      errors.New("dial tcp 10.0.0.5:5432: connection refused"),
			expected: "internal server error",
		},
		{
			name:     "5xx never echoes even safe-looking text",
			code:     http.StatusInternalServerError,
			err:      errors.New("database url is invalid"),
			expected: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			SafeError(rec, tt.code, tt.err)

			if rec.Code != tt.code {
				t.Errorf("status = %d, expected %d", rec.Code, tt.code)
			}

			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body["error"] != tt.expected {
				t.Errorf("error = %q, expected %q", body["error"], tt.expected)
			}
		})
	}
}

func TestSafeError_NilError(t *testing.T) {
	rec := httptest.NewRecorder()
	SafeError(rec, http.StatusInternalServerError, nil)

	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, expected nothing written for nil error", rec.Body.String())
	}
}
