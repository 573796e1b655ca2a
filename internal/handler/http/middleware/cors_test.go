package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func corsHandler(config CORSConfig) http.Handler {
	return CORS(config)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))
}

func testConfig(origins []string) CORSConfig {
	return CORSConfig{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-API-Key"},
		AllowCredentials: true,
		MaxAge:           86400,
		Validator:        NewWhitelistValidator(origins),
	}
}

func TestCORS_SameOriginRequest(t *testing.T) {
	handler := corsHandler(testConfig([]string{"https://app.example.com"}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, expected 200", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("no CORS headers expected without an Origin header")
	}
}

func TestCORS_AllowedOrigin(t *testing.T) {
	handler := corsHandler(testConfig([]string{"https://app.example.com"}))

	req := httptest.NewRequest(http.MethodPost, "/summarize", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, expected 200", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("Allow-Origin = %q, expected the origin echoed back", got)
	}
	if rec.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Error("Allow-Credentials not set")
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	handler := corsHandler(testConfig([]string{"https://app.example.com"}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// The handler still runs; the browser enforces the missing headers.
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, expected 200", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("CORS headers must not be set for disallowed origins")
	}
}

func TestCORS_Preflight(t *testing.T) {
	handler := corsHandler(testConfig([]string{"https://app.example.com"}))

	req := httptest.NewRequest(http.MethodOptions, "/summarize", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, expected 204", rec.Code)
	}
	if rec.Body.String() != "" {
		t.Errorf("preflight body = %q, expected empty (next handler must not run)", rec.Body.String())
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST, OPTIONS" {
		t.Errorf("Allow-Methods = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type, X-API-Key" {
		t.Errorf("Allow-Headers = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Max-Age"); got != "86400" {
		t.Errorf("Max-Age = %q, expected 86400", got)
	}
}

func TestCORS_WildcardEchoesOrigin(t *testing.T) {
	handler := corsHandler(testConfig([]string{"*"}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://anything.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://anything.example.com" {
		t.Errorf("Allow-Origin = %q, expected the origin echoed, not *", got)
	}
}

func TestWhitelistValidator(t *testing.T) {
	tests := []struct {
		name     string
		origins  []string
		origin   string
		expected bool
	}{
		{"listed origin", []string{"https://a.test", "https://b.test"}, "https://b.test", true},
		{"unlisted origin", []string{"https://a.test"}, "https://b.test", false},
		{"wildcard allows all", []string{"*"}, "https://anywhere.test", true},
		{"wildcard mixed with explicit", []string{"https://a.test", "*"}, "https://b.test", true},
		{"empty whitelist", []string{}, "https://a.test", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewWhitelistValidator(tt.origins)
			if got := v.IsAllowed(tt.origin); got != tt.expected {
				t.Errorf("IsAllowed(%q) = %v, expected %v", tt.origin, got, tt.expected)
			}
		})
	}
}

func TestLoadCORSConfig_Defaults(t *testing.T) {
	t.Setenv(envCORSAllowedOrigins, "")
	t.Setenv(envCORSMaxAge, "")

	cfg := LoadCORSConfig()

	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("AllowedOrigins = %v, expected wildcard default", cfg.AllowedOrigins)
	}
	if !cfg.AllowCredentials {
		t.Error("AllowCredentials should default to true")
	}
	if cfg.MaxAge != defaultCORSMaxAge {
		t.Errorf("MaxAge = %d, expected %d", cfg.MaxAge, defaultCORSMaxAge)
	}
	if cfg.Validator == nil {
		t.Fatal("Validator not set")
	}
	if !cfg.Validator.IsAllowed("https://anywhere.test") {
		t.Error("default validator should allow any origin")
	}
}

func TestLoadCORSConfig_FromEnv(t *testing.T) {
	t.Setenv(envCORSAllowedOrigins, "https://a.test, https://b.test")
	t.Setenv(envCORSMaxAge, "600")

	cfg := LoadCORSConfig()

	if len(cfg.AllowedOrigins) != 2 {
		t.Fatalf("AllowedOrigins = %v, expected 2 entries", cfg.AllowedOrigins)
	}
	if cfg.MaxAge != 600 {
		t.Errorf("MaxAge = %d, expected 600", cfg.MaxAge)
	}
	if !cfg.Validator.IsAllowed("https://a.test") || cfg.Validator.IsAllowed("https://c.test") {
		t.Error("validator does not reflect the configured whitelist")
	}
}
