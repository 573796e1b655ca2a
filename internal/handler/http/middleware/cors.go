// Package middleware provides HTTP middleware shared across handler
// packages, currently CORS handling for browser clients.
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

// OriginValidator decides whether a request origin may use CORS.
type OriginValidator interface {
	IsAllowed(origin string) bool
}

// WhitelistValidator allows a fixed set of origins. A whitelist containing
// "*" allows every origin, which is the service's permissive default.
type WhitelistValidator struct {
	allowAll bool
	origins  map[string]struct{}
}

// NewWhitelistValidator builds a validator from a list of origins.
func NewWhitelistValidator(origins []string) *WhitelistValidator {
	v := &WhitelistValidator{origins: make(map[string]struct{}, len(origins))}
	for _, origin := range origins {
		if origin == "*" {
			v.allowAll = true
			continue
		}
		v.origins[origin] = struct{}{}
	}
	return v
}

// IsAllowed reports whether the origin passes the whitelist.
func (v *WhitelistValidator) IsAllowed(origin string) bool {
	if v.allowAll {
		return true
	}
	_, ok := v.origins[origin]
	return ok
}

// CORSConfig holds the configuration for the CORS middleware.
type CORSConfig struct {
	// AllowedOrigins is the configured whitelist, kept for logging.
	AllowedOrigins []string

	// AllowedMethods are the HTTP methods permitted in CORS requests.
	AllowedMethods []string

	// AllowedHeaders are the request headers permitted in CORS requests.
	AllowedHeaders []string

	// AllowCredentials indicates whether credentialed requests are
	// supported. Allowed origins are echoed back rather than "*" so this
	// can stay true.
	AllowCredentials bool

	// MaxAge is how long preflight results may be cached, in seconds.
	MaxAge int

	// Validator is the origin validation strategy.
	Validator OriginValidator

	// Logger receives CORS policy decisions. May be nil.
	Logger *slog.Logger
}

// CORS returns middleware that handles cross-origin requests.
//
// Behavior:
//   - Empty Origin header: same-origin request, skip CORS processing.
//   - Origin not allowed: log and continue without CORS headers; the
//     browser blocks the response.
//   - Allowed preflight (OPTIONS): set preflight headers, reply 204 without
//     calling the next handler.
//   - Allowed actual request: set CORS headers and pass through.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !config.Validator.IsAllowed(origin) {
				if config.Logger != nil {
					config.Logger.Warn("CORS: origin not allowed",
						slog.String("origin", origin),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method))
				}
				next.ServeHTTP(w, r)
				return
			}

			// Echo the request origin; required for credentialed requests.
			w.Header().Set("Access-Control-Allow-Origin", origin)
			if config.AllowCredentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(config.AllowedHeaders, ", "))
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
