package middleware

import (
	"analytica-summarizer/pkg/config"
)

// Environment variables and defaults for CORS configuration. The default is
// a permissive wildcard because the service is designed to sit behind a UI
// served from arbitrary hosts during development.
const (
	envCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"
	envCORSAllowedMethods = "CORS_ALLOWED_METHODS"
	envCORSAllowedHeaders = "CORS_ALLOWED_HEADERS"
	envCORSMaxAge         = "CORS_MAX_AGE"

	defaultCORSMaxAge = 86400
)

var (
	defaultAllowedOrigins = []string{"*"}
	defaultAllowedMethods = []string{"GET", "POST", "OPTIONS"}
	defaultAllowedHeaders = []string{"Content-Type", "Authorization", "X-API-Key", "X-Request-ID"}
)

// LoadCORSConfig loads CORS configuration from environment variables,
// falling back to the permissive defaults above. The Logger field is left
// nil for the caller to inject.
func LoadCORSConfig() *CORSConfig {
	origins := config.GetEnvStringList(envCORSAllowedOrigins, defaultAllowedOrigins)

	return &CORSConfig{
		AllowedOrigins:   origins,
		AllowedMethods:   config.GetEnvStringList(envCORSAllowedMethods, defaultAllowedMethods),
		AllowedHeaders:   config.GetEnvStringList(envCORSAllowedHeaders, defaultAllowedHeaders),
		AllowCredentials: true,
		MaxAge:           config.GetEnvInt(envCORSMaxAge, defaultCORSMaxAge),
		Validator:        NewWhitelistValidator(origins),
	}
}
