package config

import (
	"time"
)

// ServerConfig holds HTTP server settings loaded from the environment.
type ServerConfig struct {
	// Port is the TCP port the server listens on. Default: 8000.
	Port int

	// MaxBodyBytes caps request body size, uploads included. Default: 10MB.
	MaxBodyBytes int64

	// ReadHeaderTimeout guards against slow-header clients. Default: 10s.
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown. Default: 5s.
	ShutdownTimeout time.Duration

	// RateLimit configures the summarize endpoint's per-IP limiter.
	RateLimit RateLimitConfig
}

// RateLimitConfig holds sliding-window rate limit settings for the
// summarize endpoint.
type RateLimitConfig struct {
	// Enabled toggles rate limiting. Default: true.
	Enabled bool

	// Limit is the maximum number of requests per window. Default: 60.
	Limit int

	// Window is the sliding window duration. Default: 1m.
	Window time.Duration
}

// LoadServerConfig loads the server configuration from environment
// variables, falling back to the documented defaults.
func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Port:              GetEnvInt("PORT", 8000),
		MaxBodyBytes:      int64(GetEnvInt("MAX_BODY_BYTES", 10<<20)),
		ReadHeaderTimeout: GetEnvDuration("READ_HEADER_TIMEOUT", 10*time.Second),
		ShutdownTimeout:   GetEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		RateLimit: RateLimitConfig{
			Enabled: GetEnvBool("RATELIMIT_ENABLED", true),
			Limit:   GetEnvInt("RATELIMIT_LIMIT", 60),
			Window:  GetEnvDuration("RATELIMIT_WINDOW", time.Minute),
		},
	}
}
