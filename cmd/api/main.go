package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "analytica-summarizer/docs" // swagger docs

	"analytica-summarizer/internal/infra/db"
	"analytica-summarizer/pkg/config"

	hhttp "analytica-summarizer/internal/handler/http"
	"analytica-summarizer/internal/handler/http/middleware"
	"analytica-summarizer/internal/handler/http/requestid"
	hsummarize "analytica-summarizer/internal/handler/http/summarize"
	sumUC "analytica-summarizer/internal/usecase/summary"
)

// @title           Analytica Summarizer API
// @version         1.0.0
// @description     Accepts text, a file, or an image plus formatting options and returns a structured summary.

// @host      localhost:8000
// @BasePath  /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description API key header. Parsed for forward compatibility; not currently enforced.

func main() {
	_ = godotenv.Load()

	logger := initLogger()
	cfg := config.LoadServerConfig()

	database := initDatabase(logger)
	if database != nil {
		defer func() {
			if err := database.Close(); err != nil {
				logger.Error("failed to close database", slog.Any("error", err))
			}
		}()
	}

	version := getVersion()
	handler := setupServer(logger, cfg, database, version)

	runServer(logger, cfg, handler, version)
}

// initLogger initializes and returns a structured logger based on
// environment configuration.
func initLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the optional database pool. A missing DATABASE_URL is
// fine; the service runs without a database and the diagnostics endpoints
// report it as not configured.
func initDatabase(logger *slog.Logger) *sql.DB {
	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if database == nil {
		logger.Info("no DATABASE_URL set, running without database")
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer configures the HTTP handler with all routes and middleware.
func setupServer(logger *slog.Logger, cfg config.ServerConfig, database *sql.DB, version string) http.Handler {
	svc := sumUC.NewService()

	var limiter *hhttp.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = hhttp.NewRateLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Window)
		logger.Info("rate limiting enabled",
			slog.Int("limit", cfg.RateLimit.Limit),
			slog.Duration("window", cfg.RateLimit.Window))
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	mux := http.NewServeMux()
	mux.Handle("GET /{$}", hhttp.RootHandler{})
	mux.Handle("GET /api/hello", hhttp.HelloHandler{})
	mux.Handle("GET /test", &hhttp.DiagHandler{DB: database})
	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)
	hsummarize.Register(mux, svc, limiter)

	return applyMiddleware(logger, cfg, mux)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): CORS → Request ID → Recovery → Logging →
// Body Limit → Metrics. Rate limiting is applied per route during
// registration.
func applyMiddleware(logger *slog.Logger, cfg config.ServerConfig, handler http.Handler) http.Handler {
	corsConfig := middleware.LoadCORSConfig()
	corsConfig.Logger = logger

	logger.Info("CORS enabled",
		slog.Any("allowed_origins", corsConfig.AllowedOrigins),
		slog.Any("allowed_methods", corsConfig.AllowedMethods),
		slog.Any("allowed_headers", corsConfig.AllowedHeaders),
		slog.Int("max_age", corsConfig.MaxAge))

	// Applied in reverse order (innermost to outermost).
	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(cfg.MaxBodyBytes)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(*corsConfig)(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, cfg config.ServerConfig, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
