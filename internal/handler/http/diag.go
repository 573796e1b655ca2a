package http

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"analytica-summarizer/internal/handler/http/respond"
)

// DiagHandler reports environment configuration and optional database
// reachability for quick deployment checks. The database is an optional
// collaborator: an absent pool is reported as not configured, never as a
// failure, and the endpoint always answers 200.
type DiagHandler struct {
	DB *sql.DB
}

// ServeHTTP 環境診断
// @Summary      Environment diagnostics
// @Description  Reports backend status, database configuration, and reachability.
// @Tags         diagnostics
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /test [get]
func (h *DiagHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response := map[string]any{
		"backend":           "running",
		"database":          "not configured",
		"database_url":      envStatus("DATABASE_URL"),
		"database_name":     envStatus("DATABASE_NAME"),
		"connection_status": "n/a",
		"tables":            []string{},
	}

	if h.DB != nil {
		if err := h.DB.PingContext(ctx); err != nil {
			response["database"] = "configured but unreachable"
		} else {
			response["database"] = "available"
			response["connection_status"] = "connected"
			if tables, err := h.listTables(ctx); err == nil {
				response["tables"] = tables
			}
		}
	}

	respond.JSON(w, http.StatusOK, response)
}

// listTables returns up to 10 public table names as a connectivity sample.
func (h *DiagHandler) listTables(ctx context.Context) ([]string, error) {
	rows, err := h.DB.QueryContext(ctx,
		`SELECT tablename FROM pg_catalog.pg_tables WHERE schemaname = 'public' ORDER BY tablename LIMIT 10`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	tables := make([]string, 0, 10)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// envStatus reports whether an environment variable is set, without echoing
// its value.
func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}
	return "not set"
}
