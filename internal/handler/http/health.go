package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"analytica-summarizer/internal/handler/http/respond"
)

// HealthResponse represents the JSON response for the health endpoint.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthHandler handles health check requests. The summarize pipeline holds
// no state and the database is optional, so the service reports healthy
// whenever it can respond; database reachability is informational.
type HealthHandler struct {
	DB      *sql.DB
	Version string
}

// ServeHTTP ヘルスチェック
// @Summary      Health check
// @Description  Reports service health and optional database reachability.
// @Tags         diagnostics
// @Produce      json
// @Success      200 {object} HealthResponse
// @Router       /health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]CheckStatus{
		"database": h.checkDatabase(ctx),
	}

	respond.JSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

// checkDatabase pings the optional pool. "not configured" and "degraded"
// are informational states, not failures.
func (h *HealthHandler) checkDatabase(ctx context.Context) CheckStatus {
	if h.DB == nil {
		return CheckStatus{Status: "healthy", Message: "not configured"}
	}
	if err := h.DB.PingContext(ctx); err != nil {
		return CheckStatus{Status: "degraded", Message: err.Error()}
	}
	return CheckStatus{Status: "healthy"}
}
