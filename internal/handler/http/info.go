// Package http provides HTTP handlers and middleware for the summarizer
// service: informational endpoints, diagnostics, metrics collection, and
// request middleware.
package http

import (
	"net/http"

	"analytica-summarizer/internal/handler/http/respond"
)

// RootHandler serves the service banner with the list of primary endpoints.
type RootHandler struct{}

// ServeHTTP サービス情報
// @Summary      Service info
// @Description  Returns a greeting and the list of primary endpoints.
// @Tags         info
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       / [get]
func (RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]any{
		"message":   "Hello from the Analytica backend!",
		"endpoints": []string{"/summarize", "/test"},
	})
}

// HelloHandler serves a static greeting used by UI connectivity checks.
type HelloHandler struct{}

// ServeHTTP 挨拶
// @Summary      Hello
// @Description  Static greeting for frontend connectivity checks.
// @Tags         info
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /api/hello [get]
func (HelloHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{
		"message": "Hello from the backend API!",
	})
}
