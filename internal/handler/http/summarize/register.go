package summarize

import (
	"net/http"

	hhttp "analytica-summarizer/internal/handler/http"
	sumUC "analytica-summarizer/internal/usecase/summary"
)

// Register registers the summarize endpoint with the given mux.
// When limiter is non-nil, the endpoint is rate limited per client IP.
func Register(mux *http.ServeMux, svc *sumUC.Service, limiter *hhttp.RateLimiter) {
	var handler http.Handler = Handler{Svc: svc}
	if limiter != nil {
		handler = limiter.Limit(handler)
	}
	mux.Handle("POST /summarize", handler)
}
