// Package summarize provides the HTTP handler for the summarize endpoint.
// It parses multipart form requests and delegates to the summary usecase.
package summarize

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"analytica-summarizer/internal/handler/http/requestid"
	"analytica-summarizer/internal/handler/http/respond"
	sumUC "analytica-summarizer/internal/usecase/summary"
)

// maxMultipartMemory is the in-memory buffer for multipart parsing; larger
// uploads spill to temporary files. The total body size is capped by the
// LimitRequestBody middleware, not here.
const maxMultipartMemory = 4 << 20

// Handler handles POST /summarize requests.
type Handler struct {
	Svc *sumUC.Service
}

// ServeHTTP 要約作成
// @Summary      Summarize content
// @Description  Accepts multipart form data with text, a file, or an image plus formatting options and returns a structured summary.
// @Tags         summarize
// @Accept       mpfd
// @Produce      json
// @Param        tone     formData string false "Summary tone"     default(analytical)
// @Param        length   formData string false "Summary length"   default(short)
// @Param        language formData string false "Summary language" default(en)
// @Param        bullets  formData bool   false "Bulleted body"    default(false)
// @Param        text     formData string false "Raw text to summarize"
// @Param        file     formData file   false "Text file to summarize"
// @Param        image    formData file   false "Image to acknowledge"
// @Success      200 {object} entity.SummaryResult
// @Failure      400 {string} string "No usable content or unreadable file"
// @Router       /summarize [post]
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Parsed for forward compatibility; requests are not authenticated.
	if parseAPIKey(r) != "" {
		slog.Debug("api key supplied",
			slog.String("request_id", requestid.FromContext(r.Context())))
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		respond.Error(w, http.StatusBadRequest, fmt.Errorf("invalid form data: %v", err))
		return
	}

	opts := parseOptions(r)
	in, cleanup := parseInput(r)
	defer cleanup()

	result, err := h.Svc.Summarize(r.Context(), in, opts)
	if err != nil {
		if errors.Is(err, sumUC.ErrNoContent) || errors.Is(err, sumUC.ErrUnreadableFile) {
			respond.Error(w, http.StatusBadRequest, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, result)
}
