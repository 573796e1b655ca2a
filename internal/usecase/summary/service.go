package summary

import (
	"context"
	"log/slog"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"

	"analytica-summarizer/internal/domain/entity"
	"analytica-summarizer/internal/handler/http/requestid"
	"analytica-summarizer/internal/observability/metrics"
	"analytica-summarizer/internal/utils/text"
)

// Service runs the summarize pipeline: content resolution followed by
// deterministic placeholder formatting. The pipeline is a pure function of
// its inputs plus a single upload read, so a Service is safe for concurrent
// use without coordination.
type Service struct{}

// NewService creates a summarize service.
func NewService() *Service {
	return &Service{}
}

// Summarize resolves the effective input source and formats the summary.
//
// Returns ErrNoContent or ErrUnreadableFile when resolution fails; these are
// client errors. No other failure modes exist in this pipeline.
func (s *Service) Summarize(ctx context.Context, in Input, opts entity.Options) (*entity.SummaryResult, error) {
	requestID := s.getOrCreateRequestID(ctx)
	start := time.Now()

	content, err := Resolve(in)
	if err != nil {
		slog.Warn("content resolution failed",
			slog.String("request_id", requestID),
			slog.Any("error", err))
		metrics.RecordSummary("none", "rejected")
		return nil, err
	}

	// Diagnostic only: the language option is caller-controlled and the
	// detected value never affects formatting.
	info := whatlanggo.Detect(content.Text)
	slog.Debug("input language detected",
		slog.String("request_id", requestID),
		slog.String("language", info.Lang.String()),
		slog.Float64("confidence", info.Confidence))

	summaryText := Format(content.Text, opts)

	metrics.RecordSummary(content.Source, "success")
	metrics.ObserveSummaryDuration(time.Since(start))
	metrics.ObserveSummarySize(text.CountRunes(summaryText))

	slog.Info("summary generated",
		slog.String("request_id", requestID),
		slog.String("source", content.Source),
		slog.String("used_input", content.SourceLabel),
		slog.String("tone", opts.Tone),
		slog.String("length", opts.Length),
		slog.String("language", opts.Language),
		slog.Bool("bullets", opts.Bullets),
		slog.Int("input_chars", text.CountRunes(content.Text)),
		slog.Int("summary_chars", text.CountRunes(summaryText)))

	return &entity.SummaryResult{
		Summary:   summaryText,
		Tone:      opts.Tone,
		Length:    opts.Length,
		Language:  opts.Language,
		Bullets:   opts.Bullets,
		UsedInput: content.SourceLabel,
	}, nil
}

// getOrCreateRequestID extracts the request ID from context or creates one,
// so log lines correlate even when the service is called outside the HTTP
// middleware chain.
func (s *Service) getOrCreateRequestID(ctx context.Context) string {
	if id := requestid.FromContext(ctx); id != "" {
		return id
	}
	return uuid.New().String()
}
