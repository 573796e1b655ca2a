package metrics

import "time"

// RecordSummary records the outcome of a summarize operation.
// Source is the input source kind ("text", "file", "image", or "none" when
// resolution failed); status is "success" or "rejected".
func RecordSummary(source, status string) {
	SummariesTotal.WithLabelValues(source, status).Inc()
}

// ObserveSummaryDuration records the time taken by the summarize pipeline.
func ObserveSummaryDuration(duration time.Duration) {
	SummaryDuration.Observe(duration.Seconds())
}

// ObserveSummarySize records the produced summary length in characters.
func ObserveSummarySize(chars int) {
	SummarySize.Observe(float64(chars))
}
