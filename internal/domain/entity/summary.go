// Package entity defines the core domain types for the summarizer service:
// formatting options, resolved request content, and the summary result.
package entity

// Options carries the formatting options of a summarize request.
// Tone, Length, and Language are free-form strings; unrecognized values fall
// back to fixed defaults during formatting instead of failing.
type Options struct {
	Tone     string
	Length   string
	Language string
	Bullets  bool
}

// ResolvedContent is the single text body chosen from a request's
// text/file/image fields, by priority order text > file > image.
// It is computed once per request and discarded after the response is built.
type ResolvedContent struct {
	// Text is the effective input text for formatting.
	Text string
	// SourceLabel identifies the origin for the caller: the upload filename,
	// "uploaded file"/"uploaded image" for unnamed uploads, or "text".
	SourceLabel string
	// Source is the kind of source that produced the content
	// ("text", "file", or "image"). Used for logging and metrics only.
	Source string
}

// SummaryResult is the immutable outcome of the summarize pipeline.
// It is serialized directly as the response body.
type SummaryResult struct {
	Summary   string `json:"summary"`
	Tone      string `json:"tone"`
	Length    string `json:"length"`
	Language  string `json:"language"`
	Bullets   bool   `json:"bullets"`
	UsedInput string `json:"used_input"`
}
