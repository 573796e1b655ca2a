package summary

import "errors"

// Sentinel errors for the summarize pipeline. Both are client errors:
// handlers surface them as 400 responses. Unrecognized tone/length/language
// values are not errors; they default silently during formatting.
var (
	// ErrNoContent is returned when no text, file, or image yields usable content.
	ErrNoContent = errors.New("no input provided: submit text, a file, or an image")

	// ErrUnreadableFile is returned when the uploaded file's bytes cannot be
	// read. A file that reads fine but contains invalid UTF-8 is not an
	// error; it is decoded leniently instead.
	ErrUnreadableFile = errors.New("could not read uploaded file as text")
)
