package summary

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"analytica-summarizer/internal/domain/entity"
)

// Upload is an uploaded form part: the filename as sent by the client
// (possibly empty) and a reader over its bytes.
type Upload struct {
	Filename string
	Reader   io.Reader
}

// Input holds the optional content sources of a summarize request.
// Text is nil when the form field was absent entirely, as opposed to
// present but empty.
type Input struct {
	Text  *string
	File  *Upload
	Image *Upload
}

// contentSource is one guarded content source. resolve reports ok=false when
// the source is absent or yields no content, letting the next source in
// priority order take over.
type contentSource struct {
	name    string
	resolve func(in Input) (entity.ResolvedContent, bool, error)
}

// sources are tried in priority order: text > file > image.
var sources = []contentSource{
	{name: "text", resolve: resolveText},
	{name: "file", resolve: resolveFile},
	{name: "image", resolve: resolveImage},
}

// Resolve picks the effective content for a request, returning the first
// source in priority order that yields non-empty text.
// Returns ErrNoContent when no source does, or ErrUnreadableFile when the
// uploaded file's bytes cannot be read.
func Resolve(in Input) (entity.ResolvedContent, error) {
	for _, src := range sources {
		content, ok, err := src.resolve(in)
		if err != nil {
			return entity.ResolvedContent{}, err
		}
		if ok {
			return content, nil
		}
	}
	return entity.ResolvedContent{}, ErrNoContent
}

// resolveText uses the text field verbatim after trimming surrounding
// whitespace. A field that is absent or trims to nothing is skipped.
func resolveText(in Input) (entity.ResolvedContent, bool, error) {
	if in.Text == nil {
		return entity.ResolvedContent{}, false, nil
	}
	trimmed := strings.TrimSpace(*in.Text)
	if trimmed == "" {
		return entity.ResolvedContent{}, false, nil
	}
	return entity.ResolvedContent{
		Text:        trimmed,
		SourceLabel: "text",
		Source:      "text",
	}, true, nil
}

// resolveFile reads the uploaded file and decodes its bytes as UTF-8 text,
// dropping invalid byte sequences. Decoding never fails; only the byte read
// itself can, which surfaces as ErrUnreadableFile.
func resolveFile(in Input) (entity.ResolvedContent, bool, error) {
	if in.File == nil {
		return entity.ResolvedContent{}, false, nil
	}

	raw, err := io.ReadAll(in.File.Reader)
	if err != nil {
		return entity.ResolvedContent{}, false, ErrUnreadableFile
	}

	label := in.File.Filename
	if label == "" {
		label = "uploaded file"
	}

	slog.Debug("decoding uploaded file",
		slog.String("filename", label),
		slog.String("detected_mime", mimetype.Detect(raw).String()),
		slog.Int("bytes", len(raw)))

	text := strings.ToValidUTF8(string(raw), "")
	if text == "" {
		return entity.ResolvedContent{}, false, nil
	}
	return entity.ResolvedContent{
		Text:        text,
		SourceLabel: label,
		Source:      "file",
	}, true, nil
}

// resolveImage does not attempt decoding or OCR; it synthesizes a content
// placeholder naming the image so the pipeline stays uniform downstream.
func resolveImage(in Input) (entity.ResolvedContent, bool, error) {
	if in.Image == nil {
		return entity.ResolvedContent{}, false, nil
	}
	label := in.Image.Filename
	if label == "" {
		label = "uploaded image"
	}
	return entity.ResolvedContent{
		Text:        fmt.Sprintf("[Image: %s]", label),
		SourceLabel: label,
		Source:      "image",
	}, true, nil
}
