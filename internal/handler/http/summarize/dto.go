package summarize

import (
	"net/http"
	"strconv"

	"analytica-summarizer/internal/domain/entity"
	sumUC "analytica-summarizer/internal/usecase/summary"
)

// Form field defaults for the summarize endpoint. Option values are free
// form; unrecognized ones default silently downstream, so no validation
// happens here.
const (
	defaultTone     = "analytical"
	defaultLength   = "short"
	defaultLanguage = "en"
)

// parseOptions reads the formatting options from the parsed form, applying
// defaults for absent fields. The bullets flag accepts the usual boolean
// spellings; anything unparseable means false.
func parseOptions(r *http.Request) entity.Options {
	opts := entity.Options{
		Tone:     formValueOr(r, "tone", defaultTone),
		Length:   formValueOr(r, "length", defaultLength),
		Language: formValueOr(r, "language", defaultLanguage),
	}
	if b, err := strconv.ParseBool(r.PostFormValue("bullets")); err == nil {
		opts.Bullets = b
	}
	return opts
}

// parseInput collects the optional content sources from the parsed form.
// The text field is captured as a pointer so "absent" and "present but
// empty" stay distinguishable for source labeling.
func parseInput(r *http.Request) (in sumUC.Input, cleanup func()) {
	var closers []interface{ Close() error }
	cleanup = func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}

	if values, ok := r.PostForm["text"]; ok && len(values) > 0 {
		in.Text = &values[0]
	}

	if file, header, err := r.FormFile("file"); err == nil {
		closers = append(closers, file)
		in.File = &sumUC.Upload{Filename: header.Filename, Reader: file}
	}

	if image, header, err := r.FormFile("image"); err == nil {
		closers = append(closers, image)
		in.Image = &sumUC.Upload{Filename: header.Filename, Reader: image}
	}

	return in, cleanup
}

// formValueOr returns the form value for key, or def when absent or empty.
func formValueOr(r *http.Request, key, def string) string {
	if v := r.PostFormValue(key); v != "" {
		return v
	}
	return def
}
