package summary

import (
	"strings"

	"analytica-summarizer/internal/domain/entity"
	"analytica-summarizer/internal/utils/text"
)

// Length caps in characters for each recognized length option.
var lengthCaps = map[string]int{
	"short":    160,
	"medium":   320,
	"detailed": 480,
}

// Tone prefixes prepended to the summary body.
var tonePrefixes = map[string]string{
	"analytical": "Analytical summary:",
	"executive":  "Executive brief:",
	"neutral":    "Summary:",
	"technical":  "Technical digest:",
}

// Language suffixes appended to the prefix line. The tag does not translate
// anything; it only marks the requested output language.
var languageSuffixes = map[string]string{
	"en": "",
	"es": " (ES)",
	"de": " (DE)",
	"fr": " (FR)",
}

const (
	defaultLengthCap  = 160
	defaultTonePrefix = "Summary:"
	ellipsis          = "…"
)

// Format builds the placeholder summary for the resolved text. The output is
// deterministic: whitespace-collapsed text truncated to the length cap, a
// tone prefix line with an optional language tag, and an optional 3-line
// bulleted body. This is the seam where a generative backend would plug in.
func Format(text string, opts entity.Options) string {
	base := collapseWhitespace(text)
	truncated := truncate(base, lengthCap(opts.Length))

	body := truncated
	if opts.Bullets {
		body = bulletBody(truncated)
	}

	return tonePrefix(opts.Tone) + languageSuffix(opts.Language) + "\n" + body
}

// collapseWhitespace folds every run of whitespace, newlines included, into
// a single space and trims the ends.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// lengthCap looks up the character cap for a length option,
// case-insensitively. Unrecognized values fall back to the short cap.
func lengthCap(length string) int {
	if limit, ok := lengthCaps[strings.ToLower(length)]; ok {
		return limit
	}
	return defaultLengthCap
}

// truncate cuts s to limit characters. Truncated text keeps limit-1
// characters plus a single ellipsis, so the result is exactly limit
// characters long; text within the cap is returned unmodified.
func truncate(s string, limit int) string {
	if text.CountRunes(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit-1]) + ellipsis
}

// tonePrefix looks up the prefix for a tone, case-insensitively, defaulting
// to the neutral prefix for unrecognized tones.
func tonePrefix(tone string) string {
	if prefix, ok := tonePrefixes[strings.ToLower(tone)]; ok {
		return prefix
	}
	return defaultTonePrefix
}

// languageSuffix looks up the language tag, case-insensitively. Languages
// outside the fixed set get no tag.
func languageSuffix(language string) string {
	return languageSuffixes[strings.ToLower(language)]
}

// bulletBody renders the truncated text as three bullet lines. The first
// bullet quotes the text up to the first period (or all of it when that
// segment is empty); the remaining two lines are fixed placeholders and stay
// that way until a content-aware backend replaces this formatter.
func bulletBody(truncated string) string {
	first := strings.Split(truncated, ".")[0]
	if first == "" {
		first = truncated
	}
	first = strings.TrimSpace(first)

	return "• Key point 1: " + first + "\n" +
		"• Key point 2: Impact and implications.\n" +
		"• Next steps: Actions to take."
}
