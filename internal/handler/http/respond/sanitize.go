package respond

import (
	"regexp"
)

var (
	// Bearer tokens and API keys forwarded by clients.
	bearerTokenPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9._~+/=-]+`)
	apiKeyPattern      = regexp.MustCompile(`(?i)(x-api-key[:=]\s*)\S+`)

	// Database passwords inside DSNs.
	dbPasswordPattern = regexp.MustCompile(`://([^:/@]+):([^@]+)@`)
)

// SanitizeError returns the error message with credentials masked so it can
// be logged without leaking tokens or DSN passwords.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = bearerTokenPattern.ReplaceAllString(msg, "Bearer ****")
	msg = apiKeyPattern.ReplaceAllString(msg, "${1}****")
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")

	return msg
}
