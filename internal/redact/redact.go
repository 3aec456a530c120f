// Package redact removes personal information from strings before they are
// logged. A birthday is personal data, so dates and timestamps are redacted
// along with file paths, which usually contain the user's home directory, and
// email addresses.
package redact

import (
	"log/slog"
	"regexp"
)

// Constants for redaction placeholders
const (
	RedactedDatePlaceholder  = "[REDACTED_DATE]"
	RedactedPathPlaceholder  = "[REDACTED_PATH]"
	RedactedEmailPlaceholder = "[REDACTED_EMAIL]"
)

// rule pairs a pattern with its replacement. Rules are applied in order.
type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

var rules = []rule{
	// RFC 3339 timestamps must go before bare dates, which they contain.
	{regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}T[0-9:.]+(?:Z|[+-]\d{2}:\d{2})?`), RedactedDatePlaceholder},
	{regexp.MustCompile(`\b\d{4}-\d{1,2}-\d{1,2}\b`), RedactedDatePlaceholder},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
	{regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\\s]+)+`), RedactedPathPlaceholder},
}

// sensitiveKeys are the log attribute keys whose values pass through String.
var sensitiveKeys = map[string]bool{
	"birthday":   true,
	"error":      true,
	"path":       true,
	"store_path": true,
}

// String redacts personal information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts personal information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

// Attr is a slog.HandlerOptions.ReplaceAttr function that redacts the values
// of the "birthday", "error", "path" and "store_path" attributes. Other
// attributes pass unchanged.
func Attr(_ []string, a slog.Attr) slog.Attr {
	if !sensitiveKeys[a.Key] {
		return a
	}

	switch a.Value.Kind() {
	case slog.KindString:
		return slog.String(a.Key, String(a.Value.String()))
	case slog.KindAny:
		if err, ok := a.Value.Any().(error); ok {
			return slog.String(a.Key, Error(err))
		}
		if s, ok := a.Value.Any().(interface{ String() string }); ok {
			return slog.String(a.Key, String(s.String()))
		}
	}
	return a
}
