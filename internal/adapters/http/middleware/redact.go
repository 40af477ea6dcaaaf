package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-todo-web/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders renders request headers as log attributes sorted by name.
// Values of logging.SensitiveHeaders, such as Cookie which carries the
// flash message, are masked; repeated values are comma-joined.
func RedactHeaders(headers http.Header) []slog.Attr {
	names := slices.Sorted(maps.Keys(headers))

	attrs := make([]slog.Attr, len(names))
	for i, name := range names {
		value := redacted
		if !logging.SensitiveHeaders[strings.ToLower(name)] {
			value = strings.Join(headers[name], ",")
		}
		attrs[i] = slog.String(name, value)
	}
	return attrs
}
