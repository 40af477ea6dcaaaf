package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lowercase HTTP header names whose values never reach
// the logs. The request logging middleware consults it when dumping headers,
// and the handler-level redaction below matches the same names as attribute
// keys.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"cookie":              true,
	"set-cookie":          true,
}

// sensitiveKeys are attribute names redacted wherever they appear.
var sensitiveKeys = []string{"password", "secret", "token", "dsn"}

// sensitiveKeyPrefixes catch variants such as secret_key or api_key_v2.
var sensitiveKeyPrefixes = []string{"secret_", "api_key"}

// sensitiveValues match credentials embedded in otherwise harmless values.
// JWT segments need at least 10 characters so version strings survive.
var sensitiveValues = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
}

// redactAttr builds the slog ReplaceAttr hook. Matching values are replaced
// with masq's "[REDACTED]" marker.
func redactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0,
		len(SensitiveHeaders)+len(sensitiveKeys)+len(sensitiveKeyPrefixes)+len(sensitiveValues))

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, key := range sensitiveKeys {
		opts = append(opts, masq.WithFieldName(key))
	}
	for _, prefix := range sensitiveKeyPrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}

	return masq.New(opts...)
}
