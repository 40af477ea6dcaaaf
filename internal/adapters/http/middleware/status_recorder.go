package middleware

import "net/http"

// statusRecorder remembers the status line and body size sent through it so
// that recovery, tracing and access logging can report on the response.
type statusRecorder struct {
	http.ResponseWriter
	code    int
	started bool
	size    int64
}

func recordStatus(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, code: http.StatusOK}
}

// WriteHeader forwards the first status line only.
func (sr *statusRecorder) WriteHeader(code int) {
	if sr.started {
		return
	}
	sr.code = code
	sr.started = true
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	sr.started = true
	n, err := sr.ResponseWriter.Write(b)
	sr.size += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}

// serverError reports whether the response is a 5xx.
func (sr *statusRecorder) serverError() bool {
	return sr.code >= http.StatusInternalServerError
}
