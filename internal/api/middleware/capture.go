package middleware

import "net/http"

// statusWriter captures the status code and body size of a response.
// Shared by the logging, metrics, and tracing middleware.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func capture(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w, status: http.StatusOK}
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	n, err := sw.ResponseWriter.Write(b)
	sw.bytes += int64(n)
	return n, err
}
