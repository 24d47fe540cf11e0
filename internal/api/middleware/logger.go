package middleware

import (
	"net/http"
	"time"

	"github.com/brandkitai/brandkit/internal/pkg/logger"
)

// responseWriter wraps http.ResponseWriter to capture status code and let
// handlers attach structured log fields for the request-complete entry.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	fields     map[string]interface{}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) addField(key string, value interface{}) {
	if rw.fields == nil {
		rw.fields = make(map[string]interface{})
	}
	rw.fields[key] = value
}

// AddLogField attaches a field to the request log line written when the
// request completes. No-op when the writer is not wrapped.
func AddLogField(w http.ResponseWriter, key string, value interface{}) {
	if rw, ok := w.(*responseWriter); ok {
		rw.addField(key, value)
	}
}

// Logger logs each request with method, path, status and latency
func Logger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			fields := map[string]interface{}{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     rw.statusCode,
				"duration":   time.Since(start).String(),
				"request_id": GetRequestID(r),
				"remote":     r.RemoteAddr,
			}
			for k, v := range rw.fields {
				fields[k] = v
			}

			entry := log.WithFields(fields)
			switch {
			case rw.statusCode >= 500:
				entry.Error("request completed")
			case rw.statusCode >= 400:
				entry.Warn("request completed")
			default:
				entry.Info("request completed")
			}
		})
	}
}
