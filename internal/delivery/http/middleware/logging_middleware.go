package middleware

import (
	"net/http"
	"time"

	"citamed-backend/internal/metrics"

	"github.com/sirupsen/logrus"
)

// statusRecorder wraps http.ResponseWriter to capture the status code
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (sr *statusRecorder) WriteHeader(code int) {
	if !sr.written {
		sr.statusCode = code
		sr.written = true
	}
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if !sr.written {
		sr.statusCode = http.StatusOK
		sr.written = true
	}
	return sr.ResponseWriter.Write(b)
}

type LoggingMiddleware struct {
	log       *logrus.Logger
	collector *metrics.Collector
}

func NewLoggingMiddleware(log *logrus.Logger, collector *metrics.Collector) *LoggingMiddleware {
	return &LoggingMiddleware{log: log, collector: collector}
}

// Handle logs every request as a structured entry and records it in the
// Prometheus collector.
func (m *LoggingMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)

		duration := time.Since(start)
		m.collector.RecordRequest(r.Method, r.URL.Path, rec.statusCode, duration)

		m.log.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rec.statusCode,
			"duration_ms": float64(duration.Nanoseconds()) / float64(time.Millisecond),
		}).Info("request completed")
	})
}
