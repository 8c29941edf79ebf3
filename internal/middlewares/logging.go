package middlewares

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sulochan19/image-conversion-api/internal/logger"
	"go.uber.org/zap"
)

// LoggingMiddleware assigns each request a uuid, exposes it through the
// X-Request-ID response header and the request context, and writes one summary
// line per completed request. Downstream code picks the id up through
// logger.FromContext so its lines carry the same request_id field.
func LoggingMiddleware(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := uuid.NewString()
			start := time.Now()

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			r = r.WithContext(logger.ContextWithRequestID(r.Context(), reqID))
			w.Header().Set("X-Request-ID", reqID)

			next.ServeHTTP(rw, r)

			log.Infow("request completed",
				"request_id", reqID,
				"method", r.Method,
				"uri", r.RequestURI,
				"remote_addr", r.RemoteAddr,
				"status", rw.statusCode,
				"duration", time.Since(start),
				"size_bytes", rw.size,
			)
		})
	}
}

// responseWriter records the status code and body size written by the handler chain.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}
