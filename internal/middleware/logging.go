package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

var logger = zap.NewNop().Sugar()

// SetLogger передаёт логгер в пакет middleware.
func SetLogger(l *zap.SugaredLogger) {
	logger = l
}

// responseData накапливает статус и размер ответа для лога.
type responseData struct {
	status int
	size   int
}

type loggingResponseWriter struct {
	http.ResponseWriter
	responseData *responseData
}

func (w *loggingResponseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.responseData.size += n
	return n, err
}

func (w *loggingResponseWriter) WriteHeader(statusCode int) {
	w.ResponseWriter.WriteHeader(statusCode)
	w.responseData.status = statusCode
}

// WithLogging логирует каждый запрос: метод, URI, статус, размер, длительность.
func WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rd := &responseData{status: http.StatusOK}
		lw := &loggingResponseWriter{ResponseWriter: w, responseData: rd}

		next.ServeHTTP(lw, r)

		logger.Infow("request",
			"method", r.Method,
			"uri", r.RequestURI,
			"status", rd.status,
			"size", rd.size,
			"duration", time.Since(start),
		)
	})
}
