package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

type recoveredErrorResponse struct {
	Error     string `json:"error"`
	Timestamp int64  `json:"timestamp"`
}

// Recover creates middleware that converts a handler panic into an opaque
// 500 response instead of tearing down the connection. No internal state is
// leaked to the caller.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic while handling request",
						"method", r.Method,
						"path", r.URL.Path,
						"panic", rec,
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(recoveredErrorResponse{
						Error:     "Internal server error",
						Timestamp: time.Now().UnixMilli(),
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
