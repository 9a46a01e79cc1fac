package transport

import (
	"crypto/subtle"
	"net/http"

	"github.com/GustavoWillian7/ecommerce-engine/utils/logger"
	"go.uber.org/zap"
)

// InternalMiddleware guards the carrier-facing lifecycle endpoints with a
// static bearer key shared with internal services.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	expected := []byte("Bearer " + apiKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := []byte(r.Header.Get("Authorization"))
			if subtle.ConstantTimeCompare(presented, expected) != 1 {
				logger.Warn(
					"internal endpoint rejected",
					zap.String("path", r.URL.Path),
					zap.String("caller", r.Header.Get("X-Internal-Service")),
				)
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
