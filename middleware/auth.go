package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/a48zhang/AIditor/pkg/logger"
	"github.com/a48zhang/AIditor/pkg/response"
)

const (
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery carries the key on WebSocket handshakes, where browsers cannot set headers.
	APIKeyQuery = "api_key"

	unauthorizedMessage = "Unauthorized - Invalid or missing API key"
)

// AuthMiddleware rejects every request except the root health check unless it
// presents the configured API key.
func AuthMiddleware(apiKey string, wsPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/" {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(APIKeyHeader)
			if provided == "" && r.URL.Path == wsPath {
				provided = r.URL.Query().Get(APIKeyQuery)
			}

			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				logger.Sugar.Warnf("Rejected %s %s: invalid or missing API key", r.Method, r.URL.Path)
				response.Fail(w, http.StatusUnauthorized, unauthorizedMessage)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
