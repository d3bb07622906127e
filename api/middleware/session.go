package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/velora-shop/storefront-backend/pkg/logger"
)

const sessionIDHeader = "X-Session-Id"

// Session resolves the cart session id from the request header, minting a
// fresh one when absent. The id is echoed on the response so the client can
// persist it for subsequent requests.
func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(sessionIDHeader)
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			w.Header().Set(sessionIDHeader, sessionID)

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
