package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header, verifies it with
// the configured token issuer and stores the token subject in the request
// context under [utils.UserIDCtxKey] before delegating to the next handler.
//
// Requests are rejected with HTTP 401 when the header is absent or malformed,
// or when the token is expired or otherwise invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Msg("malformed authorization header")
			writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		token, err := h.services.TokenIssuer.Parse(tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		log.Debug().Str("user_id", token.UserID).Msg("request authenticated")

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, token.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
