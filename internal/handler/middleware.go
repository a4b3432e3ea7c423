package handlers

import (
	"context"
	"net/http"

	"github.com/Mohsin1016/post-blog-test/internal/service"
)

// TokenCookie names the HTTP-only cookie carrying the session token.
const TokenCookie = "token"

type contextKey string

const identityKey contextKey = "identity"

// Authenticated wraps a handler so it only runs with a verified session.
// The identity from the token lands in the request context.
func (h *Handlers) Authenticated(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(TokenCookie)
		if err != nil || cookie.Value == "" {
			WriteError(w, "no token provided", http.StatusUnauthorized)
			return
		}

		claims, err := h.AuthService.ParseToken(cookie.Value)
		if err != nil {
			WriteError(w, "invalid token", http.StatusUnauthorized)
			return
		}

		identity := service.Identity{
			UserID:   claims.UserID,
			Username: claims.Username,
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next(w, r.WithContext(ctx))
	}
}

func IdentityFromContext(ctx context.Context) (service.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(service.Identity)
	return identity, ok
}
