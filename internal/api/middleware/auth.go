package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/brandkitai/brandkit/internal/auth"
	"github.com/brandkitai/brandkit/internal/pkg/errors"
	"github.com/brandkitai/brandkit/internal/pkg/utils"
)

// ContextKey is a custom type for context keys
type ContextKey string

// IdentityKey is the context key for the verified caller identity
const IdentityKey ContextKey = "identity"

func tokenFromRequest(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	cookie, err := r.Cookie("accessToken")
	if err == nil {
		return cookie.Value
	}
	return ""
}

// AuthMiddleware returns a middleware that verifies identity tokens and
// stores the explicit identity value in the request context.
func AuthMiddleware(tokenSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := tokenFromRequest(r)
			if tokenStr == "" {
				utils.WriteError(w, errors.Unauthenticated("Missing identity token"))
				return
			}

			claims, err := auth.ParseClaims(tokenStr, tokenSecret)
			if err != nil {
				utils.WriteError(w, errors.Unauthenticated("Invalid or expired identity token"))
				return
			}

			identity := claims.Identity()
			ctx := context.WithValue(r.Context(), IdentityKey, identity)

			AddLogField(w, "subject", identity.Subject)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity extracts the verified identity from the request context
func GetIdentity(r *http.Request) (auth.Identity, bool) {
	identity, ok := r.Context().Value(IdentityKey).(auth.Identity)
	return identity, ok
}
