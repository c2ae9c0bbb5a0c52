package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mindease/mindease/backend/internal/auth"
	"github.com/mindease/mindease/backend/pkg/utils"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// UserID returns the authenticated user id stored by RequireAuth.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// RequireAuth extracts the bearer token, verifies it and injects the user id
// into the request context. Verification failures produce the 401 envelope
// the frontend keys its login redirect on.
func RequireAuth(verifier auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))

			userID, err := verifier.Verify(r.Context(), token)
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, "Authentication required", "Valid identity token is required")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(header string) string {
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
