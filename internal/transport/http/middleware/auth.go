package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/varis/taskboard/internal/application/auth"
	"github.com/varis/taskboard/internal/domain"
)

type TokenVerifier interface {
	VerifyAccessToken(token string) (auth.TokenClaims, error)
}

// UserReader resolves the token subject against the store on every request,
// so a deleted user's token stops working immediately.
type UserReader interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
}

type WriteErrFunc func(http.ResponseWriter, *http.Request, error)

// Auth verifies the Authorization header, resolves the user, and injects
// the sanitized identity into the request context. The header carries the
// raw token; a "Bearer " prefix is tolerated and stripped.
func Auth(verifier TokenVerifier, users UserReader, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				writeErr(w, r, domain.ErrTokenMissing())
				return
			}
			if len(raw) > 7 && strings.EqualFold(raw[:7], "Bearer ") {
				raw = strings.TrimSpace(raw[7:])
			}
			if raw == "" {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			claims, err := verifier.VerifyAccessToken(raw)
			if err != nil {
				writeErr(w, r, err)
				return
			}
			if strings.TrimSpace(claims.UserID) == "" {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			u, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				if domain.Is(err, "user_not_found") {
					// valid signature but the subject is gone
					writeErr(w, r, domain.ErrTokenInvalid())
					return
				}
				// store fault is a 500, not an auth failure
				writeErr(w, r, err)
				return
			}

			ctx := WithUser(r.Context(), u.Sanitized())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
