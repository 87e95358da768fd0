package httpx

import (
	"net/http"
	"strings"

	"github.com/Ivannn15/agencyroom/internal/domain"
	"github.com/Ivannn15/agencyroom/pkg/jwtx"
	"github.com/Ivannn15/agencyroom/pkg/slogx"
)

// SessionCookieName is the httpOnly cookie set on login/registration and
// accepted as a fallback when no Authorization header is present.
const SessionCookieName = "agencyroom_session"

// AuthnMiddleware verifies the session token (bearer header first, session
// cookie as fallback) and injects the resulting Actor into the context.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := bearerToken(r)
			if raw == "" {
				if c, err := r.Cookie(SessionCookieName); err == nil {
					raw = c.Value
				}
			}
			if raw == "" {
				writeBearerError(w, "missing bearer token")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				writeBearerError(w, "token verification failed")
				log.Warn("jwt verify failed", "err", err)
				return
			}

			if err := claims.ValidateExpiry(); err != nil {
				writeBearerError(w, "token expired")
				return
			}

			actor := domain.Actor{
				UserID:   claims.Subject,
				Email:    claims.Email,
				Role:     domain.Role(claims.Role),
				AgencyID: claims.AgencyID,
				ClientID: claims.ClientID,
			}
			next.ServeHTTP(w, r.WithContext(ContextWithActor(ctx, actor)))
		})
	}
}

func bearerToken(r *http.Request) string {
	authz := r.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
