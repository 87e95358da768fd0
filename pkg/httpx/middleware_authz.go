package httpx

import "net/http"

// RequireStaff gates dashboard routes: the actor must hold the owner or
// manager role.
func RequireStaff() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromContext(r.Context())
			if !ok || !actor.IsStaff() {
				writeRoleError(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequirePortal gates client portal routes: the actor must be a client-role
// user with a bound client.
func RequirePortal() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromContext(r.Context())
			if !ok || !actor.IsClient() {
				writeRoleError(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeRoleError(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer error="insufficient_scope"`)
	WriteError(w, http.StatusForbidden, "forbidden")
}
