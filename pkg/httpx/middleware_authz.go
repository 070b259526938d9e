package httpx

import "net/http"

// RequireRole the caller's verified role must be one of those listed.
// City-level scoping stays in the services; this guard only fences off
// whole endpoints (e.g. provisioning is administrator-only).
func RequireRole(roles ...string) Middleware {
	want := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		want[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				writeBearerError(w, "missing bearer token")
				return
			}

			if _, allowed := want[claims.Role]; !allowed {
				writeRoleError(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RFC 6750-style error response for insufficient role.
func writeRoleError(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer error="insufficient_scope"`)
	WriteJSON(w, http.StatusForbidden, map[string]any{
		"success": false,
		"message": "insufficient role",
	})
}
