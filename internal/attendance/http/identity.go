package http

import (
	"net/http"

	"github.com/andeanops/rollcall/internal/attendance/domain"
	"github.com/andeanops/rollcall/pkg/httpx"
)

// identityFromRequest rebuilds the caller identity from the verified
// session claims. Authn middleware guarantees claims are present on
// secured routes; the bool guards against wiring mistakes.
func identityFromRequest(r *http.Request) (domain.Identity, bool) {
	claims, ok := httpx.ClaimsFromContext(r.Context())
	if !ok {
		return domain.Identity{}, false
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Identity{}, false
	}

	return domain.Identity{
		Username: claims.Username,
		City:     claims.City,
		Role:     role,
	}, true
}
