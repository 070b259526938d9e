package http

import (
	"net/http"
	"time"

	"github.com/andeanops/rollcall/internal/attendance/service"
	"github.com/andeanops/rollcall/pkg/rollsdk"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP authenticates a supervisor or administrator.
//
//	@Summary		Log in
//	@Description	Exchanges a username/password pair for a signed session token. The token carries the caller's city and role; later requests derive their scope from it, never from request fields.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rollsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	rollsdk.Envelope{data=rollsdk.LoginData}
//	@Failure		400		{object}	rollsdk.Envelope	"Malformed request"
//	@Failure		401		{object}	rollsdk.Envelope	"Invalid credentials"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req rollsdk.LoginRequest
	if err := decodeValid(r, &req); err != nil {
		rollsdk.ErrInvalidInput.WithMessage(err.Error()).WriteError(w)
		return
	}

	session, err := h.AuthService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, rollsdk.LoginData{
		Identity:  toIdentity(session.Identity),
		Token:     session.Token,
		ExpiresIn: int(time.Until(session.ExpiresAt).Seconds()),
	})
}
