package http

import (
	"net/http"

	"github.com/andeanops/rollcall/internal/attendance/service"
	"github.com/andeanops/rollcall/pkg/rollsdk"
	"github.com/andeanops/rollcall/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP creates the first administrator on a fresh deployment.
//
//	@Summary		Bootstrap the service
//	@Description	Creates the first administrator credential. Only available while no credential exists and only when a bootstrap token is configured.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string					true	"Bootstrap token"
//	@Param			request				body		rollsdk.BootstrapRequest	true	"First administrator"
//	@Success		201					{object}	rollsdk.Envelope
//	@Failure		400					{object}	rollsdk.Envelope	"Validation failed"
//	@Failure		403					{object}	rollsdk.Envelope	"Missing or wrong bootstrap token"
//	@Failure		404					{object}	rollsdk.Envelope	"Bootstrap not enabled"
//	@Failure		409					{object}	rollsdk.Envelope	"Already bootstrapped"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	// Bootstrap is disabled entirely unless a token is configured.
	if h.BootstrapService.Token == "" {
		l.Warn("bootstrap attempted while disabled")
		http.NotFound(w, r)
		return
	}

	var req rollsdk.BootstrapRequest
	if err := decodeValid(r, &req); err != nil {
		rollsdk.ErrInvalidInput.WithMessage(err.Error()).WriteError(w)
		return
	}

	token := r.Header.Get("X-Bootstrap-Token")
	if token == "" {
		token = req.Token
	}

	err := h.BootstrapService.Bootstrap(r.Context(), token, req.Username, req.Password)
	switch {
	case err == nil:
		writeSuccess(w, http.StatusCreated, nil)
	case err == service.ErrBootstrapUnauthorized:
		rollsdk.ErrForbidden.WithMessage("bootstrap token is missing or wrong").WriteError(w)
	case err == service.ErrBootstrapAlready:
		rollsdk.ErrConflict.WithMessage("system is already bootstrapped").WriteError(w)
	default:
		writeServiceError(w, err)
	}
}
