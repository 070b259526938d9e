package http

import (
	"net/http"

	"github.com/andeanops/rollcall/internal/attendance/service"
	"github.com/andeanops/rollcall/pkg/rollsdk"
)

type CredentialsHandler struct {
	ProvisionService *service.ProvisionService
}

// ServeHTTP provisions a login. Administrator only.
//
//	@Summary		Create a credential
//	@Description	Provisions a supervisor or administrator login. When no password is supplied one is generated and echoed back exactly once.
//	@Tags			Credentials
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		rollsdk.CreateCredentialRequest	true	"Credential"
//	@Success		201		{object}	rollsdk.Envelope{data=rollsdk.CreateCredentialData}
//	@Failure		400		{object}	rollsdk.Envelope	"Validation failed"
//	@Failure		403		{object}	rollsdk.Envelope	"Caller is not an administrator"
//	@Failure		409		{object}	rollsdk.Envelope	"Username already taken"
//	@Router			/v1/credentials [post].
func (h *CredentialsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req rollsdk.CreateCredentialRequest
	if err := decodeValid(r, &req); err != nil {
		rollsdk.ErrInvalidInput.WithMessage(err.Error()).WriteError(w)
		return
	}

	cred, password, err := h.ProvisionService.CreateCredential(r.Context(), service.CreateCredentialInput{
		Username: req.Username,
		Password: req.Password,
		City:     req.City,
		Role:     req.Role,
		Active:   req.Active,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	data := rollsdk.CreateCredentialData{
		Username: cred.Username,
		City:     cred.City,
		Role:     string(cred.Role),
	}
	// Only echo generated passwords; chosen ones the caller already knows.
	if req.Password == "" {
		data.Password = password
	}
	writeSuccess(w, http.StatusCreated, data)
}
