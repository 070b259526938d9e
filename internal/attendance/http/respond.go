package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/andeanops/rollcall/internal/attendance/service"
	"github.com/andeanops/rollcall/pkg/httpx"
	"github.com/andeanops/rollcall/pkg/rollsdk"
)

// writeSuccess wraps v into the success envelope shared by every core
// endpoint.
func writeSuccess(w http.ResponseWriter, code int, v any) {
	var data json.RawMessage
	if v != nil {
		var err error
		data, err = json.Marshal(v)
		if err != nil {
			rollsdk.ErrServerError.WriteError(w)
			return
		}
	}
	httpx.WriteJSON(w, code, rollsdk.Envelope{
		Success: true,
		Data:    data,
	})
}

// writeServiceError maps service errors onto the API error taxonomy.
// Anything unmapped is a store or infrastructure failure and reads as
// temporarily unavailable.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		rollsdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrForbidden):
		rollsdk.ErrForbidden.WriteError(w)
	case errors.Is(err, service.ErrPersonNotFound):
		rollsdk.ErrPersonNotFound.WriteError(w)
	case errors.Is(err, service.ErrInvalidInput):
		rollsdk.ErrInvalidInput.WithMessage(inputMessage(err)).WriteError(w)
	case errors.Is(err, service.ErrDuplicateRegistration):
		rollsdk.ErrDuplicateRegistration.WriteError(w)
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrPersonIDTaken):
		rollsdk.ErrConflict.WithMessage(err.Error()).WriteError(w)
	default:
		rollsdk.ErrUnavailable.WriteError(w)
	}
}

// inputMessage strips the sentinel prefix so the envelope carries just
// the human-readable part.
func inputMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), service.ErrInvalidInput.Error())
	msg = strings.TrimPrefix(msg, ": ")
	if msg == "" {
		return rollsdk.ErrInvalidInput.Message
	}
	return msg
}
