package http

import (
	"net/http"

	"github.com/andeanops/rollcall/internal/attendance/service"
	"github.com/andeanops/rollcall/pkg/rollsdk"
)

type PersonnelHandler struct {
	RosterService    *service.RosterService
	ProvisionService *service.ProvisionService
}

// HandleList returns the active roster of a city.
//
//	@Summary		List personnel
//	@Description	Returns the active personnel of a city. Supervisors are fenced to their own city; administrators may pick any with the city query parameter.
//	@Tags			Personnel
//	@Produce		json
//	@Security		BearerAuth
//	@Param			city	query		string	false	"City to list; defaults to the caller's own"
//	@Success		200		{object}	rollsdk.Envelope{data=[]rollsdk.Person}
//	@Failure		400		{object}	rollsdk.Envelope	"City missing for an all-cities administrator"
//	@Failure		403		{object}	rollsdk.Envelope	"City outside the caller's scope"
//	@Router			/v1/personnel [get].
func (h *PersonnelHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(r)
	if !ok {
		rollsdk.ErrForbidden.WriteError(w)
		return
	}

	persons, err := h.RosterService.ListPersonnel(r.Context(), ident, r.URL.Query().Get("city"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, toPersons(persons))
}

// HandleCreate provisions a roster record. Administrator only.
//
//	@Summary		Create a person
//	@Tags			Personnel
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		rollsdk.CreatePersonRequest	true	"Person"
//	@Success		201		{object}	rollsdk.Envelope{data=rollsdk.Person}
//	@Failure		400		{object}	rollsdk.Envelope	"Validation failed"
//	@Failure		403		{object}	rollsdk.Envelope	"Caller is not an administrator"
//	@Failure		409		{object}	rollsdk.Envelope	"Person id already taken"
//	@Router			/v1/personnel [post].
func (h *PersonnelHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req rollsdk.CreatePersonRequest
	if err := decodeValid(r, &req); err != nil {
		rollsdk.ErrInvalidInput.WithMessage(err.Error()).WriteError(w)
		return
	}

	person, err := h.ProvisionService.CreatePerson(r.Context(), service.CreatePersonInput{
		ID:                 req.ID,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		City:               req.City,
		Position:           req.Position,
		SupervisorUsername: req.SupervisorUsername,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, toPerson(person))
}
