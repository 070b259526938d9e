package http

import (
	"net/http"

	"github.com/andeanops/rollcall/internal/attendance/service"
	"github.com/andeanops/rollcall/pkg/rollsdk"
)

type AttendanceHandler struct {
	AttendanceService *service.AttendanceService
}

// HandleRegister registers one attendance entry.
//
//	@Summary		Register attendance
//	@Description	Appends one attendance entry for a person on a date. A person gets at most one entry per date; the second attempt, concurrent or not, is rejected with 409.
//	@Tags			Attendance
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		rollsdk.RegisterAttendanceRequest	true	"Registration"
//	@Success		201		{object}	rollsdk.Envelope{data=rollsdk.AttendanceEntry}
//	@Failure		400		{object}	rollsdk.Envelope	"Malformed date, times, or shift type"
//	@Failure		404		{object}	rollsdk.Envelope	"Person unknown, inactive, or outside the caller's city"
//	@Failure		409		{object}	rollsdk.Envelope	"Already registered for this date"
//	@Router			/v1/attendance [post].
func (h *AttendanceHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(r)
	if !ok {
		rollsdk.ErrForbidden.WriteError(w)
		return
	}

	var req rollsdk.RegisterAttendanceRequest
	if err := decodeValid(r, &req); err != nil {
		rollsdk.ErrInvalidInput.WithMessage(err.Error()).WriteError(w)
		return
	}

	entry, err := h.AttendanceService.Register(r.Context(), ident, service.RegisterInput{
		PersonID:  req.PersonID,
		Day:       req.Date,
		TimeIn:    req.TimeIn,
		TimeOut:   req.TimeOut,
		ShiftType: req.ShiftType,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, toEntry(entry))
}

// HandleList returns all entries of a city for one day.
//
//	@Summary		List attendance for a day
//	@Tags			Attendance
//	@Produce		json
//	@Security		BearerAuth
//	@Param			city	query		string	false	"City to list; defaults to the caller's own"
//	@Param			date	query		string	true	"Day, YYYY-MM-DD"
//	@Success		200		{object}	rollsdk.Envelope{data=[]rollsdk.AttendanceEntry}
//	@Failure		400		{object}	rollsdk.Envelope	"Missing or malformed date"
//	@Failure		403		{object}	rollsdk.Envelope	"City outside the caller's scope"
//	@Router			/v1/attendance [get].
func (h *AttendanceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(r)
	if !ok {
		rollsdk.ErrForbidden.WriteError(w)
		return
	}

	q := r.URL.Query()
	entries, err := h.AttendanceService.ListForDay(r.Context(), ident, q.Get("city"), q.Get("date"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, toEntries(entries))
}
