package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/andeanops/rollcall/internal/attendance/domain"
	"github.com/andeanops/rollcall/internal/attendance/store"
	"github.com/andeanops/rollcall/pkg/idx"
	"github.com/andeanops/rollcall/pkg/slogx"
)

var ErrDuplicateRegistration = errors.New("duplicate_registration")

const (
	dayLayout  = "2006-01-02"
	timeLayout = "15:04"
)

// RegisterInput is one attendance registration as the caller provides it.
// TimeOut may be empty when the person is still clocked in.
type RegisterInput struct {
	PersonID  string
	Day       string // YYYY-MM-DD
	TimeIn    string // HH:MM
	TimeOut   string // HH:MM, optional
	ShiftType string
}

type AttendanceService struct {
	Store store.Store
}

// Register validates and appends one attendance entry. Checks run in a
// fixed order so callers get stable errors: person visibility first, then
// the time fields, then the shift type, and finally the once-per-day rule
// which the storage uniqueness constraint enforces even under concurrent
// requests.
func (s *AttendanceService) Register(ctx context.Context, ident domain.Identity, in RegisterInput) (domain.AttendanceEntry, error) {
	l := slogx.FromContext(ctx)

	// 1. The person must exist, be active and be visible to the caller.
	// Persons outside the caller's city read as not found.
	person, err := s.Store.Personnel().GetByID(ctx, in.PersonID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.AttendanceEntry{}, ErrPersonNotFound
		}
		l.Error("person lookup failed", slog.String("person_id", in.PersonID), slog.Any("error", err))
		return domain.AttendanceEntry{}, err
	}
	if person.Status != domain.PersonActive || !ident.CanAccessCity(person.City) {
		return domain.AttendanceEntry{}, ErrPersonNotFound
	}

	// 2. Time fields
	if _, err := time.Parse(dayLayout, in.Day); err != nil {
		return domain.AttendanceEntry{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	timeIn, err := time.Parse(timeLayout, in.TimeIn)
	if err != nil {
		return domain.AttendanceEntry{}, fmt.Errorf("%w: timeIn must be HH:MM", ErrInvalidInput)
	}

	var hoursWorked *float64
	if in.TimeOut != "" {
		timeOut, err := time.Parse(timeLayout, in.TimeOut)
		if err != nil {
			return domain.AttendanceEntry{}, fmt.Errorf("%w: timeOut must be HH:MM", ErrInvalidInput)
		}
		h := shiftHours(timeIn, timeOut)
		hoursWorked = &h
	}

	// 3. Shift type
	shiftType, err := domain.ParseShiftType(in.ShiftType)
	if err != nil {
		return domain.AttendanceEntry{}, fmt.Errorf("%w: shiftType must be 4h or 6h", ErrInvalidInput)
	}

	// 4. Insert; the (person_id, day) unique index turns races into
	// exactly one winner.
	entry := domain.AttendanceEntry{
		RecordID:     idx.New().String(),
		PersonID:     person.ID,
		FullName:     person.FullName(),
		City:         person.City,
		Day:          in.Day,
		TimeIn:       in.TimeIn,
		TimeOut:      in.TimeOut,
		ShiftType:    shiftType,
		HoursWorked:  hoursWorked,
		RegisteredBy: ident.Username,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Store.Attendance().Insert(ctx, entry); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			l.Info("duplicate registration rejected",
				slog.String("person_id", person.ID),
				slog.String("day", in.Day),
			)
			return domain.AttendanceEntry{}, ErrDuplicateRegistration
		}
		l.Error("attendance insert failed", slog.Any("error", err))
		return domain.AttendanceEntry{}, err
	}

	l.Info("attendance registered",
		slog.String("record_id", entry.RecordID),
		slog.String("person_id", person.ID),
		slog.String("day", in.Day),
		slog.String("registered_by", ident.Username),
	)
	return entry, nil
}

// ListForDay returns all entries of a city for one day. The same city
// fence as the roster applies.
func (s *AttendanceService) ListForDay(ctx context.Context, ident domain.Identity, city, day string) ([]domain.AttendanceEntry, error) {
	l := slogx.FromContext(ctx)

	if city == "" {
		city = ident.City
	}
	if city == "" || city == domain.CityAll {
		return nil, fmt.Errorf("%w: city is required", ErrInvalidInput)
	}
	if _, err := time.Parse(dayLayout, day); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	if !ident.CanAccessCity(city) {
		l.Warn("attendance list denied",
			slog.String("username", ident.Username),
			slog.String("requested_city", city),
		)
		return nil, ErrForbidden
	}

	entries, err := s.Store.Attendance().ListByCityAndDay(ctx, city, day)
	if err != nil {
		l.Error("attendance lookup failed", slog.String("city", city), slog.Any("error", err))
		return nil, err
	}
	return entries, nil
}

// shiftHours computes the worked duration in hours, rounded to two
// decimals. A clock-out earlier than the clock-in means the shift crossed
// midnight.
func shiftHours(in, out time.Time) float64 {
	d := out.Sub(in)
	if d < 0 {
		d += 24 * time.Hour
	}
	return math.Round(d.Hours()*100) / 100
}
