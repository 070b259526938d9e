package domain

import (
	"errors"
	"strings"
	"time"
)

// ShiftType is the coarse classification chosen by the registrant. It is
// independent of the computed duration.
type ShiftType string

const (
	ShiftFourHour ShiftType = "4h"
	ShiftSixHour  ShiftType = "6h"
)

var ErrUnknownShiftType = errors.New("domain: unknown shift type")

// ParseShiftType normalizes and validates a shift type string.
func ParseShiftType(s string) (ShiftType, error) {
	switch ShiftType(strings.ToLower(strings.TrimSpace(s))) {
	case ShiftFourHour:
		return ShiftFourHour, nil
	case ShiftSixHour:
		return ShiftSixHour, nil
	default:
		return "", ErrUnknownShiftType
	}
}

// AttendanceEntry is one row of the ledger. Created exactly once per
// (PersonID, Day) pair and never updated or deleted afterwards.
type AttendanceEntry struct {
	RecordID     string // ULID, generated on insert
	PersonID     string
	FullName     string // snapshot at registration time
	City         string
	Day          string // YYYY-MM-DD, no time zone conversion
	TimeIn       string // HH:MM
	TimeOut      string // HH:MM, empty when still clocked in
	ShiftType    ShiftType
	HoursWorked  *float64 // nil exactly when TimeOut is empty
	RegisteredBy string
	CreatedAt    time.Time
}
