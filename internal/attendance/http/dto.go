package http

import (
	"time"

	"github.com/andeanops/rollcall/internal/attendance/domain"
	"github.com/andeanops/rollcall/pkg/rollsdk"
)

func toIdentity(id domain.Identity) rollsdk.Identity {
	return rollsdk.Identity{
		Username: id.Username,
		City:     id.City,
		Role:     string(id.Role),
	}
}

func toPerson(p domain.Person) rollsdk.Person {
	return rollsdk.Person{
		ID:                 p.ID,
		FirstName:          p.FirstName,
		LastName:           p.LastName,
		City:               p.City,
		Position:           p.Position,
		SupervisorUsername: p.SupervisorUsername,
		Status:             string(p.Status),
	}
}

func toPersons(persons []domain.Person) []rollsdk.Person {
	out := make([]rollsdk.Person, len(persons))
	for i, p := range persons {
		out[i] = toPerson(p)
	}
	return out
}

func toEntry(e domain.AttendanceEntry) rollsdk.AttendanceEntry {
	return rollsdk.AttendanceEntry{
		RecordID:     e.RecordID,
		PersonID:     e.PersonID,
		FullName:     e.FullName,
		City:         e.City,
		Date:         e.Day,
		TimeIn:       e.TimeIn,
		TimeOut:      e.TimeOut,
		ShiftType:    string(e.ShiftType),
		HoursWorked:  e.HoursWorked,
		RegisteredBy: e.RegisteredBy,
		CreatedAt:    e.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toEntries(entries []domain.AttendanceEntry) []rollsdk.AttendanceEntry {
	out := make([]rollsdk.AttendanceEntry, len(entries))
	for i, e := range entries {
		out[i] = toEntry(e)
	}
	return out
}
