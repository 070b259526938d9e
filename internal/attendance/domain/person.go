package domain

import "time"

// PersonStatus marks whether a person can have attendance registered.
type PersonStatus string

const (
	PersonActive   PersonStatus = "active"
	PersonInactive PersonStatus = "inactive"
)

// Person is a roster record. Provisioned out-of-band and read-only to the
// attendance core; the registration path only ever looks people up.
type Person struct {
	ID                 string // caller-assigned, e.g. "P001"
	FirstName          string
	LastName           string
	City               string
	Position           string
	SupervisorUsername string
	Status             PersonStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// FullName is the display form snapshotted onto attendance entries.
func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}
