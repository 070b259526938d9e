package rollsdk

import "encoding/json"

// Envelope is the response wrapper shared by every core endpoint.
// Data is raw so the client can decode it into the right type after
// checking Success.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Identity is the authenticated caller's scope: every read and write is
// restricted to City unless Role is "administrator".
type Identity struct {
	Username string `json:"username"`
	City     string `json:"city"`
	Role     string `json:"role"`
}

// Person is a roster record. Provisioned out-of-band; read-only to the
// attendance core.
type Person struct {
	ID                 string `json:"id"`
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	City               string `json:"city"`
	Position           string `json:"position"`
	SupervisorUsername string `json:"supervisorUsername,omitempty"`
	Status             string `json:"status"`
}

// AttendanceEntry is one registered attendance event. HoursWorked is nil
// exactly when TimeOut is absent.
type AttendanceEntry struct {
	RecordID     string   `json:"recordId"`
	PersonID     string   `json:"personId"`
	FullName     string   `json:"fullName"`
	City         string   `json:"city"`
	Date         string   `json:"date"`    // YYYY-MM-DD
	TimeIn       string   `json:"timeIn"`  // HH:MM
	TimeOut      string   `json:"timeOut,omitempty"` // HH:MM
	ShiftType    string   `json:"shiftType"`         // "4h" or "6h"
	HoursWorked  *float64 `json:"hoursWorked,omitempty"`
	RegisteredBy string   `json:"registeredBy"`
	CreatedAt    string   `json:"createdAt"` // RFC 3339
}

// LoginRequest is the POST /v1/auth/login payload.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginData is the success payload of POST /v1/auth/login.
type LoginData struct {
	Identity  Identity `json:"identity"`
	Token     string   `json:"token"`
	ExpiresIn int      `json:"expiresIn"` // seconds
}

// RegisterAttendanceRequest is the POST /v1/attendance payload. City and
// registeredBy are derived from the session token server-side.
type RegisterAttendanceRequest struct {
	PersonID  string `json:"personId" validate:"required"`
	Date      string `json:"date" validate:"required"`     // YYYY-MM-DD
	TimeIn    string `json:"timeIn" validate:"required"`   // HH:MM
	TimeOut   string `json:"timeOut,omitempty"`
	ShiftType string `json:"shiftType" validate:"required"` // "4h" or "6h"
}

// BootstrapRequest creates the first administrator credential.
type BootstrapRequest struct {
	Token    string `json:"token,omitempty"`
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
}

// CreateCredentialRequest provisions a login. Password may be empty, in
// which case the server generates one and returns it once.
type CreateCredentialRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password,omitempty"`
	City     string `json:"city" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=supervisor administrator"`
	Active   *bool  `json:"active,omitempty"` // defaults to true
}

// CreateCredentialData is the success payload of POST /v1/credentials.
type CreateCredentialData struct {
	Username string `json:"username"`
	City     string `json:"city"`
	Role     string `json:"role"`
	// Password echoes the generated password when none was supplied.
	Password string `json:"password,omitempty"`
}

// CreatePersonRequest provisions a roster record.
type CreatePersonRequest struct {
	ID                 string `json:"id" validate:"required"`
	FirstName          string `json:"firstName" validate:"required"`
	LastName           string `json:"lastName" validate:"required"`
	City               string `json:"city" validate:"required"`
	Position           string `json:"position,omitempty"`
	SupervisorUsername string `json:"supervisorUsername,omitempty"`
}

// HealthResponse is returned by the health probe endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency status on /readyz.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
