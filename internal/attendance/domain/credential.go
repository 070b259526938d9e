package domain

import (
	"errors"
	"strings"
	"time"
)

// CityAll is the sentinel city granting administrators access to every city.
const CityAll = "*"

// Role classifies what a credential may do beyond its own city.
type Role string

const (
	RoleSupervisor    Role = "supervisor"
	RoleAdministrator Role = "administrator"
)

var ErrUnknownRole = errors.New("domain: unknown role")

// ParseRole normalizes and validates a role string.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleSupervisor:
		return RoleSupervisor, nil
	case RoleAdministrator:
		return RoleAdministrator, nil
	default:
		return "", ErrUnknownRole
	}
}

// Credential is a login record. Provisioned via bootstrap or the admin
// provisioning API; attendance operations never mutate it.
type Credential struct {
	Username     string
	PasswordHash string // argon2id PHC encoded
	City         string // CityAll for administrators spanning cities
	Role         Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
