package service

import (
	"context"
	"testing"
	"time"

	"github.com/andeanops/rollcall/internal/attendance/domain"
	"github.com/andeanops/rollcall/internal/attendance/store/drivers/sqlite"
	"github.com/andeanops/rollcall/pkg/cryptox"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedCredential(t *testing.T, s *sqlite.Store, username, password, city string, role domain.Role) {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	now := time.Now().UTC()
	require.NoError(t, s.Credentials().Create(context.Background(), domain.Credential{
		Username:     username,
		PasswordHash: hash,
		City:         city,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}))
}

func seedPerson(t *testing.T, s *sqlite.Store, id, firstName, lastName, city string) {
	t.Helper()

	now := time.Now().UTC()
	require.NoError(t, s.Personnel().Create(context.Background(), domain.Person{
		ID:                 id,
		FirstName:          firstName,
		LastName:           lastName,
		City:               city,
		Position:           "operator",
		SupervisorUsername: "supervisor." + city,
		Status:             domain.PersonActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}))
}

func supervisorIdentity(city string) domain.Identity {
	return domain.Identity{
		Username: "supervisor." + city,
		City:     city,
		Role:     domain.RoleSupervisor,
	}
}

func adminIdentity() domain.Identity {
	return domain.Identity{
		Username: "admin",
		City:     domain.CityAll,
		Role:     domain.RoleAdministrator,
	}
}
