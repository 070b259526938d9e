package service

import (
	"context"
	"testing"

	"github.com/andeanops/rollcall/internal/attendance/domain"

	"github.com/stretchr/testify/require"
)

func TestBootstrap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := newTestStore(t)
	svc := &BootstrapService{Store: s, Token: "bootstrap-secret"}

	t.Run("fresh system reports not bootstrapped", func(t *testing.T) {
		done, err := svc.IsBootstrapped(ctx)
		require.NoError(t, err)
		require.False(t, done)
	})

	t.Run("wrong token is rejected", func(t *testing.T) {
		err := svc.Bootstrap(ctx, "nope", "admin", "changeme123")
		require.ErrorIs(t, err, ErrBootstrapUnauthorized)
	})

	t.Run("creates the first administrator", func(t *testing.T) {
		require.NoError(t, svc.Bootstrap(ctx, "bootstrap-secret", "admin", "changeme123"))

		cred, err := s.Credentials().GetByUsername(ctx, "admin")
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdministrator, cred.Role)
		require.Equal(t, domain.CityAll, cred.City)
		require.True(t, cred.Active)

		done, err := svc.IsBootstrapped(ctx)
		require.NoError(t, err)
		require.True(t, done)
	})

	t.Run("second bootstrap is refused", func(t *testing.T) {
		err := svc.Bootstrap(ctx, "bootstrap-secret", "admin2", "changeme123")
		require.ErrorIs(t, err, ErrBootstrapAlready)
	})
}

func TestProvision(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := newTestStore(t)
	svc := &ProvisionService{Store: s}

	t.Run("create credential with explicit password", func(t *testing.T) {
		cred, password, err := svc.CreateCredential(ctx, CreateCredentialInput{
			Username: "supervisor.quito",
			Password: "demo123",
			City:     "quito",
			Role:     "supervisor",
		})
		require.NoError(t, err)
		require.Equal(t, "demo123", password)
		require.Equal(t, domain.RoleSupervisor, cred.Role)
		require.NotEqual(t, "demo123", cred.PasswordHash)
	})

	t.Run("generates a password when omitted", func(t *testing.T) {
		_, password, err := svc.CreateCredential(ctx, CreateCredentialInput{
			Username: "supervisor.cuenca",
			City:     "cuenca",
			Role:     "supervisor",
		})
		require.NoError(t, err)
		require.Len(t, password, 12)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, _, err := svc.CreateCredential(ctx, CreateCredentialInput{
			Username: "supervisor.quito",
			Password: "other",
			City:     "quito",
			Role:     "supervisor",
		})
		require.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("inactive flag is part of the insert", func(t *testing.T) {
		inactive := false
		cred, _, err := svc.CreateCredential(ctx, CreateCredentialInput{
			Username: "supervisor.loja",
			Password: "demo123",
			City:     "loja",
			Role:     "supervisor",
			Active:   &inactive,
		})
		require.NoError(t, err)
		require.False(t, cred.Active)

		// The stored row was never live, not disabled after the fact.
		got, err := s.Credentials().GetByUsername(ctx, "supervisor.loja")
		require.NoError(t, err)
		require.False(t, got.Active)
	})

	t.Run("supervisor cannot span all cities", func(t *testing.T) {
		_, _, err := svc.CreateCredential(ctx, CreateCredentialInput{
			Username: "supervisor.everywhere",
			City:     domain.CityAll,
			Role:     "supervisor",
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, _, err := svc.CreateCredential(ctx, CreateCredentialInput{
			Username: "x",
			City:     "quito",
			Role:     "manager",
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("create person", func(t *testing.T) {
		person, err := svc.CreatePerson(ctx, CreatePersonInput{
			ID:        "P001",
			FirstName: "Carlos",
			LastName:  "Vera",
			City:      "quito",
			Position:  "operator",
		})
		require.NoError(t, err)
		require.Equal(t, domain.PersonActive, person.Status)

		_, err = svc.CreatePerson(ctx, CreatePersonInput{
			ID:        "P001",
			FirstName: "Carlos",
			LastName:  "Vera",
			City:      "quito",
		})
		require.ErrorIs(t, err, ErrPersonIDTaken)
	})

	t.Run("person fields are required", func(t *testing.T) {
		_, err := svc.CreatePerson(ctx, CreatePersonInput{ID: "P002"})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
