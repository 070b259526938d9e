package service

import (
	"context"
	"testing"
	"time"

	"github.com/andeanops/rollcall/internal/attendance/domain"
	"github.com/andeanops/rollcall/pkg/jwtx"

	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := newTestStore(t)
	seedCredential(t, s, "supervisor.quito", "demo123", "quito", domain.RoleSupervisor)

	signer, err := jwtx.GenerateSignerEdDSA("test-key")
	require.NoError(t, err)

	svc := &AuthService{
		Store:  s,
		Signer: signer,
		Issuer: "rollcall-test",
	}

	t.Run("valid credentials yield a verifiable session", func(t *testing.T) {
		session, err := svc.Authenticate(ctx, "supervisor.quito", "demo123")
		require.NoError(t, err)
		require.Equal(t, "supervisor.quito", session.Identity.Username)
		require.Equal(t, "quito", session.Identity.City)
		require.Equal(t, domain.RoleSupervisor, session.Identity.Role)
		require.NotEmpty(t, session.Token)
		require.WithinDuration(t, time.Now().Add(jwtx.DefaultSessionTTL), session.ExpiresAt, time.Minute)

		keys := jwtx.NewKeySet()
		require.NoError(t, keys.AddSigner(signer))
		verifier := jwtx.NewVerifierEdDSA(keys, "rollcall-test")

		claims, err := verifier.Verify(session.Token)
		require.NoError(t, err)
		require.Equal(t, "supervisor.quito", claims.Username)
		require.Equal(t, "quito", claims.City)
		require.Equal(t, string(domain.RoleSupervisor), claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "supervisor.quito", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "ghost", "demo123")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("disabled credential", func(t *testing.T) {
		seedCredential(t, s, "retired.quito", "demo123", "quito", domain.RoleSupervisor)
		require.NoError(t, s.Credentials().SetActive(ctx, "retired.quito", false))

		_, err := svc.Authenticate(ctx, "retired.quito", "demo123")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
