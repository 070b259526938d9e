package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/andeanops/rollcall/internal/attendance/domain"
	"github.com/andeanops/rollcall/internal/attendance/store"
	"github.com/andeanops/rollcall/pkg/cryptox"
	"github.com/andeanops/rollcall/pkg/jwtx"
	"github.com/andeanops/rollcall/pkg/slogx"
)

var ErrInvalidCredentials = errors.New("invalid_credentials")

// dummyHash keeps the password check on the failure path roughly as
// expensive as on the success path, so unknown usernames are not
// distinguishable by response time.
const dummyHash = "$argon2id$v=19$m=19456,t=2,p=1$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// Session is the result of a successful login: the caller's identity and
// a signed token carrying it. Every later request re-derives city and
// role from the token, never from request fields.
type Session struct {
	Identity  domain.Identity
	Token     string
	ExpiresAt time.Time
}

type AuthService struct {
	Store      store.Store
	Signer     jwtx.Signer
	Issuer     string
	SessionTTL time.Duration
}

// Authenticate checks the username/password pair and mints a session
// token. Unknown usernames, wrong passwords and disabled credentials all
// collapse into ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (Session, error) {
	l := slogx.FromContext(ctx)

	// 1. Look up the credential
	cred, err := s.Store.Credentials().GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = cryptox.VerifyPassword(password, dummyHash)
			l.Info("login rejected: unknown username", slog.String("username", username))
			return Session{}, ErrInvalidCredentials
		}
		l.Error("credential lookup failed", slog.Any("error", err))
		return Session{}, err
	}

	// 2. Verify the password
	if err := cryptox.VerifyPassword(password, cred.PasswordHash); err != nil {
		l.Info("login rejected: bad password", slog.String("username", username))
		return Session{}, ErrInvalidCredentials
	}

	// 3. Disabled credentials cannot log in
	if !cred.Active {
		l.Info("login rejected: credential disabled", slog.String("username", username))
		return Session{}, ErrInvalidCredentials
	}

	// 4. Mint the session token
	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	now := time.Now().UTC()
	claims := jwtx.NewSessionClaims(cred.Username, cred.City, string(cred.Role), ttl, s.Issuer, now)

	token, err := s.Signer.Sign(claims)
	if err != nil {
		l.Error("failed to sign session token", slog.Any("error", err))
		return Session{}, err
	}

	l.Info("login accepted",
		slog.String("username", cred.Username),
		slog.String("city", cred.City),
		slog.String("role", string(cred.Role)),
	)

	return Session{
		Identity: domain.Identity{
			Username: cred.Username,
			City:     cred.City,
			Role:     cred.Role,
		},
		Token:     token,
		ExpiresAt: now.Add(ttl),
	}, nil
}
