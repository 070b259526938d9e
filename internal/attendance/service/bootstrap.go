package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/andeanops/rollcall/internal/attendance/domain"
	"github.com/andeanops/rollcall/internal/attendance/store"
	"github.com/andeanops/rollcall/pkg/cryptox"
	"github.com/andeanops/rollcall/pkg/slogx"
)

var (
	ErrBootstrapAlready      = errors.New("system already bootstrapped")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
)

// BootstrapService creates the first administrator credential on a fresh
// deployment. It only works while the credentials table is empty; after
// that, provisioning goes through the admin API.
type BootstrapService struct {
	Store store.Store
	Token string // Pre-configured bootstrap token
}

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	empty, err := s.Store.Credentials().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

func (s *BootstrapService) Bootstrap(ctx context.Context, token, username, password string) error {
	l := slogx.FromContext(ctx)

	// 1. Check if already bootstrapped
	if bootstrapped, _ := s.IsBootstrapped(ctx); bootstrapped {
		l.Warn("attempted bootstrap on already-bootstrapped system")
		return ErrBootstrapAlready
	}

	// 2. Validate provided token
	if token != s.Token {
		l.Warn("unauthorized bootstrap attempt")
		return ErrBootstrapUnauthorized
	}

	// 3. Create the administrator
	passHash, err := cryptox.HashPassword(password)
	if err != nil {
		l.Error("failed to hash admin password", slog.Any("error", err))
		return err
	}

	now := time.Now().UTC()
	err = s.Store.Credentials().Create(ctx, domain.Credential{
		Username:     username,
		PasswordHash: passHash,
		City:         domain.CityAll,
		Role:         domain.RoleAdministrator,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return ErrBootstrapAlready
		}
		l.Error("failed to create admin credential", slog.Any("error", err))
		return err
	}

	l.Info("system bootstrapped", slog.String("admin_username", username))
	return nil
}
