package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/andeanops/rollcall/internal/attendance/domain"
	"github.com/andeanops/rollcall/internal/attendance/store"
	"github.com/andeanops/rollcall/pkg/cryptox"
	"github.com/andeanops/rollcall/pkg/slogx"
)

var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrPersonIDTaken = errors.New("person id already taken")
)

// ProvisionService is the administrator-only write side of credentials
// and the personnel roster. Supervisors never reach it; route guards
// enforce the role before the service runs.
type ProvisionService struct {
	Store store.Store
}

// CreateCredentialInput describes a new login. An empty Password asks the
// service to generate one, which is returned exactly once. Active nil
// defaults to true; false inserts the credential already disabled, so it
// is never usable for login at any point.
type CreateCredentialInput struct {
	Username string
	Password string
	City     string
	Role     string
	Active   *bool
}

// CreateCredential provisions a login and returns the password that was
// set, which is the generated one when none was supplied.
func (s *ProvisionService) CreateCredential(ctx context.Context, in CreateCredentialInput) (domain.Credential, string, error) {
	l := slogx.FromContext(ctx)

	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return domain.Credential{}, "", fmt.Errorf("%w: role must be supervisor or administrator", ErrInvalidInput)
	}
	if in.City == "" {
		return domain.Credential{}, "", fmt.Errorf("%w: city is required", ErrInvalidInput)
	}
	if role == domain.RoleSupervisor && in.City == domain.CityAll {
		return domain.Credential{}, "", fmt.Errorf("%w: supervisors must be scoped to a single city", ErrInvalidInput)
	}

	password := in.Password
	if password == "" {
		password, err = cryptox.GeneratePassword()
		if err != nil {
			l.Error("failed to generate password", slog.Any("error", err))
			return domain.Credential{}, "", err
		}
	}

	passHash, err := cryptox.HashPassword(password)
	if err != nil {
		l.Error("failed to hash password", slog.Any("error", err))
		return domain.Credential{}, "", err
	}

	now := time.Now().UTC()
	cred := domain.Credential{
		Username:     in.Username,
		PasswordHash: passHash,
		City:         in.City,
		Role:         role,
		Active:       in.Active == nil || *in.Active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Credentials().Create(ctx, cred); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Credential{}, "", ErrUsernameTaken
		}
		l.Error("failed to create credential", slog.Any("error", err))
		return domain.Credential{}, "", err
	}

	l.Info("credential provisioned",
		slog.String("username", cred.Username),
		slog.String("city", cred.City),
		slog.String("role", string(cred.Role)),
	)
	return cred, password, nil
}

// CreatePersonInput describes a new roster entry.
type CreatePersonInput struct {
	ID                 string
	FirstName          string
	LastName           string
	City               string
	Position           string
	SupervisorUsername string
}

func (s *ProvisionService) CreatePerson(ctx context.Context, in CreatePersonInput) (domain.Person, error) {
	l := slogx.FromContext(ctx)

	if in.ID == "" || in.FirstName == "" || in.LastName == "" || in.City == "" {
		return domain.Person{}, fmt.Errorf("%w: id, firstName, lastName and city are required", ErrInvalidInput)
	}
	if in.City == domain.CityAll {
		return domain.Person{}, fmt.Errorf("%w: persons belong to a single city", ErrInvalidInput)
	}

	now := time.Now().UTC()
	person := domain.Person{
		ID:                 in.ID,
		FirstName:          in.FirstName,
		LastName:           in.LastName,
		City:               in.City,
		Position:           in.Position,
		SupervisorUsername: in.SupervisorUsername,
		Status:             domain.PersonActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.Store.Personnel().Create(ctx, person); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Person{}, ErrPersonIDTaken
		}
		l.Error("failed to create person", slog.Any("error", err))
		return domain.Person{}, err
	}

	l.Info("person provisioned", slog.String("person_id", person.ID), slog.String("city", person.City))
	return person, nil
}
