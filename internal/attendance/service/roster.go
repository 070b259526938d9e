package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/andeanops/rollcall/internal/attendance/domain"
	"github.com/andeanops/rollcall/internal/attendance/store"
	"github.com/andeanops/rollcall/pkg/slogx"
)

type RosterService struct {
	Store store.Store
}

// ListPersonnel returns the active roster of a city. Supervisors may only
// see their own city; administrators may pick any. An empty city defaults
// to the caller's own, which administrators scoped to all cities must
// spell out explicitly.
func (s *RosterService) ListPersonnel(ctx context.Context, ident domain.Identity, city string) ([]domain.Person, error) {
	l := slogx.FromContext(ctx)

	// 1. Resolve the target city
	if city == "" {
		city = ident.City
	}
	if city == "" || city == domain.CityAll {
		return nil, fmt.Errorf("%w: city is required", ErrInvalidInput)
	}

	// 2. City fence
	if !ident.CanAccessCity(city) {
		l.Warn("roster access denied",
			slog.String("username", ident.Username),
			slog.String("requested_city", city),
		)
		return nil, ErrForbidden
	}

	// 3. Fetch
	persons, err := s.Store.Personnel().ListActiveByCity(ctx, city)
	if err != nil {
		l.Error("roster lookup failed", slog.String("city", city), slog.Any("error", err))
		return nil, err
	}
	return persons, nil
}
