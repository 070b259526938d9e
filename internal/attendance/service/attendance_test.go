package service

import (
	"context"
	"sync"
	"testing"

	"github.com/andeanops/rollcall/internal/attendance/domain"

	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := newTestStore(t)
	seedPerson(t, s, "P001", "Carlos", "Vera", "quito")
	seedPerson(t, s, "P002", "Luis", "Matute", "cuenca")
	seedPerson(t, s, "P003", "Ana", "Borja", "quito")
	require.NoError(t, s.Personnel().SetStatus(ctx, "P003", domain.PersonInactive))

	svc := &AttendanceService{Store: s}
	supervisor := supervisorIdentity("quito")

	t.Run("full shift", func(t *testing.T) {
		entry, err := svc.Register(ctx, supervisor, RegisterInput{
			PersonID:  "P001",
			Day:       "2024-01-10",
			TimeIn:    "08:00",
			TimeOut:   "14:00",
			ShiftType: "6h",
		})
		require.NoError(t, err)
		require.NotEmpty(t, entry.RecordID)
		require.Equal(t, "Carlos Vera", entry.FullName)
		require.Equal(t, "quito", entry.City)
		require.Equal(t, "supervisor.quito", entry.RegisteredBy)
		require.NotNil(t, entry.HoursWorked)
		require.InDelta(t, 6.0, *entry.HoursWorked, 0.001)
	})

	t.Run("second registration for the same day is rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, supervisor, RegisterInput{
			PersonID:  "P001",
			Day:       "2024-01-10",
			TimeIn:    "09:00",
			TimeOut:   "13:00",
			ShiftType: "4h",
		})
		require.ErrorIs(t, err, ErrDuplicateRegistration)
	})

	t.Run("open shift has no hours yet", func(t *testing.T) {
		entry, err := svc.Register(ctx, supervisor, RegisterInput{
			PersonID:  "P001",
			Day:       "2024-01-11",
			TimeIn:    "08:00",
			ShiftType: "4h",
		})
		require.NoError(t, err)
		require.Empty(t, entry.TimeOut)
		require.Nil(t, entry.HoursWorked)
	})

	t.Run("unknown person", func(t *testing.T) {
		_, err := svc.Register(ctx, supervisor, RegisterInput{
			PersonID:  "P999",
			Day:       "2024-01-10",
			TimeIn:    "08:00",
			ShiftType: "4h",
		})
		require.ErrorIs(t, err, ErrPersonNotFound)
	})

	t.Run("person outside the caller city reads as not found", func(t *testing.T) {
		_, err := svc.Register(ctx, supervisor, RegisterInput{
			PersonID:  "P002",
			Day:       "2024-01-10",
			TimeIn:    "08:00",
			ShiftType: "4h",
		})
		require.ErrorIs(t, err, ErrPersonNotFound)
	})

	t.Run("inactive person reads as not found", func(t *testing.T) {
		_, err := svc.Register(ctx, supervisor, RegisterInput{
			PersonID:  "P003",
			Day:       "2024-01-10",
			TimeIn:    "08:00",
			ShiftType: "4h",
		})
		require.ErrorIs(t, err, ErrPersonNotFound)
	})

	t.Run("person check runs before input validation", func(t *testing.T) {
		_, err := svc.Register(ctx, supervisor, RegisterInput{
			PersonID:  "P999",
			Day:       "not-a-date",
			TimeIn:    "not-a-time",
			ShiftType: "9h",
		})
		require.ErrorIs(t, err, ErrPersonNotFound)
	})

	t.Run("malformed fields", func(t *testing.T) {
		base := RegisterInput{
			PersonID:  "P001",
			Day:       "2024-03-01",
			TimeIn:    "08:00",
			TimeOut:   "12:00",
			ShiftType: "4h",
		}

		in := base
		in.Day = "01/03/2024"
		_, err := svc.Register(ctx, supervisor, in)
		require.ErrorIs(t, err, ErrInvalidInput)

		in = base
		in.TimeIn = "8am"
		_, err = svc.Register(ctx, supervisor, in)
		require.ErrorIs(t, err, ErrInvalidInput)

		in = base
		in.TimeOut = "25:00"
		_, err = svc.Register(ctx, supervisor, in)
		require.ErrorIs(t, err, ErrInvalidInput)

		in = base
		in.ShiftType = "9h"
		_, err = svc.Register(ctx, supervisor, in)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("night shift crossing midnight", func(t *testing.T) {
		entry, err := svc.Register(ctx, supervisor, RegisterInput{
			PersonID:  "P001",
			Day:       "2024-01-12",
			TimeIn:    "22:00",
			TimeOut:   "04:00",
			ShiftType: "6h",
		})
		require.NoError(t, err)
		require.NotNil(t, entry.HoursWorked)
		require.InDelta(t, 6.0, *entry.HoursWorked, 0.001)
	})

	t.Run("administrator registers across cities", func(t *testing.T) {
		entry, err := svc.Register(ctx, adminIdentity(), RegisterInput{
			PersonID:  "P002",
			Day:       "2024-01-10",
			TimeIn:    "08:30",
			TimeOut:   "12:45",
			ShiftType: "4h",
		})
		require.NoError(t, err)
		require.Equal(t, "cuenca", entry.City)
		require.InDelta(t, 4.25, *entry.HoursWorked, 0.001)
	})
}

func TestRegisterConcurrentDuplicates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := newTestStore(t)
	seedPerson(t, s, "P001", "Carlos", "Vera", "quito")

	svc := &AttendanceService{Store: s}
	supervisor := supervisorIdentity("quito")

	const attempts = 6
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Register(ctx, supervisor, RegisterInput{
				PersonID:  "P001",
				Day:       "2024-02-01",
				TimeIn:    "08:00",
				TimeOut:   "14:00",
				ShiftType: "6h",
			})
		}(i)
	}
	wg.Wait()

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		require.ErrorIs(t, err, ErrDuplicateRegistration)
	}
	require.Equal(t, 1, ok)
}

func TestListForDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := newTestStore(t)
	seedPerson(t, s, "P001", "Carlos", "Vera", "quito")
	seedPerson(t, s, "P002", "Luis", "Matute", "cuenca")

	svc := &AttendanceService{Store: s}
	supervisor := supervisorIdentity("quito")

	_, err := svc.Register(ctx, supervisor, RegisterInput{
		PersonID:  "P001",
		Day:       "2024-01-10",
		TimeIn:    "08:00",
		TimeOut:   "14:00",
		ShiftType: "6h",
	})
	require.NoError(t, err)

	t.Run("defaults to the caller city", func(t *testing.T) {
		entries, err := svc.ListForDay(ctx, supervisor, "", "2024-01-10")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, "P001", entries[0].PersonID)
	})

	t.Run("empty day elsewhere", func(t *testing.T) {
		entries, err := svc.ListForDay(ctx, adminIdentity(), "cuenca", "2024-01-10")
		require.NoError(t, err)
		require.Empty(t, entries)
	})

	t.Run("supervisor fenced out of other cities", func(t *testing.T) {
		_, err := svc.ListForDay(ctx, supervisor, "cuenca", "2024-01-10")
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := svc.ListForDay(ctx, supervisor, "quito", "10-01-2024")
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
