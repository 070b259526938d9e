package sqlite

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/andeanops/rollcall/internal/attendance/domain"
	"github.com/andeanops/rollcall/internal/attendance/store"
	"github.com/andeanops/rollcall/pkg/idx"

	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", idx.New())
	s, err := NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func testPerson(id, city string) domain.Person {
	now := time.Now().UTC()
	return domain.Person{
		ID:                 id,
		FirstName:          "Maria",
		LastName:           "Lopez",
		City:               city,
		Position:           "operator",
		SupervisorUsername: "supervisor." + city,
		Status:             domain.PersonActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func testEntry(personID, day string) domain.AttendanceEntry {
	hours := 6.0
	return domain.AttendanceEntry{
		RecordID:     idx.New().String(),
		PersonID:     personID,
		FullName:     "Maria Lopez",
		City:         "quito",
		Day:          day,
		TimeIn:       "08:00",
		TimeOut:      "14:00",
		ShiftType:    domain.ShiftSixHour,
		HoursWorked:  &hours,
		RegisteredBy: "supervisor.quito",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestCredentialsRepo(t *testing.T) {
	t.Parallel()
	s := testStore(t)
	ctx := context.Background()

	empty, err := s.Credentials().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	now := time.Now().UTC()
	cred := domain.Credential{
		Username:     "supervisor.quito",
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		City:         "quito",
		Role:         domain.RoleSupervisor,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Credentials().Create(ctx, cred))

	empty, err = s.Credentials().IsEmpty(ctx)
	require.NoError(t, err)
	require.False(t, empty)

	got, err := s.Credentials().GetByUsername(ctx, "supervisor.quito")
	require.NoError(t, err)
	require.Equal(t, cred.PasswordHash, got.PasswordHash)
	require.Equal(t, domain.RoleSupervisor, got.Role)
	require.True(t, got.Active)

	t.Run("duplicate username", func(t *testing.T) {
		err := s.Credentials().Create(ctx, cred)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("set active", func(t *testing.T) {
		require.NoError(t, s.Credentials().SetActive(ctx, "supervisor.quito", false))
		got, err := s.Credentials().GetByUsername(ctx, "supervisor.quito")
		require.NoError(t, err)
		require.False(t, got.Active)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := s.Credentials().GetByUsername(ctx, "ghost")
		require.ErrorIs(t, err, store.ErrNotFound)

		err = s.Credentials().SetActive(ctx, "ghost", true)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestPersonnelRepo(t *testing.T) {
	t.Parallel()
	s := testStore(t)
	ctx := context.Background()

	p1 := testPerson("P001", "quito")
	p1.LastName = "Zamora"
	p2 := testPerson("P002", "quito")
	p2.LastName = "Andrade"
	p3 := testPerson("P003", "cuenca")

	for _, p := range []domain.Person{p1, p2, p3} {
		require.NoError(t, s.Personnel().Create(ctx, p))
	}

	t.Run("list is city scoped and ordered", func(t *testing.T) {
		got, err := s.Personnel().ListActiveByCity(ctx, "quito")
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, "P002", got[0].ID) // Andrade before Zamora
		require.Equal(t, "P001", got[1].ID)
	})

	t.Run("inactive persons drop out of the roster", func(t *testing.T) {
		require.NoError(t, s.Personnel().SetStatus(ctx, "P001", domain.PersonInactive))
		got, err := s.Personnel().ListActiveByCity(ctx, "quito")
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "P002", got[0].ID)
	})

	t.Run("duplicate id", func(t *testing.T) {
		err := s.Personnel().Create(ctx, p3)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestAttendanceRepo(t *testing.T) {
	t.Parallel()
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Personnel().Create(ctx, testPerson("P001", "quito")))

	entry := testEntry("P001", "2024-01-10")
	require.NoError(t, s.Attendance().Insert(ctx, entry))

	t.Run("round trip", func(t *testing.T) {
		got, err := s.Attendance().GetByRecordID(ctx, entry.RecordID)
		require.NoError(t, err)
		require.Equal(t, entry.PersonID, got.PersonID)
		require.Equal(t, entry.TimeIn, got.TimeIn)
		require.Equal(t, entry.TimeOut, got.TimeOut)
		require.NotNil(t, got.HoursWorked)
		require.InDelta(t, 6.0, *got.HoursWorked, 0.001)
	})

	t.Run("duplicate person and day hits the unique index", func(t *testing.T) {
		dup := testEntry("P001", "2024-01-10")
		err := s.Attendance().Insert(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("same person on another day is fine", func(t *testing.T) {
		require.NoError(t, s.Attendance().Insert(ctx, testEntry("P001", "2024-01-11")))
	})

	t.Run("open entry keeps hours null", func(t *testing.T) {
		open := testEntry("P001", "2024-01-12")
		open.TimeOut = ""
		open.HoursWorked = nil
		require.NoError(t, s.Attendance().Insert(ctx, open))

		got, err := s.Attendance().GetByRecordID(ctx, open.RecordID)
		require.NoError(t, err)
		require.Empty(t, got.TimeOut)
		require.Nil(t, got.HoursWorked)
	})

	t.Run("list by city and day", func(t *testing.T) {
		got, err := s.Attendance().ListByCityAndDay(ctx, "quito", "2024-01-10")
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, entry.RecordID, got[0].RecordID)

		got, err = s.Attendance().ListByCityAndDay(ctx, "cuenca", "2024-01-10")
		require.NoError(t, err)
		require.Empty(t, got)
	})
}

func TestAttendanceInsertRace(t *testing.T) {
	t.Parallel()
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Personnel().Create(ctx, testPerson("P001", "quito")))

	const attempts = 8
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.Attendance().Insert(ctx, testEntry("P001", "2024-02-01"))
		}(i)
	}
	wg.Wait()

	var ok, dup int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		default:
			require.ErrorIs(t, err, store.ErrAlreadyExists)
			dup++
		}
	}
	require.Equal(t, 1, ok)
	require.Equal(t, attempts-1, dup)
}

func TestWithTx(t *testing.T) {
	t.Parallel()
	s := testStore(t)
	ctx := context.Background()

	t.Run("rollback on error", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Personnel().Create(ctx, testPerson("P100", "quito")); err != nil {
				return err
			}
			return fmt.Errorf("boom")
		})
		require.Error(t, err)

		_, err = s.Personnel().GetByID(ctx, "P100")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("commit on success", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			return tx.Personnel().Create(ctx, testPerson("P101", "quito"))
		})
		require.NoError(t, err)

		_, err = s.Personnel().GetByID(ctx, "P101")
		require.NoError(t, err)
	})
}
