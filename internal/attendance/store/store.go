package store

import (
	"context"
	"errors"

	"github.com/andeanops/rollcall/internal/attendance/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable; the services never touch SQL directly.
type Store interface {
	Credentials() Credentials
	Personnel() Personnel
	Attendance() Attendance

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional view of the store: the same repositories, scoped
// to a single transaction.
type Tx interface {
	Credentials() Credentials
	Personnel() Personnel
	Attendance() Attendance

	Commit() error
	Rollback() error
}

type Credentials interface {
	// GetByUsername is used during login and provisioning uniqueness checks.
	GetByUsername(ctx context.Context, username string) (domain.Credential, error)

	// Create inserts a new credential. Returns ErrAlreadyExists when the
	// username is taken.
	Create(ctx context.Context, c domain.Credential) error

	// SetActive flips the active flag and bumps updated_at.
	SetActive(ctx context.Context, username string, active bool) error

	// IsEmpty returns true if no credential has been provisioned yet.
	// Bootstrap is only permitted while this holds.
	IsEmpty(ctx context.Context) (bool, error)
}

type Personnel interface {
	// GetByID returns a person by roster id.
	GetByID(ctx context.Context, id string) (domain.Person, error)

	// ListActiveByCity returns active persons of a city ordered by
	// (last_name, first_name) for deterministic rosters.
	ListActiveByCity(ctx context.Context, city string) ([]domain.Person, error)

	// Create inserts a new person. Returns ErrAlreadyExists on a taken id.
	Create(ctx context.Context, p domain.Person) error

	// SetStatus updates the person status and bumps updated_at.
	SetStatus(ctx context.Context, id string, status domain.PersonStatus) error
}

type Attendance interface {
	// Insert appends one attendance entry. The (person_id, day) pair is
	// guarded by a storage-level uniqueness constraint: a duplicate insert
	// returns ErrAlreadyExists, making concurrent registration races safe
	// without a separate existence check.
	Insert(ctx context.Context, e domain.AttendanceEntry) error

	// GetByRecordID returns a single entry.
	GetByRecordID(ctx context.Context, recordID string) (domain.AttendanceEntry, error)

	// ListByCityAndDay returns all entries for a city and day in insertion
	// order.
	ListByCityAndDay(ctx context.Context, city, day string) ([]domain.AttendanceEntry, error)
}
