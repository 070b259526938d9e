package sqlite

import (
	"context"
	"time"

	"github.com/andeanops/rollcall/internal/attendance/domain"
)

type credentialsRepo struct {
	q dbtx
}

const credentialColumns = `username, password_hash, city, role, active, created_at, updated_at`

func scanCredential(row interface{ Scan(dest ...any) error }) (domain.Credential, error) {
	var (
		c    domain.Credential
		role string
	)
	err := row.Scan(&c.Username, &c.PasswordHash, &c.City, &role, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Credential{}, mapNotFound(err)
	}
	c.Role = domain.Role(role)
	return c, nil
}

func (r *credentialsRepo) GetByUsername(ctx context.Context, username string) (domain.Credential, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+credentialColumns+`
		FROM credentials
		WHERE username = ?`, username)
	return scanCredential(row)
}

func (r *credentialsRepo) Create(ctx context.Context, c domain.Credential) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO credentials (`+credentialColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.Username, c.PasswordHash, c.City, string(c.Role), c.Active, c.CreatedAt, c.UpdatedAt)
	return mapConstraint(err)
}

func (r *credentialsRepo) SetActive(ctx context.Context, username string, active bool) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE credentials
		SET active = ?, updated_at = ?
		WHERE username = ?`,
		active, time.Now().UTC(), username)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *credentialsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var n int
	row := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM credentials`)
	if err := row.Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}
