package sqlite

import (
	"context"
	"time"

	"github.com/andeanops/rollcall/internal/attendance/domain"
)

type personnelRepo struct {
	q dbtx
}

const personColumns = `id, first_name, last_name, city, position, supervisor_username, status, created_at, updated_at`

func scanPerson(row interface{ Scan(dest ...any) error }) (domain.Person, error) {
	var (
		p      domain.Person
		status string
	)
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.City, &p.Position,
		&p.SupervisorUsername, &status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Person{}, mapNotFound(err)
	}
	p.Status = domain.PersonStatus(status)
	return p, nil
}

func (r *personnelRepo) GetByID(ctx context.Context, id string) (domain.Person, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+personColumns+`
		FROM personnel
		WHERE id = ?`, id)
	return scanPerson(row)
}

func (r *personnelRepo) ListActiveByCity(ctx context.Context, city string) ([]domain.Person, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+personColumns+`
		FROM personnel
		WHERE city = ? AND status = ?
		ORDER BY last_name, first_name`, city, string(domain.PersonActive))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *personnelRepo) Create(ctx context.Context, p domain.Person) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO personnel (`+personColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.FirstName, p.LastName, p.City, p.Position,
		p.SupervisorUsername, string(p.Status), p.CreatedAt, p.UpdatedAt)
	return mapConstraint(err)
}

func (r *personnelRepo) SetStatus(ctx context.Context, id string, status domain.PersonStatus) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE personnel
		SET status = ?, updated_at = ?
		WHERE id = ?`,
		string(status), time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
