package sqlite

import (
	"context"
	"database/sql"

	"github.com/andeanops/rollcall/internal/attendance/domain"
)

type attendanceRepo struct {
	q dbtx
}

const attendanceColumns = `record_id, person_id, full_name, city, day, time_in, time_out, shift_type, hours_worked, registered_by, created_at`

func scanAttendance(row interface{ Scan(dest ...any) error }) (domain.AttendanceEntry, error) {
	var (
		e         domain.AttendanceEntry
		hours     sql.NullFloat64
		shiftType string
	)
	err := row.Scan(&e.RecordID, &e.PersonID, &e.FullName, &e.City, &e.Day,
		&e.TimeIn, &e.TimeOut, &shiftType, &hours, &e.RegisteredBy, &e.CreatedAt)
	if err != nil {
		return domain.AttendanceEntry{}, mapNotFound(err)
	}
	e.ShiftType = domain.ShiftType(shiftType)
	e.HoursWorked = floatPtr(hours)
	return e, nil
}

// Insert stores an open shift with time_out '' rather than NULL; the
// domain treats the empty string as "still clocked in".
func (r *attendanceRepo) Insert(ctx context.Context, e domain.AttendanceEntry) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO attendance_entries (`+attendanceColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.RecordID, e.PersonID, e.FullName, e.City, e.Day,
		e.TimeIn, e.TimeOut, string(e.ShiftType), nullFloat(e.HoursWorked),
		e.RegisteredBy, e.CreatedAt)
	return mapConstraint(err)
}

func (r *attendanceRepo) GetByRecordID(ctx context.Context, recordID string) (domain.AttendanceEntry, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance_entries
		WHERE record_id = ?`, recordID)
	return scanAttendance(row)
}

func (r *attendanceRepo) ListByCityAndDay(ctx context.Context, city, day string) ([]domain.AttendanceEntry, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance_entries
		WHERE city = ? AND day = ?
		ORDER BY created_at, record_id`, city, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AttendanceEntry
	for rows.Next() {
		e, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
