package sqlite

import (
	"database/sql"

	"github.com/andeanops/rollcall/internal/attendance/store"
)

type sqliteTx struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *sqliteTx {
	return &sqliteTx{tx: tx}
}

func (t *sqliteTx) Commit() error   { return t.tx.Commit() }
func (t *sqliteTx) Rollback() error { return t.tx.Rollback() }

func (t *sqliteTx) Credentials() store.Credentials { return &credentialsRepo{q: t.tx} }
func (t *sqliteTx) Personnel() store.Personnel     { return &personnelRepo{q: t.tx} }
func (t *sqliteTx) Attendance() store.Attendance   { return &attendanceRepo{q: t.tx} }
