package database

import (
	"context"
	"database/sql"
)

// DBTX покрывает *sql.DB и *sql.Tx, чтобы одни и те же запросы
// работали и в транзакции, и вне её.
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Queries содержит SQL-запросы сервиса. Запросы немногочисленны и
// используют массивные параметры, поэтому поддерживаются вручную.
type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}
