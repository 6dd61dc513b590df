// Package sqlite implements pool.Pool over database/sql with the
// mattn/go-sqlite3 driver.
//
// Row decoding is caller-supplied: a [ScanFunc] turns the current row of a
// *sql.Rows into one record, the same way the record type would implement
// a from-row hook in an ORM. Use ":memory:" as the DSN for tests.
package sqlite

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rowsync/rowsync/pkg/pool"
)

// ScanFunc decodes the row the iterator is currently positioned on.
// It must call rows.Scan exactly once and must not advance the iterator.
type ScanFunc[R any] func(rows *sql.Rows) (R, error)

type Pool[R any] struct {
	db   *sql.DB
	scan ScanFunc[R]
}

// Open opens (or creates) the database at dsn. The connection is verified
// with a ping so that configuration mistakes surface here rather than in
// the first command's failure notification.
func Open[R any](dsn string, scan ScanFunc[R]) (*Pool[R], error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return &Pool[R]{db: db, scan: scan}, nil
}

// FromDB wraps an already configured *sql.DB.
func FromDB[R any](db *sql.DB, scan ScanFunc[R]) *Pool[R] {
	return &Pool[R]{db: db, scan: scan}
}

func (p *Pool[R]) QueryAll(ctx context.Context, query string, args ...any) ([]R, error) {
	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &pool.QueryError{SQL: query, Err: err}
	}
	defer rows.Close()

	var out []R
	for rows.Next() {
		r, err := p.scan(rows)
		if err != nil {
			return nil, &pool.QueryError{SQL: query, Err: err}
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &pool.QueryError{SQL: query, Err: err}
	}
	return out, nil
}

// Exec runs a statement without decoding rows, for schema setup and other
// bookkeeping outside the command pipeline.
func (p *Pool[R]) Exec(ctx context.Context, query string, args ...any) error {
	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		return &pool.QueryError{SQL: query, Err: err}
	}
	return nil
}

// DB exposes the underlying handle for schema setup or migrations.
func (p *Pool[R]) DB() *sql.DB {
	return p.db
}

func (p *Pool[R]) Close() error {
	return p.db.Close()
}
