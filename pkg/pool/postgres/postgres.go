// Package postgres implements pool.Pool over jackc/pgx's pgxpool.
//
// Rows are decoded by struct field name via pgx's collection helpers, so R
// needs db struct tags (or exported fields matching column names) and no
// scan function.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rowsync/rowsync/pkg/pool"
)

type Pool[R any] struct {
	db *pgxpool.Pool
}

// Open connects to the database at url (a pgx connection string) and
// verifies the connection with a ping.
func Open[R any](ctx context.Context, url string) (*Pool[R], error) {
	db, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return &Pool[R]{db: db}, nil
}

// FromPool wraps an already configured pgxpool.Pool.
func FromPool[R any](db *pgxpool.Pool) *Pool[R] {
	return &Pool[R]{db: db}
}

func (p *Pool[R]) QueryAll(ctx context.Context, sql string, args ...any) ([]R, error) {
	rows, err := p.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, &pool.QueryError{SQL: sql, Err: err}
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[R])
	if err != nil {
		return nil, &pool.QueryError{SQL: sql, Err: err}
	}
	return out, nil
}

// Exec runs a statement without decoding rows.
func (p *Pool[R]) Exec(ctx context.Context, sql string, args ...any) error {
	if _, err := p.db.Exec(ctx, sql, args...); err != nil {
		return &pool.QueryError{SQL: sql, Err: err}
	}
	return nil
}

// DB exposes the underlying pgx pool for schema setup or migrations.
func (p *Pool[R]) DB() *pgxpool.Pool {
	return p.db
}

func (p *Pool[R]) Close() {
	p.db.Close()
}
