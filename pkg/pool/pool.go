// Package pool declares the connection-pool capability the core library
// needs from a database backend, and the error type query failures are
// reported through.
//
// Concrete backends live in subpackages: [github.com/rowsync/rowsync/pkg/pool/sqlite]
// over database/sql and [github.com/rowsync/rowsync/pkg/pool/postgres] over
// pgx. A backend is expected to be cheap to share: the same pool value is
// handed to every concurrently in-flight command, and the pool's own
// internals guard connection checkout.
package pool

import (
	"context"
	"fmt"
)

// Pool executes one SQL statement and decodes every resulting row into R.
//
// args are bound parameters in the backend's placeholder syntax. Passing
// SQL assembled by string interpolation works but is an injection hazard;
// prefer args for anything derived from input.
type Pool[R any] interface {
	QueryAll(ctx context.Context, sql string, args ...any) ([]R, error)
}

// QueryError tags a driver or decode failure with the statement that
// produced it.
type QueryError struct {
	SQL string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %q: %v", e.SQL, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
