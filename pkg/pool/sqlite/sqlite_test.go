package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowsync/rowsync/pkg/pool"
	"github.com/rowsync/rowsync/pkg/pool/sqlite"
)

type foo struct {
	ID   uint32
	Text string
	Flag bool
}

func (f foo) PrimaryKey() uint32 { return f.ID }

func scanFoo(rows *sql.Rows) (foo, error) {
	var f foo
	err := rows.Scan(&f.ID, &f.Text, &f.Flag)
	return f, err
}

func openTestPool(t *testing.T) *sqlite.Pool[foo] {
	t.Helper()
	p, err := sqlite.Open(":memory:", scanFoo)
	require.NoError(t, err)
	t.Cleanup(func() { p.Close() })

	// Every pooled connection gets its own :memory: database; pin to one.
	p.DB().SetMaxOpenConns(1)

	ctx := context.Background()
	require.NoError(t, p.Exec(ctx,
		`CREATE TABLE foos (id INTEGER PRIMARY KEY, text TEXT NOT NULL, flag BOOLEAN NOT NULL DEFAULT 0)`))
	return p
}

func TestQueryAllDecodesRows(t *testing.T) {
	p := openTestPool(t)
	ctx := context.Background()

	require.NoError(t, p.Exec(ctx, `INSERT INTO foos (text, flag) VALUES ('test', 0), ('hello', 1)`))

	rows, err := p.QueryAll(ctx, `SELECT id, text, flag FROM foos ORDER BY id`)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, foo{ID: 1, Text: "test", Flag: false}, rows[0])
	assert.Equal(t, foo{ID: 2, Text: "hello", Flag: true}, rows[1])
}

func TestQueryAllBindsArgs(t *testing.T) {
	p := openTestPool(t)
	ctx := context.Background()

	require.NoError(t, p.Exec(ctx, `INSERT INTO foos (text) VALUES (?), (?)`, "keep", "skip"))

	rows, err := p.QueryAll(ctx, `SELECT id, text, flag FROM foos WHERE text = ?`, "keep")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "keep", rows[0].Text)
}

func TestQueryAllEmptyResult(t *testing.T) {
	p := openTestPool(t)

	rows, err := p.QueryAll(context.Background(), `SELECT id, text, flag FROM foos`)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestQueryErrorCarriesStatement(t *testing.T) {
	p := openTestPool(t)

	_, err := p.QueryAll(context.Background(), `SELECT * FROM missing`)
	require.Error(t, err)

	var qerr *pool.QueryError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, `SELECT * FROM missing`, qerr.SQL)
}

func TestScanErrorSurfacesAsQueryError(t *testing.T) {
	p := openTestPool(t)
	ctx := context.Background()
	require.NoError(t, p.Exec(ctx, `INSERT INTO foos (text) VALUES ('x')`))

	// Wrong column count for scanFoo.
	bad := sqlite.FromDB(p.DB(), scanFoo)
	_, err := bad.QueryAll(ctx, `SELECT id FROM foos`)
	var qerr *pool.QueryError
	require.ErrorAs(t, err, &qerr)
}
