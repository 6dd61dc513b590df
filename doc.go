// Package rowsync lets an application issue database commands without
// blocking its main loop and reconciles the results into a live,
// entity-keyed object store.
//
// # Commands
//
// A [Command] is a unit of deferred database work: literal SQL built with
// [Query], or an arbitrary function with pool access built with [Callback].
// Construction is pure; nothing touches the database until the command is
// submitted and picked up by a tick. The [Commands] factory carries the
// type arguments so call sites stay short.
//
// # The tick loop
//
// The host calls [Client.Tick] once per scheduling tick. Each tick starts
// newly submitted commands in submission order and polls every outstanding
// task exactly once, without blocking: database round-trips run on the task
// runner's workers, and the tick only ever observes finished results.
// Completion order across commands is not guaranteed; within one command's
// result vector, record order is preserved.
//
// # Reconciliation
//
// A command built with synchronize=true merges its records into the host's
// [EntityStore] by primary key: a record whose key matches an existing
// entity replaces that entity's record, any other record spawns a new
// entity. A command built with synchronize=false leaves entities alone and
// reports its full result vector instead, for callers who want to inspect
// rows directly.
//
// # Status notifications
//
// Every lifecycle transition is reported as a [Status]: Started on intake,
// then Returned, Spawned/Updated, or Failed on completion. Observers read
// them with [Client.Drain] at their own cadence. A failing command affects
// only its own id; the tick loop itself never fails.
//
// # Backends
//
// [github.com/rowsync/rowsync/pkg/pool/sqlite] executes against SQLite
// through database/sql; [github.com/rowsync/rowsync/pkg/pool/postgres]
// executes against PostgreSQL through pgx. Any type implementing
// [github.com/rowsync/rowsync/pkg/pool.Pool] works as a backend.
package rowsync
