package rowsync

import (
	"context"
	"sync/atomic"

	"github.com/rowsync/rowsync/pkg/pool"
)

// CommandID identifies one submitted command across its lifecycle.
type CommandID uint64

// IDSource issues CommandIDs from an atomic counter starting at 1.
//
// The counter wraps on overflow and never issues 0; ids are only compared
// for recency within the short in-flight window, so wraparound is harmless.
// The zero value is ready to use. A process-wide source backs the
// package-level constructors; tests that want deterministic ids hand their
// own source to a [Commands] factory.
type IDSource struct {
	n atomic.Uint64
}

// Next returns the next id.
func (s *IDSource) Next() CommandID {
	id := CommandID(s.n.Add(1))
	for id == 0 {
		id = CommandID(s.n.Add(1))
	}
	return id
}

var commandIDs IDSource

// Func is the executable unit of a command: given a pool, run some database
// work and return the decoded records. Nothing runs at construction time;
// the function is first invoked on the task runner after the command is
// picked up by a tick.
//
// Callbacks that need backend-specific capabilities beyond
// [pool.Pool.QueryAll] may type-assert p to the concrete pool they were
// built for.
type Func[K comparable, R Record[K]] func(ctx context.Context, p pool.Pool[R]) ([]R, error)

// Command is an immutable unit of deferred database work: an id, an
// optional label, a synchronize flag, and a [Func].
//
// Commands are safe to copy; copies share the same function and id. After
// submission the command's function belongs to the pipeline, but the id and
// label remain readable for correlating status notifications.
type Command[K comparable, R Record[K]] struct {
	id          CommandID
	label       string
	synchronize bool
	fn          Func[K, R]
}

// ID returns the command's unique identifier.
func (c *Command[K, R]) ID() CommandID { return c.id }

// Label returns the diagnostic label, typically the literal SQL text for
// query-form commands. Empty means unlabeled.
func (c *Command[K, R]) Label() string { return c.label }

// WillSynchronize reports whether the command's results will be reconciled
// into the entity store (true) or only reported back (false).
func (c *Command[K, R]) WillSynchronize() bool { return c.synchronize }

// Commands constructs typed commands, so that call sites spell the type
// arguments once:
//
//	var cmds rowsync.Commands[uint32, Foo]
//	client.Submit(cmds.Query("SELECT * FROM foos", true))
//
// IDs may be set to a private [IDSource] for deterministic ids in tests;
// when nil the process-wide source is used.
type Commands[K comparable, R Record[K]] struct {
	IDs *IDSource
}

// Query builds a command from literal SQL. When invoked, the statement is
// passed to the pool verbatim and all resulting rows are decoded.
//
// The string is not parameterized: interpolating input into it is an
// injection hazard. Prefer [Commands.Callback] with bound arguments for
// anything assembled at runtime.
func (f Commands[K, R]) Query(sqlText string, synchronize bool) *Command[K, R] {
	return f.Callback(sqlText, synchronize, func(ctx context.Context, p pool.Pool[R]) ([]R, error) {
		return p.QueryAll(ctx, sqlText)
	})
}

// Callback builds a command from an arbitrary function with pool access,
// for parameterized or multi-statement work not expressible as a single
// literal string. label is diagnostic only and may be empty.
func (f Commands[K, R]) Callback(label string, synchronize bool, fn Func[K, R]) *Command[K, R] {
	ids := f.IDs
	if ids == nil {
		ids = &commandIDs
	}
	return &Command[K, R]{
		id:          ids.Next(),
		label:       label,
		synchronize: synchronize,
		fn:          fn,
	}
}

// Query builds a command from literal SQL using the process-wide id source.
// See [Commands.Query].
func Query[K comparable, R Record[K]](sqlText string, synchronize bool) *Command[K, R] {
	return Commands[K, R]{}.Query(sqlText, synchronize)
}

// Callback builds a command from a function using the process-wide id
// source. See [Commands.Callback].
func Callback[K comparable, R Record[K]](label string, synchronize bool, fn Func[K, R]) *Command[K, R] {
	return Commands[K, R]{}.Callback(label, synchronize, fn)
}
