package rowsync

import (
	"sync"
	"sync/atomic"

	"github.com/rowsync/rowsync/pkg/logger"
	"github.com/rowsync/rowsync/pkg/pool"
	"github.com/rowsync/rowsync/pkg/tasks"
)

// Config assembles a [Client].
type Config[K comparable, R Record[K]] struct {
	// Pool executes command SQL. Required.
	Pool pool.Pool[R]

	// Runner schedules command functions on background workers. Defaults
	// to a goroutine-per-task pool capped at Workers.
	Runner tasks.Runner[[]R]

	// Workers caps the default runner's concurrency; <= 0 means no cap.
	// Ignored when Runner is set.
	Workers int

	// Logger defaults to a no-op logger.
	Logger logger.Logger
}

// Client drives the command pipeline: commands go in through [Client.Submit],
// each [Client.Tick] starts newly submitted commands and reconciles whichever
// outstanding tasks have completed, and lifecycle reports come out through
// [Client.Drain].
//
// Submit and Drain may be called from any goroutine. Tick must be called
// from a single goroutine (the host's tick loop); it is the only place
// entities are touched, so the entity store needs no locking of its own.
type Client[K comparable, R Record[K]] struct {
	pool   pool.Pool[R]
	runner tasks.Runner[[]R]
	log    logger.Logger

	mu     sync.Mutex
	queued []*Command[K, R]

	// outstanding is owned by the tick goroutine.
	outstanding []entry[K, R]

	statusMu sync.Mutex
	statuses []Status[K, R]

	submitted atomic.Uint64
	completed atomic.Uint64
	failed    atomic.Uint64
	inflight  atomic.Int64
}

// entry tracks one in-flight command across ticks.
type entry[K comparable, R Record[K]] struct {
	id          CommandID
	label       string
	synchronize bool
	handle      tasks.Handle[[]R]
}

// New builds a Client from cfg. It returns [ErrNoPool] if cfg.Pool is nil.
func New[K comparable, R Record[K]](cfg Config[K, R]) (*Client[K, R], error) {
	if cfg.Pool == nil {
		return nil, ErrNoPool
	}
	runner := cfg.Runner
	if runner == nil {
		runner = tasks.NewPool[[]R](cfg.Workers)
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Nop{}
	}
	return &Client[K, R]{
		pool:   cfg.Pool,
		runner: runner,
		log:    log,
	}, nil
}

// Submit queues cmd for the next tick. It never blocks on I/O and performs
// no database work itself.
func (c *Client[K, R]) Submit(cmd *Command[K, R]) {
	c.mu.Lock()
	c.queued = append(c.queued, cmd)
	c.mu.Unlock()
	c.submitted.Add(1)
	c.log.Debug("command submitted", "id", cmd.id, "label", cmd.label)
}

// Drain returns all accumulated status notifications in emission order and
// clears the queue. Unread notifications accumulate between calls; how
// often to drain is the observer's own cadence.
func (c *Client[K, R]) Drain() []Status[K, R] {
	c.statusMu.Lock()
	out := c.statuses
	c.statuses = nil
	c.statusMu.Unlock()
	return out
}

func (c *Client[K, R]) emit(s Status[K, R]) {
	c.statusMu.Lock()
	c.statuses = append(c.statuses, s)
	c.statusMu.Unlock()
}

// Stats is a point-in-time snapshot of pipeline counters.
type Stats struct {
	// Submitted counts commands accepted by Submit.
	Submitted uint64
	// Completed counts commands whose function returned records.
	Completed uint64
	// Failed counts commands whose function returned an error.
	Failed uint64
	// Outstanding is the number of in-flight tasks after the last tick.
	Outstanding int
}

// Stats reports pipeline counters. Outstanding reflects the state as of the
// end of the last tick.
func (c *Client[K, R]) Stats() Stats {
	return Stats{
		Submitted:   c.submitted.Load(),
		Completed:   c.completed.Load(),
		Failed:      c.failed.Load(),
		Outstanding: int(c.inflight.Load()),
	}
}
