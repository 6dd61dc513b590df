package rowsync

import (
	"context"
)

// EntityID is an opaque handle to one materialized entity. Allocation is
// owned by the entity store, not by this library.
type EntityID uint64

// EntityStore is the host-side collection of materialized entities the
// reconciler merges results into. pkg/store ships a slice-backed
// implementation; an ECS-style host adapts its own world instead.
//
// The reconciler only ever calls these methods from within Tick, so an
// implementation needs no internal locking as long as the host keeps other
// entity access off the tick goroutine while Tick runs.
type EntityStore[K comparable, R Record[K]] interface {
	// Each calls fn for every entity in a stable iteration order until fn
	// returns false.
	Each(fn func(EntityID, R) bool)

	// Spawn materializes a new entity holding r and returns its handle.
	Spawn(r R) EntityID

	// Replace swaps the record held by an existing entity.
	Replace(id EntityID, r R)
}

// Tick runs one scheduling pass: newly submitted commands are started in
// submission order, then every outstanding task is polled exactly once and
// completed ones are reconciled against store. Tick never blocks on a
// database round-trip; a pass over N pending tasks is N non-blocking polls.
//
// ctx is handed to command functions when their task is spawned. Tick
// itself never fails: command failures surface as StatusFailed
// notifications, isolated per command.
func (c *Client[K, R]) Tick(ctx context.Context, store EntityStore[K, R]) {
	c.startQueued(ctx)
	c.reconcile(store)
}

// startQueued is the intake stage: it drains the submission queue, emits
// Started per command and hands each command's function to the runner.
// Purely synchronous bookkeeping; the spawned work runs elsewhere.
func (c *Client[K, R]) startQueued(ctx context.Context) {
	c.mu.Lock()
	cmds := c.queued
	c.queued = nil
	c.mu.Unlock()

	for _, cmd := range cmds {
		c.emit(Status[K, R]{Kind: StatusStarted, Command: cmd.id, Label: cmd.label})
		c.log.Debug("command started", "id", cmd.id, "label", cmd.label)
		fn := cmd.fn
		handle := c.runner.Spawn(ctx, func(ctx context.Context) ([]R, error) {
			return fn(ctx, c.pool)
		})
		c.outstanding = append(c.outstanding, entry[K, R]{
			id:          cmd.id,
			label:       cmd.label,
			synchronize: cmd.synchronize,
			handle:      handle,
		})
	}
	c.inflight.Store(int64(len(c.outstanding)))
}

// reconcile polls every outstanding task once. Completed tasks are removed
// in the same pass; pending ones are retained for the next tick.
func (c *Client[K, R]) reconcile(store EntityStore[K, R]) {
	kept := c.outstanding[:0]
	for _, e := range c.outstanding {
		records, err, done := e.handle.Poll()
		if !done {
			kept = append(kept, e)
			continue
		}
		if err != nil {
			c.failed.Add(1)
			c.log.Warn("command failed", "id", e.id, "label", e.label, "err", err)
			c.emit(Status[K, R]{Kind: StatusFailed, Command: e.id, Label: e.label, Err: err})
			continue
		}
		c.completed.Add(1)
		c.log.Debug("command completed", "id", e.id, "label", e.label, "records", len(records))
		if !e.synchronize {
			c.emit(Status[K, R]{Kind: StatusReturned, Command: e.id, Label: e.label, Records: records})
			continue
		}
		for _, rec := range records {
			c.apply(store, e, rec)
		}
	}
	// Zero the tail so dropped handles are collectable.
	for i := len(kept); i < len(c.outstanding); i++ {
		c.outstanding[i] = entry[K, R]{}
	}
	c.outstanding = kept
	c.inflight.Store(int64(len(c.outstanding)))
}

// apply upserts one record: the first entity with an equal primary key is
// replaced, otherwise a new entity is spawned. The scan is linear over the
// store's iteration order; when several entities already share the key (a
// host-induced inconsistency) only the first match is updated.
func (c *Client[K, R]) apply(store EntityStore[K, R], e entry[K, R], rec R) {
	key := rec.PrimaryKey()
	var target EntityID
	found := false
	store.Each(func(id EntityID, existing R) bool {
		if existing.PrimaryKey() == key {
			target = id
			found = true
			return false
		}
		return true
	})
	if found {
		store.Replace(target, rec)
		c.emit(Status[K, R]{Kind: StatusUpdated, Command: e.id, Label: e.label, Key: key})
	} else {
		store.Spawn(rec)
		c.emit(Status[K, R]{Kind: StatusSpawned, Command: e.id, Label: e.label, Key: key})
	}
}
