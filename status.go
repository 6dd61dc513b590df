package rowsync

// StatusKind tags a Status with the lifecycle transition it reports.
type StatusKind int

const (
	// StatusStarted is emitted once per command, in submission order, in
	// the tick that picks the command up.
	StatusStarted StatusKind = iota + 1

	// StatusReturned carries the full result vector of a completed
	// non-synchronizing command. No entities were touched.
	StatusReturned

	// StatusSpawned reports that a record from a synchronizing command had
	// no entity with an equal primary key, so a new entity was created.
	StatusSpawned

	// StatusUpdated reports that a record from a synchronizing command
	// replaced the record of an existing entity with an equal primary key.
	StatusUpdated

	// StatusFailed carries the error of a command whose function returned
	// one. The command's entry is dropped; no entities were touched.
	StatusFailed
)

func (k StatusKind) String() string {
	switch k {
	case StatusStarted:
		return "started"
	case StatusReturned:
		return "returned"
	case StatusSpawned:
		return "spawned"
	case StatusUpdated:
		return "updated"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Status is a one-shot report of a command lifecycle transition.
//
// Every submitted command produces exactly one Started followed by exactly
// one terminal report: a Returned, one or more Spawned/Updated, or a
// Failed. A command with a Started but no terminal report yet is still in
// flight.
type Status[K comparable, R Record[K]] struct {
	Kind    StatusKind
	Command CommandID
	Label   string

	// Key is set for Spawned and Updated.
	Key K

	// Records is set for Returned.
	Records []R

	// Err is set for Failed.
	Err error
}
