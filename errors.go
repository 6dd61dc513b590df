package rowsync

import "errors"

// Errors
var (
	// ErrNoPool is returned by New when the configuration carries no pool.
	// This is a setup mistake, not a runtime command failure: command
	// failures surface later as StatusFailed notifications.
	ErrNoPool = errors.New("pool is not set")
)
