package sim

import "errors"

var (
	// ErrBadParams indicates a parameter set that fails validation.
	ErrBadParams = errors.New("sim: invalid parameters")

	// ErrNoProcesses means a run was started with an empty process set.
	ErrNoProcesses = errors.New("sim: no processes generated")

	// ErrTruncated means the safety cap stopped a run before the event
	// queue drained. Statistics still cover everything observed.
	ErrTruncated = errors.New("sim: time limit reached")
)
