package execstream

import (
	"errors"
	"os"
	"syscall"
)

// isPipeClosed reports whether a write-side error indicates that the
// receiving end of the channel is gone, typically because the process has
// exited or closed that channel. The condition is provisional: it is
// reconciled against the final exit status before being surfaced.
func isPipeClosed(writeError error) bool {
	return errors.Is(writeError, syscall.EPIPE)
}

// isBenignCloseError reports whether an error from closing the process
// input channel is harmless. Descriptors of an already-exited process are
// reported as already closed, and on some platforms as EINVAL; exactly
// these conditions are swallowed, everything else is surfaced. The EINVAL
// case mirrors behavior observed with stale descriptors on Windows and is
// inherently platform-dependent.
func isBenignCloseError(closeError error) bool {
	return errors.Is(closeError, os.ErrClosed) || errors.Is(closeError, syscall.EINVAL)
}

// workerOutcome captures at most one fault from a worker goroutine. It is
// written only by the owning worker and read only after the worker has been
// joined, so no synchronization beyond the join channel is required.
type workerOutcome struct {
	// hardFault is a fault captured verbatim for re-raising on the
	// coordinator side.
	hardFault error

	// pipeClosedFault is the provisional broken-pipe condition awaiting
	// reconciliation against the exit status.
	pipeClosedFault error
}
