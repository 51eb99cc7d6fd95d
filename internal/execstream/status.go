package execstream

import (
	"fmt"
	"os"
	"syscall"
)

const (
	exitStatusUnknownLabelConstant   = "unknown"
	exitStatusSignalTemplateConstant = "signal %d"
	exitStatusCodeTemplateConstant   = "exit status %d"
)

// ExitStatus reports how the process ended. A negative Code denotes
// termination by the signal with the negated number; Known is false until
// the coordinator has reaped the process.
type ExitStatus struct {
	Code  int
	Known bool
}

// Success reports whether the process is known to have exited with code 0.
func (status ExitStatus) Success() bool {
	return status.Known && status.Code == 0
}

// Signaled reports whether the process is known to have been terminated by a
// signal.
func (status ExitStatus) Signaled() bool {
	return status.Known && status.Code < 0
}

// SignalNumber returns the terminating signal number for a signaled status.
func (status ExitStatus) SignalNumber() int {
	return -status.Code
}

// String renders a short human-readable status description.
func (status ExitStatus) String() string {
	if !status.Known {
		return exitStatusUnknownLabelConstant
	}
	if status.Signaled() {
		return fmt.Sprintf(exitStatusSignalTemplateConstant, status.SignalNumber())
	}
	return fmt.Sprintf(exitStatusCodeTemplateConstant, status.Code)
}

func exitStatusFromProcessState(processState *os.ProcessState) ExitStatus {
	if processState == nil {
		return ExitStatus{}
	}
	if waitStatus, isWaitStatus := processState.Sys().(syscall.WaitStatus); isWaitStatus && waitStatus.Signaled() {
		return ExitStatus{Code: -int(waitStatus.Signal()), Known: true}
	}
	return ExitStatus{Code: processState.ExitCode(), Known: true}
}
