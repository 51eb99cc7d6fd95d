package execstream

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/datalad/datasalad/internal/utils"
)

const (
	commandDescriptionTemplateConstant       = "command %q"
	diedWithSignalTemplateConstant           = " died with %s"
	diedWithUnknownSignalTemplateConstant    = " died with unknown signal %d"
	nonZeroExitTemplateConstant              = " returned non-zero exit status %d"
	unknownExitStatusSuffixConstant          = " errored with unknown exit status"
	workingDirectorySuffixTemplateConstant   = " at CWD %s"
	messageSuffixTemplateConstant            = " [%s]"
	standardErrorSuffixTemplateConstant      = " [stderr: %s]"
	undecodableStandardErrorTemplateConstant = "<undecodable %s>"
	commandStartFailureTemplateConstant      = "unable to start command %q: %v"

	standardErrorKeepFrontConstant = 60
	standardErrorKeepBackConstant  = 0
)

// CommandFailedError is raised when the process exits with a non-zero
// status and no caller or worker fault takes precedence. It carries the
// original command verbatim, the exit status, and the most recent window of
// error-channel output.
type CommandFailedError struct {
	// Command is the program and argument list exactly as invoked.
	Command []string

	// ExitStatus is the reconciled exit status of the process.
	ExitStatus ExitStatus

	// StandardErrorTail holds at most one chunk-size window of the most
	// recent bytes written to the error channel.
	StandardErrorTail []byte

	// WorkingDirectory is the configured working directory, when any.
	WorkingDirectory string

	// Message optionally carries contextual information added by callers.
	Message string
}

// Error renders the failure with the command verbatim, a description of the
// exit status (naming terminating signals when known), and a truncated view
// of the captured error text.
func (failure CommandFailedError) Error() string {
	var description strings.Builder
	description.WriteString(fmt.Sprintf(commandDescriptionTemplateConstant, failure.Command))

	switch {
	case failure.ExitStatus.Signaled():
		resolvedSignalName := signalName(failure.ExitStatus.SignalNumber())
		if len(resolvedSignalName) > 0 {
			description.WriteString(fmt.Sprintf(diedWithSignalTemplateConstant, resolvedSignalName))
		} else {
			description.WriteString(fmt.Sprintf(diedWithUnknownSignalTemplateConstant, failure.ExitStatus.SignalNumber()))
		}
	case failure.ExitStatus.Known && failure.ExitStatus.Code != 0:
		description.WriteString(fmt.Sprintf(nonZeroExitTemplateConstant, failure.ExitStatus.Code))
	default:
		description.WriteString(unknownExitStatusSuffixConstant)
	}

	if len(failure.WorkingDirectory) > 0 {
		description.WriteString(fmt.Sprintf(workingDirectorySuffixTemplateConstant, failure.WorkingDirectory))
	}
	if len(failure.Message) > 0 {
		description.WriteString(fmt.Sprintf(messageSuffixTemplateConstant, failure.Message))
	}

	if len(failure.StandardErrorTail) > 0 {
		standardErrorText := ""
		if utf8.Valid(failure.StandardErrorTail) {
			standardErrorText = utils.TruncateString(string(failure.StandardErrorTail), standardErrorKeepFrontConstant, standardErrorKeepBackConstant)
		} else {
			standardErrorText = fmt.Sprintf(undecodableStandardErrorTemplateConstant, utils.DescribeBytes(failure.StandardErrorTail))
		}
		description.WriteString(fmt.Sprintf(standardErrorSuffixTemplateConstant, standardErrorText))
	}

	return description.String()
}

// CommandStartError reports that the process could not be spawned. It
// propagates immediately, before any worker is started.
type CommandStartError struct {
	Command []string
	Cause   error
}

// Error describes the spawn failure.
func (startError CommandStartError) Error() string {
	return fmt.Sprintf(commandStartFailureTemplateConstant, startError.Command, startError.Cause)
}

// Unwrap exposes the underlying cause for errors.Is and errors.As.
func (startError CommandStartError) Unwrap() error {
	return startError.Cause
}
