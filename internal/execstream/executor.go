package execstream

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"syscall"

	"go.uber.org/zap"
)

const (
	processStartedEventConstant       = "stream process started"
	consumerFinishedEventConstant     = "output consumer finished"
	processTerminatingEventConstant   = "terminating stream process"
	processReapedEventConstant        = "stream process reaped"
	programFieldNameConstant          = "program"
	workingDirectoryFieldNameConstant = "working_directory"
	exitStatusFieldNameConstant       = "exit_status"
	consumerFaultFieldNameConstant    = "consumer_fault"

	processWaitFailedTemplateConstant = "stream process wait failed: %w"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// OutputConsumer receives the live output stream of a running process. The
// process stays alive while the consumer runs; returning an error requests
// termination and the same error is returned verbatim from Execute.
type OutputConsumer func(stream *OutputStream) error

// StreamExecutor runs child processes as bidirectional stream transforms.
// Input chunks are fed to the process on a dedicated goroutine, the error
// channel is drained into a bounded tail, and the consumer reads output on
// the calling goroutine.
type StreamExecutor struct {
	loggerProvider LoggerProvider
}

// NewStreamExecutor builds a StreamExecutor with the provided logger source.
func NewStreamExecutor(loggerProvider LoggerProvider) *StreamExecutor {
	return &StreamExecutor{loggerProvider: loggerProvider}
}

func (executor *StreamExecutor) resolveLogger() *zap.Logger {
	if executor.loggerProvider == nil {
		return zap.NewNop()
	}
	logger := executor.loggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// Execute spawns the configured process, streams input to it, invokes the
// consumer with its output, and reconciles worker faults against the exit
// status once the process is reaped. Context cancellation terminates the
// process with SIGTERM rather than waiting for input exhaustion.
func (executor *StreamExecutor) Execute(executionContext context.Context, command StreamCommand, source InputSource, consumer OutputConsumer) error {
	if consumer == nil {
		return ErrOutputConsumerNotConfigured
	}
	effectiveCommand, validationError := command.withDefaults()
	if validationError != nil {
		return validationError
	}
	if source == nil {
		source = EmptyInputSource()
	}
	logger := executor.resolveLogger()

	processCommand := exec.CommandContext(executionContext, effectiveCommand.Program[0], effectiveCommand.Program[1:]...)
	processCommand.Dir = effectiveCommand.WorkingDirectory
	processCommand.Cancel = func() error {
		return processCommand.Process.Signal(syscall.SIGTERM)
	}

	inputPipe, inputPipeError := processCommand.StdinPipe()
	if inputPipeError != nil {
		return &CommandStartError{Command: effectiveCommand.Program, Cause: inputPipeError}
	}
	outputPipe, outputPipeError := processCommand.StdoutPipe()
	if outputPipeError != nil {
		return &CommandStartError{Command: effectiveCommand.Program, Cause: outputPipeError}
	}
	errorPipe, errorPipeError := processCommand.StderrPipe()
	if errorPipeError != nil {
		return &CommandStartError{Command: effectiveCommand.Program, Cause: errorPipeError}
	}

	if startError := processCommand.Start(); startError != nil {
		return &CommandStartError{Command: effectiveCommand.Program, Cause: startError}
	}
	logger.Debug(processStartedEventConstant,
		zap.Strings(programFieldNameConstant, effectiveCommand.Program),
		zap.String(workingDirectoryFieldNameConstant, effectiveCommand.WorkingDirectory),
	)

	drain := &errorDrain{
		errorChannel: errorPipe,
		chunkSize:    effectiveCommand.ChunkSize,
		tail:         newTailBuffer(effectiveCommand.ChunkSize),
	}
	drainDone := make(chan struct{})
	go drain.run(drainDone)

	feeder := &inputFeeder{
		source:     source,
		input:      inputPipe,
		bufferSize: effectiveCommand.InputBufferSize,
	}
	feederDone := make(chan struct{})
	go feeder.run(feederDone)

	stream := newOutputStream(outputPipe, effectiveCommand.ChunkSize)

	var consumerFault error
	var consumerPanic any
	panicked := false
	func() {
		defer func() {
			if recovered := recover(); recovered != nil {
				panicked = true
				consumerPanic = recovered
			}
		}()
		consumerFault = consumer(stream)
	}()
	logger.Debug(consumerFinishedEventConstant,
		zap.Strings(programFieldNameConstant, effectiveCommand.Program),
		zap.Bool(consumerFaultFieldNameConstant, consumerFault != nil || panicked),
	)

	closingOnError := consumerFault != nil || panicked
	if closingOnError {
		logger.Debug(processTerminatingEventConstant, zap.Strings(programFieldNameConstant, effectiveCommand.Program))
		terminateProcess(processCommand)
	}

	// Fixed shutdown order: close the output channel first so a child
	// blocked on writes observes the closure, then join the workers, then
	// reap the process. Close faults on a stale descriptor are benign.
	_ = outputPipe.Close()
	<-feederDone
	<-drainDone

	waitError := processCommand.Wait()
	status := exitStatusFromProcessState(processCommand.ProcessState)
	if !status.Known && waitError == nil {
		status = ExitStatus{Code: 0, Known: true}
	}
	stream.recordExitStatus(status)
	logger.Debug(processReapedEventConstant,
		zap.Strings(programFieldNameConstant, effectiveCommand.Program),
		zap.String(exitStatusFieldNameConstant, status.String()),
	)

	if panicked {
		panic(consumerPanic)
	}
	if consumerFault != nil {
		return consumerFault
	}
	if contextError := executionContext.Err(); contextError != nil {
		return contextError
	}
	return executor.reconcile(effectiveCommand, feeder, drain, status, waitError)
}

// reconcile resolves the terminal outcome from worker faults and the exit
// status. Both feeder outcomes surface before the drain fault: a hard
// feeder fault verbatim, then the broken-pipe condition judged against the
// exit status, then drain faults, then plain non-zero exits.
func (executor *StreamExecutor) reconcile(command StreamCommand, feeder *inputFeeder, drain *errorDrain, status ExitStatus, waitError error) error {
	if feeder.outcome.hardFault != nil {
		return feeder.outcome.hardFault
	}
	if feeder.outcome.pipeClosedFault != nil {
		if status.Known && status.Success() {
			return feeder.outcome.pipeClosedFault
		}
		return executor.commandFailure(command, status, drain)
	}
	if drain.outcome.hardFault != nil {
		return drain.outcome.hardFault
	}
	if status.Known && !status.Success() {
		return executor.commandFailure(command, status, drain)
	}
	if !status.Known && waitError != nil {
		return fmt.Errorf(processWaitFailedTemplateConstant, waitError)
	}
	return nil
}

func (executor *StreamExecutor) commandFailure(command StreamCommand, status ExitStatus, drain *errorDrain) error {
	return &CommandFailedError{
		Command:           command.Program,
		ExitStatus:        status,
		StandardErrorTail: drain.tail.Bytes(),
		WorkingDirectory:  command.WorkingDirectory,
	}
}

// Collect runs the command to completion and returns its concatenated
// output. Intended for transforms whose output fits comfortably in memory.
func (executor *StreamExecutor) Collect(executionContext context.Context, command StreamCommand, source InputSource) ([]byte, error) {
	var collected []byte
	executionError := executor.Execute(executionContext, command, source, func(stream *OutputStream) error {
		for {
			chunk, chunkError := stream.Next()
			if len(chunk) > 0 {
				collected = append(collected, chunk...)
			}
			if chunkError != nil {
				if chunkError == io.EOF {
					return nil
				}
				return chunkError
			}
		}
	})
	return collected, executionError
}

func terminateProcess(processCommand *exec.Cmd) {
	if processCommand.Process == nil {
		return
	}
	_ = processCommand.Process.Signal(syscall.SIGTERM)
}
