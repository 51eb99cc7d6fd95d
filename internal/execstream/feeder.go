package execstream

import (
	"bufio"
	"io"
)

// inputFeeder pulls chunks from the input source in order and writes them to
// the process input channel, closing the channel exactly once on exhaustion
// or on any fault. It records at most one fault in its outcome: source
// faults are captured verbatim and take precedence over broken-pipe
// conditions, which stay provisional until the coordinator reconciles them
// against the exit status.
type inputFeeder struct {
	source     InputSource
	input      io.WriteCloser
	bufferSize int
	outcome    workerOutcome
}

func (feeder *inputFeeder) run(done chan<- struct{}) {
	defer close(done)

	var bufferedWriter *bufio.Writer
	writer := io.Writer(feeder.input)
	if feeder.bufferSize > 0 {
		bufferedWriter = bufio.NewWriterSize(feeder.input, feeder.bufferSize)
		writer = bufferedWriter
	}

	feeder.feed(writer)
	feeder.flush(bufferedWriter)
	feeder.closeInput()
}

func (feeder *inputFeeder) feed(writer io.Writer) {
	for {
		chunk, sourceError := feeder.source.NextChunk()
		if sourceError != nil {
			if sourceError != io.EOF {
				feeder.outcome.hardFault = sourceError
			}
			return
		}
		if len(chunk) == 0 {
			continue
		}
		if _, writeError := writer.Write(chunk); writeError != nil {
			feeder.recordChannelFault(writeError)
			return
		}
	}
}

func (feeder *inputFeeder) flush(bufferedWriter *bufio.Writer) {
	if bufferedWriter == nil || feeder.outcome.hardFault != nil || feeder.outcome.pipeClosedFault != nil {
		return
	}
	if flushError := bufferedWriter.Flush(); flushError != nil {
		feeder.recordChannelFault(flushError)
	}
}

// closeInput closes the process input channel, swallowing the benign error
// conditions of an already-stale descriptor. The close must happen even
// after a failed write, so the descriptor never leaks.
func (feeder *inputFeeder) closeInput() {
	closeError := feeder.input.Close()
	if closeError == nil || isBenignCloseError(closeError) {
		return
	}
	if isPipeClosed(closeError) {
		if feeder.outcome.hardFault == nil && feeder.outcome.pipeClosedFault == nil {
			feeder.outcome.pipeClosedFault = closeError
		}
		return
	}
	if feeder.outcome.hardFault == nil {
		feeder.outcome.hardFault = closeError
	}
}

func (feeder *inputFeeder) recordChannelFault(channelError error) {
	if isPipeClosed(channelError) {
		feeder.outcome.pipeClosedFault = channelError
		return
	}
	feeder.outcome.hardFault = channelError
}
