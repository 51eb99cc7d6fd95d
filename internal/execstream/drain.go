package execstream

import (
	"errors"
	"io"
)

// errorDrain continuously reads the process error channel into a bounded
// tail buffer so the child can never block on a full error pipe. Memory use
// is capped by the tail buffer window regardless of how much the child
// writes.
type errorDrain struct {
	errorChannel io.Reader
	chunkSize    int
	tail         *tailBuffer
	outcome      workerOutcome
}

func (drain *errorDrain) run(done chan<- struct{}) {
	defer close(done)

	for {
		chunk := make([]byte, drain.chunkSize)
		bytesRead, readError := drain.errorChannel.Read(chunk)
		if bytesRead > 0 {
			drain.tail.Append(chunk[:bytesRead])
		}
		if readError != nil {
			if !errors.Is(readError, io.EOF) && !isBenignCloseError(readError) {
				drain.outcome.hardFault = readError
			}
			return
		}
	}
}
