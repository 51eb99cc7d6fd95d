package execstream

import "io"

// OutputStream is the forward-only view of the process output channel
// handed to the consumer. Next pulls at most one configured chunk per call
// and returns io.EOF once the channel is exhausted; the stream is terminal
// after exhaustion or after a pull fault. The exit status is recorded
// exactly once by the coordinator during scope shutdown and remains
// readable afterwards.
type OutputStream struct {
	reader       io.Reader
	chunkSize    int
	exhausted    bool
	pendingError error
	exitStatus   ExitStatus
}

func newOutputStream(reader io.Reader, chunkSize int) *OutputStream {
	return &OutputStream{reader: reader, chunkSize: chunkSize}
}

// Next returns the next output chunk, io.EOF at the end of the output
// channel, or the read fault that terminated the stream.
func (stream *OutputStream) Next() ([]byte, error) {
	if stream.exhausted {
		return nil, io.EOF
	}
	if stream.pendingError != nil {
		deferredError := stream.pendingError
		stream.pendingError = nil
		stream.exhausted = true
		return nil, deferredError
	}
	buffer := make([]byte, stream.chunkSize)
	for {
		bytesRead, readError := stream.reader.Read(buffer)
		if bytesRead > 0 {
			if readError != nil {
				stream.pendingError = readError
			}
			return buffer[:bytesRead], nil
		}
		if readError != nil {
			stream.exhausted = true
			return nil, readError
		}
	}
}

// ExitStatus reports the recorded exit status of the process. Before the
// coordinator closes the scope the status is unknown.
func (stream *OutputStream) ExitStatus() ExitStatus {
	return stream.exitStatus
}

func (stream *OutputStream) recordExitStatus(status ExitStatus) {
	if stream.exitStatus.Known {
		return
	}
	stream.exitStatus = status
}
