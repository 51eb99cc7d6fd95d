package utils

import (
	"io"
	"sync"
)

// flusher is implemented by buffered writers that can force out pending data.
type flusher interface {
	Flush() error
}

// FlushingWriter forwards writes to the wrapped writer and flushes after
// every write, so each chunk of a streaming pipeline reaches the consumer as
// soon as it is produced instead of sitting in a buffer.
type FlushingWriter struct {
	writer    io.Writer
	flushable flusher
	mutex     sync.Mutex
}

// NewFlushingWriter wraps the provided writer. A writer without a Flush
// method is forwarded to unchanged; wrapping an already wrapped writer
// returns it as is.
func NewFlushingWriter(writer io.Writer) *FlushingWriter {
	if alreadyWrapped, isWrapped := writer.(*FlushingWriter); isWrapped {
		return alreadyWrapped
	}
	flushable, _ := writer.(flusher)
	return &FlushingWriter{writer: writer, flushable: flushable}
}

// Write forwards the data and flushes the wrapped writer.
func (flushingWriter *FlushingWriter) Write(data []byte) (int, error) {
	flushingWriter.mutex.Lock()
	defer flushingWriter.mutex.Unlock()

	bytesWritten, writeError := flushingWriter.writer.Write(data)
	if writeError != nil {
		return bytesWritten, writeError
	}
	return bytesWritten, flushingWriter.flushLocked()
}

// Flush forces out pending data on the wrapped writer.
func (flushingWriter *FlushingWriter) Flush() error {
	flushingWriter.mutex.Lock()
	defer flushingWriter.mutex.Unlock()
	return flushingWriter.flushLocked()
}

func (flushingWriter *FlushingWriter) flushLocked() error {
	if flushingWriter.flushable == nil {
		return nil
	}
	return flushingWriter.flushable.Flush()
}
