package execstream

// tailBuffer retains approximately the most recent window bytes appended to
// it, as an ordered sequence of chunks. The oldest chunk is evicted while
// the retained length without it still covers the window, so appends never
// rescan retained data. It is owned by the error drain worker while the
// worker runs and read by the coordinator only after the join.
type tailBuffer struct {
	window      int
	chunks      [][]byte
	totalLength int
}

func newTailBuffer(window int) *tailBuffer {
	return &tailBuffer{window: window}
}

func (buffer *tailBuffer) Append(chunk []byte) {
	if len(chunk) == 0 {
		return
	}
	buffer.chunks = append(buffer.chunks, chunk)
	buffer.totalLength += len(chunk)
	for len(buffer.chunks) > 1 && buffer.totalLength-len(buffer.chunks[0]) >= buffer.window {
		buffer.totalLength -= len(buffer.chunks[0])
		buffer.chunks = buffer.chunks[1:]
	}
}

// Bytes concatenates the retained chunks and caps the result to the most
// recent window bytes.
func (buffer *tailBuffer) Bytes() []byte {
	concatenated := make([]byte, 0, buffer.totalLength)
	for _, chunk := range buffer.chunks {
		concatenated = append(concatenated, chunk...)
	}
	if len(concatenated) > buffer.window {
		concatenated = concatenated[len(concatenated)-buffer.window:]
	}
	return concatenated
}
