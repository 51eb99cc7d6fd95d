package execstream

import "io"

// InputSource produces binary chunks for the process input channel. It is
// pulled lazily by the input feeder worker and may be unbounded.
//
// NextChunk returns the next chunk, io.EOF when the source is exhausted, or
// any other error to abort the invocation. A source error is captured
// verbatim and takes precedence over a broken-pipe condition observed while
// writing.
type InputSource interface {
	NextChunk() ([]byte, error)
}

type sliceInputSource struct {
	chunks   [][]byte
	position int
}

// NewSliceInputSource returns an InputSource yielding the supplied chunks in
// order.
func NewSliceInputSource(chunks ...[]byte) InputSource {
	return &sliceInputSource{chunks: chunks}
}

// EmptyInputSource returns an InputSource that is immediately exhausted.
func EmptyInputSource() InputSource {
	return &sliceInputSource{}
}

func (source *sliceInputSource) NextChunk() ([]byte, error) {
	if source.position >= len(source.chunks) {
		return nil, io.EOF
	}
	chunk := source.chunks[source.position]
	source.position++
	return chunk, nil
}

type readerInputSource struct {
	reader    io.Reader
	chunkSize int
}

// NewReaderInputSource adapts an io.Reader into an InputSource producing
// chunks of at most chunkSize bytes. A non-positive chunkSize selects
// DefaultChunkSize.
func NewReaderInputSource(reader io.Reader, chunkSize int) InputSource {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &readerInputSource{reader: reader, chunkSize: chunkSize}
}

func (source *readerInputSource) NextChunk() ([]byte, error) {
	buffer := make([]byte, source.chunkSize)
	for {
		bytesRead, readError := source.reader.Read(buffer)
		if bytesRead > 0 {
			return buffer[:bytesRead], nil
		}
		if readError != nil {
			return nil, readError
		}
	}
}

// FuncInputSource adapts a pull function into an InputSource.
type FuncInputSource func() ([]byte, error)

// NextChunk implements InputSource by invoking the wrapped function.
func (source FuncInputSource) NextChunk() ([]byte, error) {
	return source()
}
