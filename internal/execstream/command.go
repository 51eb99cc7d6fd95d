package execstream

import "errors"

const (
	// DefaultChunkSize is the read size used for output and error channel
	// pulls when a command does not configure one.
	DefaultChunkSize = 64 * 1024

	programNotConfiguredMessageConstant  = "stream command program not configured"
	chunkSizeNotPositiveMessageConstant  = "stream command chunk size must be positive"
	inputBufferNegativeMessageConstant   = "stream command input buffer size must not be negative"
	outputConsumerMissingMessageConstant = "output consumer not configured"
)

// Sentinel errors reported for invalid executor usage.
var (
	ErrProgramNotConfigured        = errors.New(programNotConfiguredMessageConstant)
	ErrChunkSizeNotPositive        = errors.New(chunkSizeNotPositiveMessageConstant)
	ErrInputBufferSizeNegative     = errors.New(inputBufferNegativeMessageConstant)
	ErrOutputConsumerNotConfigured = errors.New(outputConsumerMissingMessageConstant)
)

// StreamCommand describes one subprocess invocation.
type StreamCommand struct {
	// Program holds the executable name followed by its arguments.
	Program []string

	// WorkingDirectory optionally overrides the working directory of the
	// process.
	WorkingDirectory string

	// ChunkSize bounds individual output-channel pulls and error-channel
	// drain reads. Zero selects DefaultChunkSize.
	ChunkSize int

	// InputBufferSize optionally buffers writes to the process input
	// channel. Zero writes each input chunk directly.
	InputBufferSize int
}

func (command StreamCommand) withDefaults() (StreamCommand, error) {
	if len(command.Program) == 0 || len(command.Program[0]) == 0 {
		return StreamCommand{}, ErrProgramNotConfigured
	}
	if command.ChunkSize < 0 {
		return StreamCommand{}, ErrChunkSizeNotPositive
	}
	if command.InputBufferSize < 0 {
		return StreamCommand{}, ErrInputBufferSizeNegative
	}
	if command.ChunkSize == 0 {
		command.ChunkSize = DefaultChunkSize
	}
	return command, nil
}
