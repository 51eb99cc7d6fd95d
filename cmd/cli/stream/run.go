package stream

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/datalad/datasalad/internal/execstream"
	"github.com/datalad/datasalad/internal/itertools"
	"github.com/datalad/datasalad/internal/utils"
	pathutils "github.com/datalad/datasalad/internal/utils/path"
)

const (
	commandUseConstant                      = "run -- program [argument ...]"
	commandShortDescriptionConstant         = "Run a program as a streaming data transform"
	commandLongDescriptionConstant          = "run feeds standard input to the program, streams the program output to standard output, and reports a structured failure carrying the trailing standard error output when the program exits non-zero."
	commandExecutionErrorTemplateConstant   = "run failed: %w"
	missingProgramMessageConstant           = "run requires a program to execute"
	flagChunkSizeNameConstant               = "chunk-size"
	flagChunkSizeDescriptionConstant        = "Read size in bytes for output and error channel pulls"
	flagInputBufferNameConstant             = "input-buffer"
	flagInputBufferDescriptionConstant      = "Buffer size in bytes for writes to the program input, 0 writes chunks directly"
	flagWorkingDirectoryNameConstant        = "cwd"
	flagWorkingDirectoryDescriptionConstant = "Working directory for the program"
	flagItemizeNameConstant                 = "itemize"
	flagItemizeDescriptionConstant          = "Reassemble the program output into complete items before printing"
	flagSeparatorNameConstant               = "separator"
	flagSeparatorDescriptionConstant        = "Item separator for --itemize, empty selects line mode"
	flagKeepEndsNameConstant                = "keep-ends"
	flagKeepEndsDescriptionConstant         = "Keep item separators on itemized output instead of printing one item per line"
	itemTerminatorConstant                  = "\n"
)

var errMissingProgram = errors.New(missingProgramMessageConstant)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the resolved run configuration.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the Cobra command for streaming program execution.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	Executor              *execstream.StreamExecutor
	HomeExpander          *pathutils.HomeExpander
}

// Build constructs the run command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().Int(flagChunkSizeNameConstant, 0, flagChunkSizeDescriptionConstant)
	command.Flags().Int(flagInputBufferNameConstant, 0, flagInputBufferDescriptionConstant)
	command.Flags().String(flagWorkingDirectoryNameConstant, "", flagWorkingDirectoryDescriptionConstant)
	command.Flags().Bool(flagItemizeNameConstant, false, flagItemizeDescriptionConstant)
	command.Flags().String(flagSeparatorNameConstant, "", flagSeparatorDescriptionConstant)
	command.Flags().Bool(flagKeepEndsNameConstant, false, flagKeepEndsDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) == 0 {
		return errMissingProgram
	}

	options, optionsError := builder.parseOptions(command, arguments)
	if optionsError != nil {
		return optionsError
	}

	executor := builder.resolveExecutor()
	source := execstream.NewReaderInputSource(command.InOrStdin(), options.streamCommand.ChunkSize)
	output := utils.NewFlushingWriter(command.OutOrStdout())

	consumer := newChunkConsumer(output)
	if options.itemize {
		consumer = newItemConsumer(output, []byte(options.separator), options.keepEnds)
	}

	executionError := executor.Execute(command.Context(), options.streamCommand, source, consumer)
	if executionError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, executionError)
	}

	return nil
}

type runOptions struct {
	streamCommand execstream.StreamCommand
	itemize       bool
	separator     string
	keepEnds      bool
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) (runOptions, error) {
	manager := builder.newOptionSettings(command)

	chunkSizeValue, chunkSizeError := intOptionValue(manager, flagChunkSizeNameConstant)
	if chunkSizeError != nil {
		return runOptions{}, chunkSizeError
	}

	inputBufferValue, inputBufferError := intOptionValue(manager, flagInputBufferNameConstant)
	if inputBufferError != nil {
		return runOptions{}, inputBufferError
	}

	workingDirectoryValue, workingDirectoryError := stringOptionValue(manager, flagWorkingDirectoryNameConstant)
	if workingDirectoryError != nil {
		return runOptions{}, workingDirectoryError
	}
	workingDirectoryValue = builder.resolveHomeExpander().Expand(workingDirectoryValue)

	itemizeValue, itemizeError := boolOptionValue(manager, flagItemizeNameConstant)
	if itemizeError != nil {
		return runOptions{}, itemizeError
	}

	separatorValue, separatorError := stringOptionValue(manager, flagSeparatorNameConstant)
	if separatorError != nil {
		return runOptions{}, separatorError
	}

	keepEndsValue, keepEndsError := boolOptionValue(manager, flagKeepEndsNameConstant)
	if keepEndsError != nil {
		return runOptions{}, keepEndsError
	}

	return runOptions{
		streamCommand: execstream.StreamCommand{
			Program:          arguments,
			WorkingDirectory: workingDirectoryValue,
			ChunkSize:        chunkSizeValue,
			InputBufferSize:  inputBufferValue,
		},
		itemize:   itemizeValue,
		separator: separatorValue,
		keepEnds:  keepEndsValue,
	}, nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().sanitize()
}

func (builder *CommandBuilder) resolveExecutor() *execstream.StreamExecutor {
	if builder.Executor != nil {
		return builder.Executor
	}
	return execstream.NewStreamExecutor(execstream.LoggerProvider(builder.LoggerProvider))
}

func (builder *CommandBuilder) resolveHomeExpander() *pathutils.HomeExpander {
	if builder.HomeExpander != nil {
		return builder.HomeExpander
	}
	return pathutils.NewHomeExpander()
}

// newChunkConsumer copies output chunks to the writer unchanged.
func newChunkConsumer(output io.Writer) execstream.OutputConsumer {
	return func(stream *execstream.OutputStream) error {
		for {
			chunk, chunkError := stream.Next()
			if len(chunk) > 0 {
				if _, writeError := output.Write(chunk); writeError != nil {
					return writeError
				}
			}
			if chunkError == io.EOF {
				return nil
			}
			if chunkError != nil {
				return chunkError
			}
		}
	}
}

// newItemConsumer reassembles output chunks into complete items. Without
// keepEnds every item is printed on its own line; with keepEnds items retain
// their original separators.
func newItemConsumer(output io.Writer, separator []byte, keepEnds bool) execstream.OutputConsumer {
	return func(stream *execstream.OutputStream) error {
		var streamError error
		chunks := func(yield func([]byte) bool) {
			for {
				chunk, chunkError := stream.Next()
				if len(chunk) > 0 && !yield(chunk) {
					return
				}
				if chunkError != nil {
					if chunkError != io.EOF {
						streamError = chunkError
					}
					return
				}
			}
		}

		writeError := writeItems(output, itertools.Itemize(chunks, separator, keepEnds), keepEnds)
		if writeError != nil {
			return writeError
		}

		return streamError
	}
}

func writeItems(output io.Writer, items iter.Seq[[]byte], keepEnds bool) error {
	for item := range items {
		if _, writeError := output.Write(item); writeError != nil {
			return writeError
		}
		if keepEnds {
			continue
		}
		if _, writeError := io.WriteString(output, itemTerminatorConstant); writeError != nil {
			return writeError
		}
	}
	return nil
}
