package pathspec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/datalad/datasalad/internal/gitpathspec"
)

const (
	groupUseConstant                        = "pathspec"
	groupShortDescriptionConstant           = "Work with Git pathspecs"
	groupLongDescriptionConstant            = "pathspec parses, normalizes, and translates Git pathspecs without touching a repository."
	translateUseConstant                    = "translate --subdir directory pathspec [pathspec ...]"
	translateShortDescriptionConstant       = "Translate pathspecs into the scope of a subdirectory"
	translateLongDescriptionConstant        = "translate rewrites each pathspec so that it applies within the named subdirectory, printing every translated form on its own line. Translation is purely lexical and errors when no pathspec applies inside the subdirectory."
	translateExecutionErrorTemplateConstant = "pathspec translation failed: %w"
	missingPathspecMessageConstant          = "translate requires at least one pathspec"
	missingSubdirMessageConstant            = "translate requires a target subdirectory"
	flagSubdirNameConstant                  = "subdir"
	flagSubdirDescriptionConstant           = "Subdirectory the pathspecs are translated into"
	translatedFormTemplateConstant          = "%s\n"
	translationEventMessageConstant         = "pathspecs translated"
	logFieldSubdirConstant                  = "subdirectory"
	logFieldPathspecCountConstant           = "pathspec_count"
)

var (
	errMissingPathspec = errors.New(missingPathspecMessageConstant)
	errMissingSubdir   = errors.New(missingSubdirMessageConstant)
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the pathspec command group.
type CommandBuilder struct {
	LoggerProvider LoggerProvider
}

// Build constructs the pathspec command with its translate subcommand.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	groupCommand := &cobra.Command{
		Use:   groupUseConstant,
		Short: groupShortDescriptionConstant,
		Long:  groupLongDescriptionConstant,
	}

	translateCommand := &cobra.Command{
		Use:   translateUseConstant,
		Short: translateShortDescriptionConstant,
		Long:  translateLongDescriptionConstant,
		RunE:  builder.runTranslate,
	}
	translateCommand.Flags().String(flagSubdirNameConstant, "", flagSubdirDescriptionConstant)

	groupCommand.AddCommand(translateCommand)

	return groupCommand, nil
}

func (builder *CommandBuilder) runTranslate(command *cobra.Command, arguments []string) error {
	if len(arguments) == 0 {
		return errMissingPathspec
	}

	subdirValue, _ := command.Flags().GetString(flagSubdirNameConstant)
	trimmedSubdir := strings.TrimSpace(subdirValue)
	if len(trimmedSubdir) == 0 {
		return errMissingSubdir
	}

	pathspecs, parseError := gitpathspec.NewPathSpecs(arguments...)
	if parseError != nil {
		return fmt.Errorf(translateExecutionErrorTemplateConstant, parseError)
	}

	translated, translationError := pathspecs.ForSubdir(trimmedSubdir)
	if translationError != nil {
		return fmt.Errorf(translateExecutionErrorTemplateConstant, translationError)
	}

	builder.resolveLogger().Debug(
		translationEventMessageConstant,
		zap.String(logFieldSubdirConstant, trimmedSubdir),
		zap.Int(logFieldPathspecCountConstant, translated.Len()),
	)

	for _, translatedForm := range translated.ArgList() {
		fmt.Fprintf(command.OutOrStdout(), translatedFormTemplateConstant, translatedForm)
	}

	return nil
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}
