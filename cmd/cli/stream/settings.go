package stream

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/datalad/datasalad/internal/execstream"
	"github.com/datalad/datasalad/internal/settings"
)

const (
	environmentVariablePrefixConstant       = "DATASALAD_RUN_"
	settingsSourceFlagsNameConstant         = "flags"
	settingsSourceEnvironmentNameConstant   = "environment"
	settingsSourceConfigurationNameConstant = "configuration"
	settingsSourceDefaultsNameConstant      = "defaults"
	optionResolutionErrorTemplateConstant   = "resolving run option %q: %w"
	variableNameWordSeparatorConstant       = "_"
	settingKeyWordSeparatorConstant         = "-"
)

// newOptionSettings layers the option sources for a run invocation. Flags
// given on the command line win over DATASALAD_RUN_* environment variables,
// which win over the configuration file, which wins over built-in defaults.
// Flag and environment values arrive as strings and are coerced through the
// coercers inherited from the defaults source during flattening.
func (builder *CommandBuilder) newOptionSettings(command *cobra.Command) *settings.Settings {
	flagSource := settings.NewInMemory()
	command.Flags().Visit(func(changedFlag *pflag.Flag) {
		_ = flagSource.Set(changedFlag.Name, settings.NewSetting(changedFlag.Value.String()))
	})

	environmentSource := settings.NewTransformingEnvironment(
		environmentVariablePrefixConstant,
		settingKeyFromVariableName,
		variableNameFromSettingKey,
	)

	configurationSource := settings.NewInMemory()
	configuration := builder.resolveConfiguration()
	if configuration.ChunkSize != 0 {
		_ = configurationSource.Set(flagChunkSizeNameConstant, settings.NewSetting(configuration.ChunkSize))
	}
	if configuration.InputBufferSize != 0 {
		_ = configurationSource.Set(flagInputBufferNameConstant, settings.NewSetting(configuration.InputBufferSize))
	}
	if len(configuration.WorkingDirectory) != 0 {
		_ = configurationSource.Set(flagWorkingDirectoryNameConstant, settings.NewSetting(configuration.WorkingDirectory))
	}

	defaultsSource := settings.NewDefaults(settings.LoggerProvider(builder.LoggerProvider))
	_ = defaultsSource.Set(flagChunkSizeNameConstant, settings.NewSettingWithCoercer(execstream.DefaultChunkSize, settings.CoerceInt))
	_ = defaultsSource.Set(flagInputBufferNameConstant, settings.NewSettingWithCoercer(0, settings.CoerceInt))
	_ = defaultsSource.Set(flagWorkingDirectoryNameConstant, settings.NewSettingWithCoercer("", settings.CoerceString))
	_ = defaultsSource.Set(flagItemizeNameConstant, settings.NewSettingWithCoercer(false, settings.CoerceBool))
	_ = defaultsSource.Set(flagSeparatorNameConstant, settings.NewSettingWithCoercer("", settings.CoerceString))
	_ = defaultsSource.Set(flagKeepEndsNameConstant, settings.NewSettingWithCoercer(false, settings.CoerceBool))

	return settings.NewSettings(
		settings.NamedSource{Name: settingsSourceFlagsNameConstant, Source: flagSource},
		settings.NamedSource{Name: settingsSourceEnvironmentNameConstant, Source: environmentSource},
		settings.NamedSource{Name: settingsSourceConfigurationNameConstant, Source: configurationSource},
		settings.NamedSource{Name: settingsSourceDefaultsNameConstant, Source: defaultsSource},
	)
}

func settingKeyFromVariableName(variableName string) string {
	trimmedName := strings.TrimPrefix(variableName, environmentVariablePrefixConstant)
	return strings.ReplaceAll(strings.ToLower(trimmedName), variableNameWordSeparatorConstant, settingKeyWordSeparatorConstant)
}

func variableNameFromSettingKey(settingKey string) string {
	upperKey := strings.ReplaceAll(strings.ToUpper(settingKey), settingKeyWordSeparatorConstant, variableNameWordSeparatorConstant)
	return environmentVariablePrefixConstant + upperKey
}

func intOptionValue(manager *settings.Settings, settingKey string) (int, error) {
	resolvedValue, valueError := optionValue(manager, settingKey)
	if valueError != nil {
		return 0, valueError
	}
	integerValue, _ := resolvedValue.(int)
	return integerValue, nil
}

func stringOptionValue(manager *settings.Settings, settingKey string) (string, error) {
	resolvedValue, valueError := optionValue(manager, settingKey)
	if valueError != nil {
		return "", valueError
	}
	stringValue, _ := resolvedValue.(string)
	return stringValue, nil
}

func boolOptionValue(manager *settings.Settings, settingKey string) (bool, error) {
	resolvedValue, valueError := optionValue(manager, settingKey)
	if valueError != nil {
		return false, valueError
	}
	booleanValue, _ := resolvedValue.(bool)
	return booleanValue, nil
}

func optionValue(manager *settings.Settings, settingKey string) (any, error) {
	optionSetting, _ := manager.Get(settingKey)
	resolvedValue, valueError := optionSetting.Value()
	if valueError != nil {
		return nil, fmt.Errorf(optionResolutionErrorTemplateConstant, settingKey, valueError)
	}
	return resolvedValue, nil
}
