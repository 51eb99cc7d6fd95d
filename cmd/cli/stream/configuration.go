package stream

import "strings"

const (
	chunkSizeConfigurationKeySuffixConstant        = ".chunk_size"
	inputBufferSizeConfigurationKeySuffixConstant  = ".input_buffer_size"
	workingDirectoryConfigurationKeySuffixConstant = ".working_directory"
)

// CommandConfiguration captures configuration values for the run command.
type CommandConfiguration struct {
	ChunkSize        int    `mapstructure:"chunk_size"`
	InputBufferSize  int    `mapstructure:"input_buffer_size"`
	WorkingDirectory string `mapstructure:"working_directory"`
}

// DefaultCommandConfiguration provides baseline configuration values for the run command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		ChunkSize:        0,
		InputBufferSize:  0,
		WorkingDirectory: "",
	}
}

// DefaultConfigurationValues exposes run defaults keyed for configuration loading.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKeyPrefix + chunkSizeConfigurationKeySuffixConstant:        defaults.ChunkSize,
		configurationKeyPrefix + inputBufferSizeConfigurationKeySuffixConstant:  defaults.InputBufferSize,
		configurationKeyPrefix + workingDirectoryConfigurationKeySuffixConstant: defaults.WorkingDirectory,
	}
}

// sanitize trims configuration values without applying implicit defaults.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.WorkingDirectory = strings.TrimSpace(configuration.WorkingDirectory)
	return sanitized
}
