package cli

import "context"

type commandContextKey string

const configurationFilePathContextKeyConstant = commandContextKey("configurationFilePath")

// contextWithConfigurationFilePath records the resolved configuration file
// path on the command context so subcommands can report where their
// configuration came from.
func contextWithConfigurationFilePath(parentContext context.Context, configurationFilePath string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, configurationFilePathContextKeyConstant, configurationFilePath)
}

// configurationFilePathFromContext returns the recorded configuration file
// path, when one was attached.
func configurationFilePathFromContext(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	configurationFilePath, pathAvailable := executionContext.Value(configurationFilePathContextKeyConstant).(string)
	return configurationFilePath, pathAvailable
}
