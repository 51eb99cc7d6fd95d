package settings

import "go.uber.org/zap"

const (
	defaultResetEventConstant   = "resetting existing default"
	settingKeyFieldNameConstant = "key"
)

// InMemory is a writable source keeping all settings in memory only. There
// is no underlying source to load from.
type InMemory struct {
	CachingSource
}

// NewInMemory returns an empty in-memory source.
func NewInMemory() *InMemory {
	return &InMemory{}
}

// Load does nothing.
func (source *InMemory) Load() error {
	return nil
}

// Writable reports true.
func (source *InMemory) Writable() bool {
	return true
}

// Defaults collects implementation defaults. Defaults are not loaded from
// anywhere; clients register every default they want known. The only
// difference to InMemory is a debug-level log message when a default that
// was already registered is reset.
type Defaults struct {
	InMemory
	loggerProvider LoggerProvider
}

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// NewDefaults returns an empty defaults source.
func NewDefaults(loggerProvider LoggerProvider) *Defaults {
	return &Defaults{loggerProvider: loggerProvider}
}

// Set registers a default, logging when an existing default is reset.
func (source *Defaults) Set(key string, value Setting) error {
	if source.Has(key) {
		source.resolveLogger().Debug(defaultResetEventConstant, zap.String(settingKeyFieldNameConstant, key))
	}
	return source.InMemory.Set(key, value)
}

func (source *Defaults) resolveLogger() *zap.Logger {
	if source.loggerProvider == nil {
		return zap.NewNop()
	}
	logger := source.loggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
