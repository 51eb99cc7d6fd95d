package settings

import (
	"errors"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

const illegalVariableNameMessageConstant = "illegal environment variable name (contains '=' or NUL)"

// ErrIllegalVariableName is reported when a setting key cannot be expressed
// as an environment variable name.
var ErrIllegalVariableName = errors.New(illegalVariableNameMessageConstant)

// KeyTransform converts an environment variable name to a setting key.
type KeyTransform func(variableName string) string

// VariableNameTransform converts a setting key to an environment variable
// name.
type VariableNameTransform func(key string) string

// Environment is a stateless source reading and writing settings directly
// in the process environment. Variables are filtered by a name prefix, and
// optional transforms translate variable names to setting keys and back.
type Environment struct {
	variablePrefix        string
	keyTransform          KeyTransform
	variableNameTransform VariableNameTransform
}

// NewEnvironment returns a source over environment variables carrying the
// given name prefix. An empty prefix includes every variable.
func NewEnvironment(variablePrefix string) *Environment {
	return &Environment{variablePrefix: variablePrefix}
}

// NewTransformingEnvironment returns an environment source with custom
// name translations applied in both directions.
func NewTransformingEnvironment(variablePrefix string, keyTransform KeyTransform, variableNameTransform VariableNameTransform) *Environment {
	return &Environment{
		variablePrefix:        variablePrefix,
		keyTransform:          keyTransform,
		variableNameTransform: variableNameTransform,
	}
}

// Load does nothing. All accessors inspect the process environment
// directly.
func (source *Environment) Load() error {
	return nil
}

// Reinit does nothing.
func (source *Environment) Reinit() {}

// Writable reports true.
func (source *Environment) Writable() bool {
	return true
}

// Keys returns the setting keys derived from all included environment
// variables, in sorted order.
func (source *Environment) Keys() []string {
	var keys []string
	for _, environmentEntry := range os.Environ() {
		variableName, _, found := strings.Cut(environmentEntry, "=")
		if !found || !source.includeVariable(variableName) {
			continue
		}
		keys = append(keys, source.keyFromVariableName(variableName))
	}
	sort.Strings(keys)
	return keys
}

// Get returns the setting stored in the environment variable for the key.
func (source *Environment) Get(key string) (Setting, bool) {
	variableName, nameError := source.variableNameFromKey(key)
	if nameError != nil {
		return Setting{}, false
	}
	variableValue, present := os.LookupEnv(variableName)
	if !present {
		return Setting{}, false
	}
	return NewSetting(variableValue), true
}

// Has reports whether the environment holds a variable for the key.
func (source *Environment) Has(key string) bool {
	_, present := source.Get(key)
	return present
}

// Set writes the coerced setting value to the environment variable for the
// key.
func (source *Environment) Set(key string, value Setting) error {
	variableName, nameError := source.variableNameFromKey(key)
	if nameError != nil {
		return nameError
	}
	resolvedValue, valueError := value.Value()
	if valueError != nil {
		return valueError
	}
	renderedValue, renderError := cast.ToStringE(resolvedValue)
	if renderError != nil {
		return renderError
	}
	return os.Setenv(variableName, renderedValue)
}

// Delete removes the environment variable for the key.
func (source *Environment) Delete(key string) error {
	variableName, nameError := source.variableNameFromKey(key)
	if nameError != nil {
		return nameError
	}
	return os.Unsetenv(variableName)
}

func (source *Environment) includeVariable(variableName string) bool {
	return strings.HasPrefix(variableName, source.variablePrefix)
}

func (source *Environment) keyFromVariableName(variableName string) string {
	if source.keyTransform != nil {
		return source.keyTransform(variableName)
	}
	return variableName
}

func (source *Environment) variableNameFromKey(key string) (string, error) {
	variableName := key
	if source.variableNameTransform != nil {
		variableName = source.variableNameTransform(key)
	}
	if strings.ContainsAny(variableName, "=\x00") {
		return "", ErrIllegalVariableName
	}
	return variableName, nil
}
