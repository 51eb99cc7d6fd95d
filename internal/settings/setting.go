package settings

import "fmt"

const settingDescriptionTemplateConstant = "Setting(%v)"

// Coercer processes a setting value on access. It can perform arbitrary
// conversion and validation.
type Coercer func(value any) (any, error)

// LazyEvaluator produces a setting value on access.
type LazyEvaluator func() any

// Setting represents an individual setting: an optional value, an optional
// coercer applied on access, and optional lazy evaluation. The zero Setting
// has no value.
type Setting struct {
	value     any
	hasValue  bool
	evaluator LazyEvaluator
	coercer   Coercer
}

// NewSetting returns a setting holding the given value.
func NewSetting(value any) Setting {
	return Setting{value: value, hasValue: true}
}

// NewSettingWithCoercer returns a setting holding the given value with a
// coercer applied on access.
func NewSettingWithCoercer(value any, coercer Coercer) Setting {
	return Setting{value: value, hasValue: true, coercer: coercer}
}

// NewLazySetting returns a setting whose value is produced by the evaluator
// on every access, before coercion.
func NewLazySetting(evaluator LazyEvaluator, coercer Coercer) Setting {
	return Setting{hasValue: true, evaluator: evaluator, coercer: coercer}
}

// NewCoercerOnlySetting returns a setting carrying only a coercer. It is
// used to register coercion for keys whose values come from other sources.
func NewCoercerOnlySetting(coercer Coercer) Setting {
	return Setting{coercer: coercer}
}

// HasValue reports whether the setting holds a value.
func (setting Setting) HasValue() bool {
	return setting.hasValue
}

// IsLazy reports whether the value is produced on access.
func (setting Setting) IsLazy() bool {
	return setting.evaluator != nil
}

// Coercer returns the coercer of the setting, or nil.
func (setting Setting) Coercer() Coercer {
	return setting.coercer
}

// PristineValue returns the original value without evaluation or coercion.
func (setting Setting) PristineValue() any {
	return setting.value
}

// Value returns the setting value after lazy evaluation and coercion.
func (setting Setting) Value() (any, error) {
	resolvedValue := setting.value
	if setting.evaluator != nil {
		resolvedValue = setting.evaluator()
	}
	if setting.coercer != nil {
		return setting.coercer(resolvedValue)
	}
	return resolvedValue, nil
}

// Update merges another setting into this one. A value or evaluator present
// on the other setting replaces this setting's value; an absent value leaves
// it untouched. Likewise a nil coercer on the other setting does not clear
// an existing coercer.
func (setting *Setting) Update(other Setting) {
	if other.hasValue {
		setting.value = other.value
		setting.evaluator = other.evaluator
		setting.hasValue = true
	}
	if other.coercer != nil {
		setting.coercer = other.coercer
	}
}

// String renders the pristine value wrapped in the type name, making clear
// the object is not the value itself.
func (setting Setting) String() string {
	return fmt.Sprintf(settingDescriptionTemplateConstant, setting.value)
}
