package gitpathspec

import (
	"errors"
	"fmt"
)

const noTranslationTemplateConstant = "%w: %s"

// ErrNoTranslation is reported when not a single pathspec can be translated
// into the scope of a target subdirectory. Client code uses it to
// distinguish a no-match scenario from the unconstrained all-match
// scenario.
var ErrNoTranslation = errors.New("no pathspec translates to target directory")

// GitPathSpecs is a container for any number of pathspecs, including none.
// It facilitates pathspec-constrained operations across submodule
// recursion. The zero value represents no constraints, equivalent to a
// single ":" pathspec.
type GitPathSpecs struct {
	pathspecs []GitPathSpec
}

// NewPathSpecs parses string-form pathspecs into a container. No arguments
// produce the unconstrained container.
func NewPathSpecs(pathspecForms ...string) (GitPathSpecs, error) {
	var parsed []GitPathSpec
	for _, pathspecForm := range pathspecForms {
		pathspec, parseError := ParsePathSpec(pathspecForm)
		if parseError != nil {
			return GitPathSpecs{}, parseError
		}
		parsed = append(parsed, pathspec)
	}
	return GitPathSpecs{pathspecs: parsed}, nil
}

// FromPathSpecs wraps already-parsed pathspecs into a container.
func FromPathSpecs(pathspecs []GitPathSpec) GitPathSpecs {
	return GitPathSpecs{pathspecs: pathspecs}
}

// Len returns the number of contained pathspecs.
func (collection GitPathSpecs) Len() int {
	return len(collection.pathspecs)
}

// Empty reports whether the container carries no constraints.
func (collection GitPathSpecs) Empty() bool {
	return len(collection.pathspecs) == 0
}

// PathSpecs returns the contained pathspecs.
func (collection GitPathSpecs) PathSpecs() []GitPathSpec {
	return collection.pathspecs
}

// ForSubdir translates all pathspecs into the scope of a subdirectory. It
// fails with ErrNoTranslation when no pathspec is applicable to the target:
// returning an empty container instead would encode "no constraint" rather
// than "no match".
func (collection GitPathSpecs) ForSubdir(subdir string) (GitPathSpecs, error) {
	if collection.Empty() {
		return GitPathSpecs{}, nil
	}
	var translated []GitPathSpec
	for _, pathspec := range collection.pathspecs {
		translated = append(translated, pathspec.ForSubdir(subdir)...)
	}
	if len(translated) == 0 {
		return GitPathSpecs{}, fmt.Errorf(noTranslationTemplateConstant, ErrNoTranslation, subdir)
	}
	return GitPathSpecs{pathspecs: translated}, nil
}

// AnyMatchSubdir reports whether any pathspec could match content in the
// subdirectory; false exactly when ForSubdir would fail.
func (collection GitPathSpecs) AnyMatchSubdir(subdir string) bool {
	if collection.Empty() {
		return true
	}
	for _, pathspec := range collection.pathspecs {
		if len(pathspec.ForSubdir(subdir)) > 0 {
			return true
		}
	}
	return false
}

// ArgList renders the pathspecs as command line arguments, suitable for
// any Git command that accepts pathspecs after a "--" terminator. An
// unconstrained container renders as an empty list.
func (collection GitPathSpecs) ArgList() []string {
	arguments := make([]string, 0, len(collection.pathspecs))
	for _, pathspec := range collection.pathspecs {
		arguments = append(arguments, pathspec.String())
	}
	return arguments
}
