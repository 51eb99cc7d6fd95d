package gitpathspec

import (
	"errors"
	"strings"
)

const (
	noPathspecsFormConstant    = ":"
	longFormMagicOpenConstant  = ":("
	longFormMagicCloseConstant = ")"
	magicSeparatorConstant     = ","
	topMagicConstant           = "top"
	excludeMagicConstant       = "exclude"
	globMagicConstant          = "glob"
	literalMagicConstant       = "literal"
	icaseMagicConstant         = "icase"

	incompatibleMagicMessageConstant = "'glob' magic is incompatible with 'literal' magic"
	malformedPathspecMessageConstant = "malformed pathspec: unterminated long-form magic"
)

// Errors reported while parsing string-form pathspecs.
var (
	ErrIncompatibleMagic = errors.New(incompatibleMagicMessageConstant)
	ErrMalformedPathspec = errors.New(malformedPathspecMessageConstant)
)

// GitPathSpec represents one parsed Git pathspec: its long-form magic
// identifiers, the directory prefix up to the last slash that limits the
// scope, and the pattern matched against the remaining path.
type GitPathSpec struct {
	// SpecTypes holds the long-form magic identifiers, such as "top" or
	// "glob".
	SpecTypes []string

	// DirPrefix is the pathspec up to the last slash, without the slash.
	DirPrefix string

	// Pattern is the fnmatch-style pattern after the directory prefix.
	Pattern string
}

// ParsePathSpec parses a string-form pathspec into magic identifiers,
// directory prefix, and pattern. Both long-form magic (":(glob)...") and
// short-form magic (":/", ":!", ":^") are understood, as is the special
// "no pathspecs" pathspec ":".
func ParsePathSpec(pathspec string) (GitPathSpec, error) {
	if pathspec == noPathspecsFormConstant {
		return GitPathSpec{}, nil
	}

	var specTypes []string
	remainder := pathspec
	switch {
	case strings.HasPrefix(pathspec, longFormMagicOpenConstant):
		magic, pattern, closed := strings.Cut(pathspec[len(longFormMagicOpenConstant):], longFormMagicCloseConstant)
		if !closed {
			return GitPathSpec{}, ErrMalformedPathspec
		}
		specTypes = strings.Split(magic, magicSeparatorConstant)
		remainder = pattern
	case strings.HasPrefix(pathspec, noPathspecsFormConstant):
		specTypes, remainder = parseShortFormMagic(pathspec)
	}

	if containsSpecType(specTypes, globMagicConstant) && containsSpecType(specTypes, literalMagicConstant) {
		return GitPathSpec{}, ErrIncompatibleMagic
	}

	directoryPrefix, pattern := splitPrefixPattern(remainder)
	return GitPathSpec{SpecTypes: specTypes, DirPrefix: directoryPrefix, Pattern: pattern}, nil
}

func parseShortFormMagic(pathspec string) ([]string, string) {
	shortFormSignatures := map[byte]string{
		'/': topMagicConstant,
		'!': excludeMagicConstant,
		'^': excludeMagicConstant,
	}
	var specTypes []string
	for position := 1; position < len(pathspec); position++ {
		signature, known := shortFormSignatures[pathspec[position]]
		if !known {
			return specTypes, pathspec[position:]
		}
		specTypes = append(specTypes, signature)
	}
	return specTypes, pathspec[1:]
}

// splitPrefixPattern separates the directory prefix, the pathspec up to the
// last slash, from the trailing pattern. A pathspec without a slash is all
// pattern; a pathspec ending in a slash is all prefix.
func splitPrefixPattern(pathspec string) (directoryPrefix string, pattern string) {
	lastSlashIndex := strings.LastIndex(pathspec, "/")
	if lastSlashIndex < 0 {
		return "", pathspec
	}
	return pathspec[:lastSlashIndex], pathspec[lastSlashIndex+1:]
}

// IsNoPathspecs reports whether this is the special "no pathspecs"
// pathspec, ":".
func (pathspec GitPathSpec) IsNoPathspecs() bool {
	return len(pathspec.SpecTypes) == 0 && len(pathspec.DirPrefix) == 0 && len(pathspec.Pattern) == 0
}

// HasSpecType reports whether the pathspec carries the given long-form
// magic identifier.
func (pathspec GitPathSpec) HasSpecType(specType string) bool {
	return containsSpecType(pathspec.SpecTypes, specType)
}

// String renders the normalized long-form pathspec.
func (pathspec GitPathSpec) String() string {
	if pathspec.IsNoPathspecs() {
		return noPathspecsFormConstant
	}
	var rendered strings.Builder
	if len(pathspec.SpecTypes) > 0 {
		rendered.WriteString(longFormMagicOpenConstant)
		rendered.WriteString(strings.Join(pathspec.SpecTypes, magicSeparatorConstant))
		rendered.WriteString(longFormMagicCloseConstant)
	}
	rendered.WriteString(pathspec.joinedPattern())
	return rendered.String()
}

// joinedPattern recombines the directory prefix and pattern into the
// original path portion of the pathspec.
func (pathspec GitPathSpec) joinedPattern() string {
	if len(pathspec.DirPrefix) == 0 {
		return pathspec.Pattern
	}
	return pathspec.DirPrefix + "/" + pathspec.Pattern
}

func containsSpecType(specTypes []string, specType string) bool {
	for _, candidate := range specTypes {
		if candidate == specType {
			return true
		}
	}
	return false
}
