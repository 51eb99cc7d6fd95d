// Package pathutils resolves user-supplied filesystem paths.
package pathutils

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const tildeConstant = "~"

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// HomeExpander rewrites a leading tilde to the user's home directory, so
// configured working directories like "~/data" work from configuration
// files and environment variables where the shell never expands them. The
// home lookup runs once and is cached for the lifetime of the expander.
type HomeExpander struct {
	lookupHomeDirectory func() (string, error)
}

// NewHomeExpander constructs a HomeExpander using the operating system lookup.
func NewHomeExpander() *HomeExpander {
	return NewHomeExpanderWithProvider(os.UserHomeDir)
}

// NewHomeExpanderWithProvider constructs a HomeExpander with a custom provider.
func NewHomeExpanderWithProvider(provider HomeDirectoryProvider) *HomeExpander {
	if provider == nil {
		provider = os.UserHomeDir
	}
	return &HomeExpander{lookupHomeDirectory: sync.OnceValues(provider)}
}

// Expand resolves a leading tilde to the home directory. Paths without a
// tilde prefix, and all paths when the home lookup fails, are returned
// unchanged.
func (expander *HomeExpander) Expand(candidatePath string) string {
	if expander == nil || len(candidatePath) == 0 {
		return candidatePath
	}
	if !strings.HasPrefix(candidatePath, tildeConstant) {
		return candidatePath
	}

	homeDirectory, lookupError := expander.lookupHomeDirectory()
	if lookupError != nil || len(homeDirectory) == 0 {
		return candidatePath
	}

	if candidatePath == tildeConstant {
		return homeDirectory
	}

	remainder, tildePrefixed := strings.CutPrefix(candidatePath, tildeConstant+"/")
	if !tildePrefixed {
		remainder, tildePrefixed = strings.CutPrefix(candidatePath, tildeConstant+string(os.PathSeparator))
	}
	if !tildePrefixed {
		return candidatePath
	}

	return filepath.Join(homeDirectory, remainder)
}
