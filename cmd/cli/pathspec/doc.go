// Package pathspec provides the pathspec command group for lexical Git
// pathspec translation.
package pathspec
