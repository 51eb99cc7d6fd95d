// Package gitpathspec provides a dedicated type for Git pathspecs and a
// purely lexical translation of pathspecs into the scope of a
// subdirectory. The translation makes it possible to take a pathspec that
// is valid for a top-level repository and derive the set of pathspecs that
// gives equivalent results when the same Git command runs inside a
// subdirectory or submodule, without matching against actual repository
// content.
package gitpathspec
