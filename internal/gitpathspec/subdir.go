package gitpathspec

import "strings"

// ForSubdir translates the pathspec into the scope of a subdirectory given
// as a relative POSIX path. The processing is purely lexical, without
// matching against file system or Git tree content, so it works for targets
// with nothing to match against yet, such as a not-yet-cloned submodule. At
// the same time the results can be overly broad.
//
// A pathspec with the "top" magic is produced unmodified: it is defined
// relative to the root of the working tree, not to a base directory.
//
// An empty result indicates that the pathspec cannot be translated because
// it does not match the subdirectory itself. A pathspec that translates to
// "no pathspecs" yields the dedicated ":" pathspec.
func (pathspec GitPathSpec) ForSubdir(subdir string) []GitPathSpec {
	if len(subdir) == 0 {
		return []GitPathSpec{pathspec}
	}
	return subdirMatchRemainderPathspecs(subdir, pathspec)
}

// subdirMatchRemainderPathspecs decomposes one pathspec into the pathspecs
// it translates to within a subdirectory namespace. Only valid pathspecs
// and well-formed relative paths are supported; no validity checking is
// performed.
func subdirMatchRemainderPathspecs(subdir string, pathspec GitPathSpec) []GitPathSpec {
	if pathspec.HasSpecType(topMagicConstant) || pathspec.IsNoPathspecs() {
		return []GitPathSpec{pathspec}
	}

	// A trailing separator prevents undesired matches of partial
	// directory names.
	if !strings.HasSuffix(subdir, "/") {
		subdir += "/"
	}
	testPattern := pathspec.joinedPattern()

	if pathspec.HasSpecType(icaseMagicConstant) {
		subdir = strings.ToLower(subdir)
		testPattern = strings.ToLower(testPattern)
	}

	if pathspec.HasSpecType(literalMagicConstant) {
		return literalSubdirPathspecs(subdir, testPattern, pathspec)
	}
	return wildcardSubdirPathspecs(subdir, testPattern, pathspec)
}

func literalSubdirPathspecs(subdir string, testPattern string, pathspec GitPathSpec) []GitPathSpec {
	patternWithSlash := testPattern + "/"
	if !strings.HasPrefix(patternWithSlash, subdir) {
		// The pattern may still name an intermediate level of a
		// multi-level subdirectory, in which case everything below the
		// target is matched.
		for ancestor := headDirectory(subdir); len(ancestor) > 0; ancestor = headDirectory(ancestor) {
			if strings.HasPrefix(patternWithSlash, ancestor) {
				return []GitPathSpec{{}}
			}
		}
		return nil
	}

	remainder := testPattern[min(len(subdir), len(testPattern)):]
	if len(remainder) == 0 {
		return []GitPathSpec{{}}
	}
	directoryPrefix, pattern := splitPrefixPattern(remainder)
	return []GitPathSpec{{SpecTypes: pathspec.SpecTypes, DirPrefix: directoryPrefix, Pattern: pattern}}
}

func wildcardSubdirPathspecs(subdir string, testPattern string, pathspec GitPathSpec) []GitPathSpec {
	// Tokenize on the wildcard that is allowed to cross directory
	// boundaries.
	tokenDelimiter := "*"
	if pathspec.HasSpecType(globMagicConstant) {
		tokenDelimiter = "**"
	}
	patternChunks := strings.Split(testPattern, tokenDelimiter)

	var translated []GitPathSpec
	yieldedForms := map[string]struct{}{}
	prefixMatch := ""
	for chunkIndex, chunk := range patternChunks {
		lastChunk := chunkIndex+1 == len(patternChunks)
		var tryMatch string
		if lastChunk {
			tryMatch = prefixMatch + chunk
			if !strings.HasSuffix(chunk, "/") {
				tryMatch += "/"
			}
		} else {
			tryMatch = prefixMatch + chunk + "*"
		}

		if !fnmatchName(subdir, tryMatch) {
			// The chunks must match in order; the first mismatch ends
			// the decomposition. An initial chunk may still point
			// inside the target subdirectory.
			for subMatch := headDirectory(tryMatch); len(subMatch) > 0; subMatch = headDirectory(subMatch) {
				if !fnmatchName(subdir, subMatch+"/") {
					continue
				}
				directoryPrefix, pattern := splitPrefixPattern(testPattern[min(len(subMatch)+1, len(testPattern)):])
				candidate := GitPathSpec{SpecTypes: pathspec.SpecTypes, DirPrefix: directoryPrefix, Pattern: pattern}
				if _, alreadyYielded := yieldedForms[candidate.String()]; !alreadyYielded {
					translated = append(translated, candidate)
				}
				return translated
			}
			// Or the target is a multi-level subdirectory and an
			// intermediate level matches completely.
			for ancestor := headDirectory(subdir); len(ancestor) > 0; ancestor = headDirectory(ancestor) {
				if fnmatchName(ancestor+"/", tryMatch) {
					translated = append(translated, GitPathSpec{})
					return translated
				}
			}
			return translated
		}

		remainderChunks := patternChunks[chunkIndex+1:]
		if allChunksEmpty(remainderChunks) {
			// Direct hit, nothing remains to constrain the subdirectory.
			translated = append(translated, GitPathSpec{})
			return translated
		}
		directoryPrefix, pattern := splitPrefixPattern(tokenDelimiter + strings.Join(remainderChunks, tokenDelimiter))
		candidate := GitPathSpec{SpecTypes: pathspec.SpecTypes, DirPrefix: directoryPrefix, Pattern: pattern}
		translated = append(translated, candidate)
		yieldedForms[candidate.String()] = struct{}{}

		prefixMatch = tryMatch
	}
	return translated
}

// headDirectory returns the path up to the last separator, mirroring the
// head of a POSIX path split. It returns the empty string when no separator
// remains.
func headDirectory(relativePath string) string {
	lastSlashIndex := strings.LastIndex(relativePath, "/")
	if lastSlashIndex < 0 {
		return ""
	}
	return relativePath[:lastSlashIndex]
}

func allChunksEmpty(chunks []string) bool {
	for _, chunk := range chunks {
		if len(chunk) > 0 {
			return false
		}
	}
	return true
}
