package gitpathspec

import (
	"regexp"
	"strings"
)

// fnmatchName matches a name against a shell wildcard pattern. Unlike
// filepath.Match, "*" and "?" also match directory separators, which is the
// matching behavior Git applies to the path portion of non-glob pathspecs.
func fnmatchName(name string, pattern string) bool {
	compiledPattern, compileError := regexp.Compile(translateWildcardPattern(pattern))
	if compileError != nil {
		return false
	}
	return compiledPattern.MatchString(name)
}

// translateWildcardPattern converts a shell wildcard pattern into an
// anchored regular expression. "*" becomes ".*", "?" becomes ".", bracket
// expressions carry over with "!" negation, everything else is quoted.
func translateWildcardPattern(pattern string) string {
	var translated strings.Builder
	translated.WriteString(`(?s)\A`)
	position := 0
	for position < len(pattern) {
		currentByte := pattern[position]
		position++
		switch currentByte {
		case '*':
			translated.WriteString(`.*`)
		case '?':
			translated.WriteString(`.`)
		case '[':
			closingIndex := findBracketClose(pattern, position)
			if closingIndex < 0 {
				translated.WriteString(regexp.QuoteMeta(`[`))
				continue
			}
			bracketContent := pattern[position:closingIndex]
			position = closingIndex + 1
			bracketContent = strings.ReplaceAll(bracketContent, `\`, `\\`)
			if strings.HasPrefix(bracketContent, "!") {
				bracketContent = "^" + bracketContent[1:]
			}
			translated.WriteString("[")
			translated.WriteString(bracketContent)
			translated.WriteString("]")
		default:
			translated.WriteString(regexp.QuoteMeta(string(currentByte)))
		}
	}
	translated.WriteString(`\z`)
	return translated.String()
}

// findBracketClose locates the terminating "]" of a bracket expression
// beginning at contentStart. A leading "!" and an immediately following "]"
// are part of the expression, not its terminator.
func findBracketClose(pattern string, contentStart int) int {
	scanIndex := contentStart
	if scanIndex < len(pattern) && pattern[scanIndex] == '!' {
		scanIndex++
	}
	if scanIndex < len(pattern) && pattern[scanIndex] == ']' {
		scanIndex++
	}
	for scanIndex < len(pattern) {
		if pattern[scanIndex] == ']' {
			return scanIndex
		}
		scanIndex++
	}
	return -1
}
