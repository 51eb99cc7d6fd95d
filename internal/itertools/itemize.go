package itertools

import (
	"bytes"
	"iter"
)

// Itemize assembles complete items from a sequence of arbitrarily split
// chunks. Items are delimited by separator; an item may span multiple input
// chunks. A nil or empty separator selects line mode, where items are lines
// terminated by "\n", "\r\n", or "\r". When keepEnds is true each yielded
// item retains its terminating separator. Content after the last separator
// is always yielded as the final item, even without a terminator.
func Itemize(source iter.Seq[[]byte], separator []byte, keepEnds bool) iter.Seq[[]byte] {
	if len(separator) == 0 {
		return itemizeLines(source, keepEnds)
	}
	return itemizeWithSeparator(source, separator, keepEnds)
}

func itemizeWithSeparator(source iter.Seq[[]byte], separator []byte, keepEnds bool) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		var assembled []byte
		for chunk := range source {
			assembled = append(assembled, chunk...)
			for {
				separatorIndex := bytes.Index(assembled, separator)
				if separatorIndex < 0 {
					break
				}
				itemEnd := separatorIndex
				if keepEnds {
					itemEnd += len(separator)
				}
				if !yield(copyBytes(assembled[:itemEnd])) {
					return
				}
				assembled = assembled[separatorIndex+len(separator):]
			}
		}
		if len(assembled) > 0 {
			yield(copyBytes(assembled))
		}
	}
}

func itemizeLines(source iter.Seq[[]byte], keepEnds bool) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		var assembled []byte
		for chunk := range source {
			assembled = append(assembled, chunk...)
			lineStart := 0
			scanIndex := 0
			for scanIndex < len(assembled) {
				terminatorLength := 0
				switch assembled[scanIndex] {
				case '\n':
					terminatorLength = 1
				case '\r':
					if scanIndex == len(assembled)-1 {
						// A trailing carriage return may be the first byte
						// of a split "\r\n"; wait for the next chunk.
						scanIndex = len(assembled)
						continue
					}
					terminatorLength = 1
					if assembled[scanIndex+1] == '\n' {
						terminatorLength = 2
					}
				default:
					scanIndex++
					continue
				}
				itemEnd := scanIndex
				if keepEnds {
					itemEnd += terminatorLength
				}
				if !yield(copyBytes(assembled[lineStart:itemEnd])) {
					return
				}
				scanIndex += terminatorLength
				lineStart = scanIndex
			}
			assembled = copyBytes(assembled[lineStart:])
		}
		if terminatorLength := trailingTerminatorLength(assembled); terminatorLength > 0 {
			// The source ended on a bare carriage return held back above.
			itemEnd := len(assembled) - terminatorLength
			if keepEnds {
				itemEnd = len(assembled)
			}
			yield(copyBytes(assembled[:itemEnd]))
			return
		}
		if len(assembled) > 0 {
			yield(assembled)
		}
	}
}

func trailingTerminatorLength(assembled []byte) int {
	if len(assembled) > 0 && assembled[len(assembled)-1] == '\r' {
		return 1
	}
	return 0
}

func copyBytes(data []byte) []byte {
	duplicated := make([]byte, len(data))
	copy(duplicated, data)
	return duplicated
}
