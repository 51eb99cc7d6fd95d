package itertools

import (
	"bytes"
	"iter"
)

// AlignPattern joins consecutive chunks so that a plain bytes.Contains
// check on each yielded chunk suffices to find the pattern in the stream.
// Every yielded chunk has at least the length of the pattern and never ends
// with a proper prefix of the pattern, except for the final chunk when the
// source is exhausted. The pattern is matched verbatim; a yielded chunk may
// contain it multiple times. Nothing is held back after a yield, so the
// underlying sequence can be consumed directly once alignment is no longer
// needed.
func AlignPattern(source iter.Seq[[]byte], pattern []byte) iter.Seq[[]byte] {
	if len(pattern) == 0 {
		return source
	}
	return func(yield func([]byte) bool) {
		var currentChunk []byte
		for dataChunk := range source {
			currentChunk = append(currentChunk, dataChunk...)
			if len(currentChunk) >= len(pattern) && !endsWithProperPatternPrefix(currentChunk, pattern) {
				if !yield(currentChunk) {
					return
				}
				currentChunk = nil
			}
		}
		if len(currentChunk) > 0 {
			yield(currentChunk)
		}
	}
}

func endsWithProperPatternPrefix(chunk []byte, pattern []byte) bool {
	for prefixLength := len(pattern) - 1; prefixLength >= 1; prefixLength-- {
		if bytes.HasSuffix(chunk, pattern[:prefixLength]) {
			return true
		}
	}
	return false
}
