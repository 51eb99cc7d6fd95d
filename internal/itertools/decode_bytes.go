package itertools

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"
)

const (
	decodingFailureTemplateConstant  = "unable to decode byte 0x%02x at offset %d"
	backslashEscapeTemplateConstant  = "\\x%02x"
	maximumEncodedRuneLengthConstant = utf8.UTFMax
)

// DecodingError reports a byte that could not be decoded as UTF-8 while
// backslash replacement was disabled.
type DecodingError struct {
	// Byte is the offending byte value.
	Byte byte

	// Offset is the position of the byte within the decoded stream.
	Offset int
}

// Error describes the undecodable byte and its stream offset.
func (decodingError DecodingError) Error() string {
	return fmt.Sprintf(decodingFailureTemplateConstant, decodingError.Byte, decodingError.Offset)
}

// DecodeBytes decodes a sequence of byte chunks into strings. Multi-byte
// UTF-8 sequences split across chunk boundaries are joined before decoding,
// so chunk boundaries never cause spurious failures. Undecodable bytes are
// replaced with a "\xNN" escape when backslashReplace is true; otherwise
// decoding stops with a DecodingError. Output chunking does not mirror
// input chunking.
func DecodeBytes(source iter.Seq[[]byte], backslashReplace bool) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		var pending []byte
		streamOffset := 0
		for chunk := range source {
			pending = append(pending, chunk...)
			completeLength := len(pending) - incompleteTailLength(pending)
			decoded, decodeError := decodeSegment(pending[:completeLength], streamOffset, backslashReplace)
			if decodeError != nil {
				yield("", decodeError)
				return
			}
			streamOffset += completeLength
			pending = copyBytes(pending[completeLength:])
			if len(decoded) > 0 && !yield(decoded, nil) {
				return
			}
		}
		if len(pending) > 0 {
			decoded, decodeError := decodeSegment(pending, streamOffset, backslashReplace)
			if decodeError != nil {
				yield("", decodeError)
				return
			}
			if len(decoded) > 0 {
				yield(decoded, nil)
			}
		}
	}
}

// incompleteTailLength returns the length of a trailing byte sequence that
// is a valid but incomplete prefix of a multi-byte encoding. Such a tail
// must wait for the next chunk before being judged undecodable.
func incompleteTailLength(data []byte) int {
	inspectionStart := len(data) - maximumEncodedRuneLengthConstant
	if inspectionStart < 0 {
		inspectionStart = 0
	}
	for position := len(data) - 1; position >= inspectionStart; position-- {
		leadByte := data[position]
		if leadByte < utf8.RuneSelf {
			return 0
		}
		if !utf8.RuneStart(leadByte) {
			continue
		}
		sequenceLength := encodedRuneLength(leadByte)
		if sequenceLength <= 0 {
			return 0
		}
		if position+sequenceLength <= len(data) {
			// The sequence fits entirely; whether it is valid is decided
			// during decoding.
			return 0
		}
		if !isValidRunePrefix(data[position:], sequenceLength) {
			return 0
		}
		return len(data) - position
	}
	return 0
}

func encodedRuneLength(leadByte byte) int {
	switch {
	case leadByte&0xe0 == 0xc0:
		return 2
	case leadByte&0xf0 == 0xe0:
		return 3
	case leadByte&0xf8 == 0xf0:
		return 4
	default:
		return 0
	}
}

func isValidRunePrefix(prefix []byte, sequenceLength int) bool {
	if len(prefix) >= sequenceLength {
		return false
	}
	for _, continuationByte := range prefix[1:] {
		if continuationByte&0xc0 != 0x80 {
			return false
		}
	}
	return true
}

func decodeSegment(segment []byte, segmentOffset int, backslashReplace bool) (string, error) {
	var decoded strings.Builder
	position := 0
	for position < len(segment) {
		decodedRune, runeLength := utf8.DecodeRune(segment[position:])
		if decodedRune == utf8.RuneError && runeLength == 1 {
			if !backslashReplace {
				return "", DecodingError{Byte: segment[position], Offset: segmentOffset + position}
			}
			fmt.Fprintf(&decoded, backslashEscapeTemplateConstant, segment[position])
			position++
			continue
		}
		decoded.WriteRune(decodedRune)
		position += runeLength
	}
	return decoded.String(), nil
}
