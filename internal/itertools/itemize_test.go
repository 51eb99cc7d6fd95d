package itertools_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datalad/datasalad/internal/itertools"
)

func chunkSequence(chunks ...string) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for _, chunk := range chunks {
			if !yield([]byte(chunk)) {
				return
			}
		}
	}
}

func collectStrings(source iter.Seq[[]byte]) []string {
	var collected []string
	for item := range source {
		collected = append(collected, string(item))
	}
	return collected
}

func TestItemizeWithSeparator(testInstance *testing.T) {
	testCases := []struct {
		name          string
		chunks        []string
		separator     string
		keepEnds      bool
		expectedItems []string
	}{
		{
			name:          "items_within_single_chunk",
			chunks:        []string{"a:b:c:"},
			separator:     ":",
			expectedItems: []string{"a", "b", "c"},
		},
		{
			name:          "item_spans_chunks",
			chunks:        []string{"first pa", "rt:second"},
			separator:     ":",
			expectedItems: []string{"first part", "second"},
		},
		{
			name:          "separator_spans_chunks",
			chunks:        []string{"one\r", "\ntwo\r\n"},
			separator:     "\r\n",
			expectedItems: []string{"one", "two"},
		},
		{
			name:          "keep_ends_retains_separator",
			chunks:        []string{"a:b:c"},
			separator:     ":",
			keepEnds:      true,
			expectedItems: []string{"a:", "b:", "c"},
		},
		{
			name:          "multibyte_separator",
			chunks:        []string{"alpha--", "-beta---gamma"},
			separator:     "---",
			expectedItems: []string{"alpha", "beta", "gamma"},
		},
		{
			name:          "unterminated_tail_is_yielded",
			chunks:        []string{"x:y"},
			separator:     ":",
			expectedItems: []string{"x", "y"},
		},
		{
			name:          "empty_input",
			chunks:        nil,
			separator:     ":",
			expectedItems: nil,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			items := collectStrings(itertools.Itemize(chunkSequence(testCase.chunks...), []byte(testCase.separator), testCase.keepEnds))
			require.Equal(testInstance, testCase.expectedItems, items)
		})
	}
}

func TestItemizeLineMode(testInstance *testing.T) {
	testCases := []struct {
		name          string
		chunks        []string
		keepEnds      bool
		expectedItems []string
	}{
		{
			name:          "unix_line_endings",
			chunks:        []string{"one\ntwo\n", "three\n"},
			expectedItems: []string{"one", "two", "three"},
		},
		{
			name:          "mixed_line_endings",
			chunks:        []string{"one\r\ntwo\rthree\nfour"},
			expectedItems: []string{"one", "two", "three", "four"},
		},
		{
			name:          "windows_ending_split_across_chunks",
			chunks:        []string{"one\r", "\ntwo"},
			expectedItems: []string{"one", "two"},
		},
		{
			name:          "keep_ends_retains_terminators",
			chunks:        []string{"one\r\ntwo\nthree"},
			keepEnds:      true,
			expectedItems: []string{"one\r\n", "two\n", "three"},
		},
		{
			name:          "trailing_bare_carriage_return",
			chunks:        []string{"one\r"},
			expectedItems: []string{"one"},
		},
		{
			name:          "trailing_bare_carriage_return_keep_ends",
			chunks:        []string{"one\r"},
			keepEnds:      true,
			expectedItems: []string{"one\r"},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			items := collectStrings(itertools.Itemize(chunkSequence(testCase.chunks...), nil, testCase.keepEnds))
			require.Equal(testInstance, testCase.expectedItems, items)
		})
	}
}

func TestItemizeEarlyTermination(testInstance *testing.T) {
	var items []string
	for item := range itertools.Itemize(chunkSequence("a:b:c:d:"), []byte(":"), false) {
		items = append(items, string(item))
		if len(items) == 2 {
			break
		}
	}
	require.True(testInstance, slices.Equal([]string{"a", "b"}, items))
}
