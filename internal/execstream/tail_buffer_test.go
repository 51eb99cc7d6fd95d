package execstream

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTailBufferRetainsMostRecentWindow(testInstance *testing.T) {
	testCases := []struct {
		name     string
		window   int
		appends  [][]byte
		expected []byte
	}{
		{
			name:     "under_window",
			window:   16,
			appends:  [][]byte{[]byte("abc"), []byte("def")},
			expected: []byte("abcdef"),
		},
		{
			name:     "exact_window",
			window:   6,
			appends:  [][]byte{[]byte("abc"), []byte("def")},
			expected: []byte("abcdef"),
		},
		{
			name:     "evicts_oldest",
			window:   4,
			appends:  [][]byte{[]byte("abcd"), []byte("efgh"), []byte("ij")},
			expected: []byte("ghij"),
		},
		{
			name:     "single_oversized_chunk",
			window:   4,
			appends:  [][]byte{[]byte("abcdefgh")},
			expected: []byte("efgh"),
		},
		{
			name:     "empty_appends_ignored",
			window:   4,
			appends:  [][]byte{nil, []byte("wx"), nil, []byte("yz")},
			expected: []byte("wxyz"),
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			buffer := newTailBuffer(testCase.window)
			for _, chunk := range testCase.appends {
				buffer.Append(chunk)
			}
			require.Equal(testInstance, testCase.expected, buffer.Bytes())
			require.LessOrEqual(testInstance, len(buffer.Bytes()), testCase.window)
		})
	}
}

func TestTailBufferRollingAppendStaysBounded(testInstance *testing.T) {
	buffer := newTailBuffer(64)
	payload := bytes.Repeat([]byte{'s'}, 24)
	for appendIndex := 0; appendIndex < 1000; appendIndex++ {
		buffer.Append(payload)
	}
	require.LessOrEqual(testInstance, buffer.totalLength, 64+len(payload))
	require.LessOrEqual(testInstance, len(buffer.Bytes()), 64)
}
