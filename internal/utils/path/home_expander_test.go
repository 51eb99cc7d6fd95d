package pathutils_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/datalad/datasalad/internal/utils/path"
)

const (
	testHomeDirectoryConstant          = "/home/streamer"
	testCaseBareTildeNameConstant      = "bare_tilde"
	testCaseTildePrefixNameConstant    = "tilde_prefix"
	testCaseAbsolutePathNameConstant   = "absolute_path_unchanged"
	testCaseEmptyPathNameConstant      = "empty_path_unchanged"
	testCaseEmbeddedTildeNameConstant  = "embedded_tilde_unchanged"
	testProviderFailureMessageConstant = "home directory unavailable"
	testCandidateWorkDirectoryConstant = "~/work/data"
	testAbsoluteCandidatePathConstant  = "/var/lib/data"
	testEmbeddedTildeCandidateConstant = "/var/~cache"
)

func TestHomeExpanderExpand(testInstance *testing.T) {
	testCases := []struct {
		name          string
		candidatePath string
		expectedPath  string
	}{
		{
			name:          testCaseBareTildeNameConstant,
			candidatePath: "~",
			expectedPath:  testHomeDirectoryConstant,
		},
		{
			name:          testCaseTildePrefixNameConstant,
			candidatePath: testCandidateWorkDirectoryConstant,
			expectedPath:  filepath.Join(testHomeDirectoryConstant, "work", "data"),
		},
		{
			name:          testCaseAbsolutePathNameConstant,
			candidatePath: testAbsoluteCandidatePathConstant,
			expectedPath:  testAbsoluteCandidatePathConstant,
		},
		{
			name:          testCaseEmptyPathNameConstant,
			candidatePath: "",
			expectedPath:  "",
		},
		{
			name:          testCaseEmbeddedTildeNameConstant,
			candidatePath: testEmbeddedTildeCandidateConstant,
			expectedPath:  testEmbeddedTildeCandidateConstant,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			expander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
				return testHomeDirectoryConstant, nil
			})

			expandedPath := expander.Expand(testCase.candidatePath)
			require.Equal(subtestInstance, testCase.expectedPath, expandedPath)
		})
	}
}

func TestHomeExpanderProviderFailureLeavesPathUnchanged(testInstance *testing.T) {
	expander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		return "", errors.New(testProviderFailureMessageConstant)
	})

	require.Equal(testInstance, testCandidateWorkDirectoryConstant, expander.Expand(testCandidateWorkDirectoryConstant))
}
