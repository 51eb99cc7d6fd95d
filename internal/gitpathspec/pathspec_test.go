package gitpathspec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datalad/datasalad/internal/gitpathspec"
)

func TestParsePathSpecNormalizedRendering(testInstance *testing.T) {
	testCases := []struct {
		name         string
		pathspec     string
		expectedForm string
	}{
		{name: "no_pathspecs", pathspec: ":", expectedForm: ":"},
		{name: "plain_directory", pathspec: "aba", expectedForm: "aba"},
		{name: "trailing_slash", pathspec: "aba/", expectedForm: "aba/"},
		{name: "pattern_with_prefix", pathspec: "dir/*.jpg", expectedForm: "dir/*.jpg"},
		{name: "long_form_glob", pathspec: ":(glob)aba/*.txt", expectedForm: ":(glob)aba/*.txt"},
		{name: "long_form_literal", pathspec: ":(literal)aba", expectedForm: ":(literal)aba"},
		{name: "short_form_top", pathspec: ":/aba/*.txt", expectedForm: ":(top)aba/*.txt"},
		{name: "short_form_exclude", pathspec: ":!secret/*", expectedForm: ":(exclude)secret/*"},
		{name: "short_form_exclude_caret", pathspec: ":^secret/*", expectedForm: ":(exclude)secret/*"},
		{name: "combined_magic", pathspec: ":(literal,icase)SuB/A?A/a.jpg", expectedForm: ":(literal,icase)SuB/A?A/a.jpg"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			parsed, parseError := gitpathspec.ParsePathSpec(testCase.pathspec)
			require.NoError(testInstance, parseError)
			require.Equal(testInstance, testCase.expectedForm, parsed.String())
		})
	}
}

func TestParsePathSpecRejectsIncompatibleMagic(testInstance *testing.T) {
	_, parseError := gitpathspec.ParsePathSpec(":(glob,literal)broken")
	require.ErrorIs(testInstance, parseError, gitpathspec.ErrIncompatibleMagic)
}

func TestParsePathSpecRejectsUnterminatedMagic(testInstance *testing.T) {
	_, parseError := gitpathspec.ParsePathSpec(":(glob missing")
	require.ErrorIs(testInstance, parseError, gitpathspec.ErrMalformedPathspec)
}

func TestNoPathspecsDetection(testInstance *testing.T) {
	parsed, parseError := gitpathspec.ParsePathSpec(":")
	require.NoError(testInstance, parseError)
	require.True(testInstance, parsed.IsNoPathspecs())

	nonEmpty, _ := gitpathspec.ParsePathSpec("aba")
	require.False(testInstance, nonEmpty.IsNoPathspecs())
}

func TestForSubdirTranslations(testInstance *testing.T) {
	testCases := []struct {
		subdir        string
		pathspec      string
		expectedForms []string
	}{
		{subdir: "abc", pathspec: ":", expectedForms: []string{":"}},
		{subdir: "murks", pathspec: ":(top)crazy*", expectedForms: []string{":(top)crazy*"}},
		{subdir: "abc", pathspec: "not", expectedForms: nil},
		{subdir: "abc", pathspec: "ABC", expectedForms: nil},
		{subdir: "abc", pathspec: "a?c", expectedForms: []string{":"}},
		{subdir: "abc", pathspec: "abc", expectedForms: []string{":"}},
		{subdir: "abc", pathspec: "abc/", expectedForms: []string{":"}},
		{subdir: "abc", pathspec: ":(icase)ABC", expectedForms: []string{":"}},
		{subdir: "ABC", pathspec: ":(icase)abc", expectedForms: []string{":"}},
		{subdir: "abc", pathspec: "abc/*.jpg", expectedForms: []string{"*.jpg"}},
		{subdir: "abc", pathspec: "*.jpg", expectedForms: []string{"*.jpg"}},
		{subdir: "abc", pathspec: "*/*.jpg", expectedForms: []string{"*/*.jpg", "*.jpg"}},
		{subdir: "abc", pathspec: "*bc*.jpg", expectedForms: []string{"*bc*.jpg", "*.jpg"}},
		{subdir: "abc", pathspec: ":(exclude)*/*.jpg", expectedForms: []string{":(exclude)*/*.jpg", ":(exclude)*.jpg"}},
		{subdir: "abc", pathspec: ":(icase,exclude)*/*.jpg", expectedForms: []string{":(icase,exclude)*/*.jpg", ":(icase,exclude)*.jpg"}},
		{subdir: "abc", pathspec: ":(glob)*bc*.jpg", expectedForms: nil},
		{subdir: "abc", pathspec: ":(glob)*bc**.jpg", expectedForms: []string{":(glob)**.jpg"}},
		{subdir: "abc/123", pathspec: "some.jpg", expectedForms: nil},
		{subdir: "abc/123", pathspec: "*.jpg", expectedForms: []string{"*.jpg"}},
		{subdir: "abc/123", pathspec: "abc/*", expectedForms: []string{":"}},
		{subdir: "abc/123", pathspec: "abc", expectedForms: []string{":"}},
		{subdir: "abc/123", pathspec: ":(glob)abc", expectedForms: []string{":"}},
		{subdir: "abc/123", pathspec: "*123", expectedForms: []string{"*123", ":"}},
		{subdir: "abc/123", pathspec: "*/123", expectedForms: []string{"*/123", ":"}},
		{subdir: "abc/123", pathspec: ":(glob)*/123", expectedForms: []string{":"}},
		{subdir: "abc", pathspec: ":(literal)a?c", expectedForms: nil},
		{subdir: "a?c", pathspec: ":(literal)a?c", expectedForms: []string{":"}},
		{subdir: "a?c", pathspec: ":(literal)a?c/*?ab*", expectedForms: []string{":(literal)*?ab*"}},
		{subdir: "a?c/123", pathspec: ":(literal)a?c", expectedForms: []string{":"}},
		{subdir: "abc/123/ABC", pathspec: "a*/1?3/*.jpg", expectedForms: []string{"*/1?3/*.jpg", "*.jpg", "1?3/*.jpg"}},
		{subdir: "abc", pathspec: ":(exclude)abc", expectedForms: []string{":"}},
		{subdir: "abc/123", pathspec: ":(exclude)abc", expectedForms: []string{":"}},
		{subdir: "a?c", pathspec: ":(exclude,literal)a?c", expectedForms: []string{":"}},
		{subdir: "sub", pathspec: "sub/aba/*.txt", expectedForms: []string{"aba/*.txt"}},
		{subdir: "abc", pathspec: ":(icase)A?C/a.jpg", expectedForms: []string{":(icase)a.jpg"}},
		{subdir: "nope/abc", pathspec: "no*/a?c/a.jpg", expectedForms: []string{"*/a?c/a.jpg", "a.jpg"}},
		{subdir: "sub/a?a", pathspec: ":(literal,icase)SuB/A?A/a.jpg", expectedForms: []string{":(literal,icase)a.jpg"}},
	}

	for _, testCase := range testCases {
		for _, targetPath := range []string{testCase.subdir, testCase.subdir + "/"} {
			parsed, parseError := gitpathspec.ParsePathSpec(testCase.pathspec)
			require.NoError(testInstance, parseError)
			translated := parsed.ForSubdir(targetPath)
			var translatedForms []string
			for _, translatedSpec := range translated {
				translatedForms = append(translatedForms, translatedSpec.String())
			}
			require.Equal(testInstance, testCase.expectedForms, translatedForms,
				"pathspec %q for subdir %q", testCase.pathspec, targetPath)
		}
	}
}

func TestForSubdirWithoutTargetReturnsSelf(testInstance *testing.T) {
	parsed, _ := gitpathspec.ParsePathSpec("dir/*.jpg")
	translated := parsed.ForSubdir("")
	require.Len(testInstance, translated, 1)
	require.Equal(testInstance, "dir/*.jpg", translated[0].String())
}
