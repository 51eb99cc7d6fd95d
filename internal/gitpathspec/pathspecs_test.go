package gitpathspec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datalad/datasalad/internal/gitpathspec"
)

func TestPathSpecsUnconstrainedContainer(testInstance *testing.T) {
	unconstrained, creationError := gitpathspec.NewPathSpecs()
	require.NoError(testInstance, creationError)
	require.True(testInstance, unconstrained.Empty())
	require.Empty(testInstance, unconstrained.ArgList())
	require.True(testInstance, unconstrained.AnyMatchSubdir("dummy"))

	translated, translateError := unconstrained.ForSubdir("dummy")
	require.NoError(testInstance, translateError)
	require.True(testInstance, translated.Empty())
}

func TestPathSpecsForSubdirTranslatesAll(testInstance *testing.T) {
	collection, creationError := gitpathspec.NewPathSpecs("*.jpg", "dir/*.png")
	require.NoError(testInstance, creationError)
	require.Equal(testInstance, 2, collection.Len())
	require.True(testInstance, collection.AnyMatchSubdir("dummy"))

	translated, translateError := collection.ForSubdir("dir")
	require.NoError(testInstance, translateError)
	require.Equal(testInstance, []string{"*.jpg", "*.png"}, translated.ArgList())
}

func TestPathSpecsForSubdirFailsWithoutTranslation(testInstance *testing.T) {
	collection, creationError := gitpathspec.NewPathSpecs("other/*.png")
	require.NoError(testInstance, creationError)
	require.False(testInstance, collection.AnyMatchSubdir("dir"))

	_, translateError := collection.ForSubdir("dir")
	require.ErrorIs(testInstance, translateError, gitpathspec.ErrNoTranslation)
}

func TestPathSpecsPropagatesParseFailures(testInstance *testing.T) {
	_, creationError := gitpathspec.NewPathSpecs("*.jpg", ":(glob,literal)broken")
	require.ErrorIs(testInstance, creationError, gitpathspec.ErrIncompatibleMagic)
}
