package rewrite_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixand/internal/rewrite"
)

// Helper to create a temporary source file with given content
func createTempSourceFile(t *testing.T, content string, perm os.FileMode) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Component.tsx")
	require.NoError(t, os.WriteFile(path, []byte(content), perm))
	return path
}

func TestRewriteFile(t *testing.T) {
	path := createTempSourceFile(t, "<View>{open && (<Modal/>)}</View>\n", 0o600)

	res, err := rewrite.RewriteFile(path, rewrite.New(), rewrite.FileOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Rewrites)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<View>{open ? (\n<Modal/>\n) : null}</View>\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRewriteFile_DryRun(t *testing.T) {
	const content = "{open && (<Modal/>)}"
	path := createTempSourceFile(t, content, 0o644)

	res, err := rewrite.RewriteFile(path, rewrite.New(), rewrite.FileOptions{DryRun: true})
	require.NoError(t, err)
	assert.True(t, res.Changed())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestRewriteFile_Unchanged(t *testing.T) {
	path := createTempSourceFile(t, "{open ? (<Modal/>) : null}", 0o644)

	res, err := rewrite.RewriteFile(path, rewrite.New(), rewrite.FileOptions{})
	require.NoError(t, err)
	assert.False(t, res.Changed())
	assert.Zero(t, res.Rewrites)
}

func TestRewriteFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := rewrite.RewriteFile(filepath.Join(t.TempDir(), "nope.tsx"), rewrite.New(), rewrite.FileOptions{})
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := rewrite.RewriteFile(t.TempDir(), rewrite.New(), rewrite.FileOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is a directory")
	})
}
