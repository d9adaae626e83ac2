package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsStringAndIndexOf(t *testing.T) {
	t.Parallel()

	values := []string{"january", "february", "march"}
	assert.True(t, ContainsString("march", values))
	assert.False(t, ContainsString("March", values))
	assert.Equal(t, 1, IndexOf("february", values))
	assert.Equal(t, -1, IndexOf("june", values))
	assert.Equal(t, -1, IndexOf("june", nil))
}

func TestNormalizeInput(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "new york", NormalizeInput("  New York\r\n"))
	assert.Equal(t, "", NormalizeInput("   "))
}

func TestGetConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("page_size: 5\n"), 0o600))

	content, err := GetConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "page_size: 5\n", string(content))

	_, err = GetConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
