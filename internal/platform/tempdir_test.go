package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTempDir_IsProcessScoped(t *testing.T) {
	first, err := TempDir()
	require.NoError(t, err)
	second, err := TempDir()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(filepath.Base(first), TempDirPattern))

	info, err := os.Stat(first)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
