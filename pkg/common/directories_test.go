package common

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDirectory(t *testing.T) {
	previous := Directory
	defer SetDirectory(previous)

	dir := filepath.Join(t.TempDir(), "state")
	SetDirectory(dir)

	assert.Equal(t, filepath.Join(dir, "last.yaml"), LastInputsFile)
	require.NoError(t, TryMkdir(Directory))
	assert.DirExists(t, dir)
	require.NoError(t, TryMkdir(Directory))
}
