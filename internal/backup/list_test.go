package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListReturnsBackupsNewestFirst(t *testing.T) {
	parent := t.TempDir()

	older := filepath.Join(parent, "fmeFlowConfigBackup_20260822_090000")
	newer := filepath.Join(parent, "fmeFlowConfigBackup_20260823_090000")
	require.NoError(t, os.Mkdir(older, 0755))
	require.NoError(t, os.Mkdir(newer, 0755))
	writeFile(t, filepath.Join(newer, "fmeFlowConfig.txt"), "PORT=7071")
	writeFile(t, filepath.Join(newer, "fmeCommonConfig.txt"), "DIR=/data")

	// Neither of these should show up.
	require.NoError(t, os.Mkdir(filepath.Join(parent, "Downloads"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(parent, "fmeFlowConfigBackup_garbage"), 0755))
	writeFile(t, filepath.Join(parent, "fmeFlowConfigBackup_20260821_090000"), "a file, not a dir")

	entries, err := List(parent)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, newer, entries[0].Path)
	assert.Equal(t, 2, entries[0].Items)
	assert.Equal(t, older, entries[1].Path)
	assert.Equal(t, 0, entries[1].Items)
}

func TestListEmptyParent(t *testing.T) {
	entries, err := List(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListMissingParent(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
