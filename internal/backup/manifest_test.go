package backup

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestIsFixed(t *testing.T) {
	items := Manifest()
	require.Len(t, items, 6)

	assert.Equal(t, filepath.Join("Utilities", "tomcat", "conf"), items[0].RelPath)
	assert.Equal(t, KindDir, items[0].Kind)
	assert.Equal(t, filepath.Join("Server", "fmeFlowConfig"), items[1].RelPath)
	assert.Equal(t, KindDir, items[1].Kind)
	assert.Equal(t, filepath.Join("Server", "fmeWebSocketConfig.txt"), items[5].RelPath)
	assert.Equal(t, KindFile, items[5].Kind)
}

func TestSourcePathsJoinInOrder(t *testing.T) {
	root := filepath.Join("some", "install")
	paths := SourcePaths(root)
	items := Manifest()

	require.Len(t, paths, len(items))
	for i, item := range items {
		assert.Equal(t, filepath.Join(root, item.RelPath), paths[i])
	}
}

func TestDestName(t *testing.T) {
	ts := time.Date(2026, 8, 23, 14, 5, 9, 0, time.Local)
	assert.Equal(t, "fmeFlowConfigBackup_20260823_140509", DestName(ts))
}
