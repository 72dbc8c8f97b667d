package backup

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "default_root: /srv/fmeflow\ndestination: /mnt/backups\n")

	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/fmeflow", s.DefaultRoot)
	assert.Equal(t, "/mnt/backups", s.Destination)
}

func TestLoadSettingsMissingFileYieldsDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultRoot(), s.DefaultRoot)
	assert.Empty(t, s.Destination)
}

func TestLoadSettingsEmptyPathYieldsDefaults(t *testing.T) {
	s, err := LoadSettings("")
	require.NoError(t, err)

	assert.Equal(t, DefaultRoot(), s.DefaultRoot)
	assert.Empty(t, s.Destination)
}

func TestLoadSettingsPartialFileKeepsDefaultRoot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "destination: /mnt/backups\n")

	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultRoot(), s.DefaultRoot)
	assert.Equal(t, "/mnt/backups", s.Destination)
}
