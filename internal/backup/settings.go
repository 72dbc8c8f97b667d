package backup

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Settings are optional, tool-level preferences. The backup item list is
// fixed at build time and is deliberately not part of the settings file.
type Settings struct {
	// DefaultRoot overrides the installation root offered by the prompt.
	DefaultRoot string `mapstructure:"default_root"`

	// Destination overrides the parent directory of backup folders.
	// Empty means the current user's home directory.
	Destination string `mapstructure:"destination"`
}

// LoadSettings reads the optional YAML settings file at path. A missing
// or empty path yields built-in defaults.
func LoadSettings(path string) (*Settings, error) {
	defaults := &Settings{DefaultRoot: DefaultRoot()}
	if path == "" {
		return defaults, nil
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)

	v.SetDefault("default_root", DefaultRoot())

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return nil, err
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	return &s, nil
}
