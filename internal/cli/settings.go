package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Settings are the tool-level options read from keymapd.toml. They
// configure the CLI and the monitor daemon, not the compiled keymaps.
type Settings struct {
	// ConfigDir is where monitor looks for *.conf files when no explicit
	// paths are given.
	ConfigDir string `toml:"config_dir"`

	// DebounceMS is the watcher settle window in milliseconds.
	DebounceMS int `toml:"debounce_ms"`

	// Verbose enables informational output without the --verbose flag.
	Verbose bool `toml:"verbose"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		ConfigDir:  "/etc/keymapd",
		DebounceMS: 50,
	}
}

// LoadSettings reads the settings file at path, falling back to
// $XDG_CONFIG_HOME/keymapd/keymapd.toml when path is empty. A missing
// file is not an error; defaults are returned.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return s, nil
		}
		path = filepath.Join(dir, "keymapd", "keymapd.toml")
	}

	if _, err := toml.DecodeFile(path, &s); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, err
	}

	return s, nil
}
