package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.ConfigDir != "/etc/keymapd" {
		t.Errorf("ConfigDir = %q", s.ConfigDir)
	}
	if s.DebounceMS != 50 {
		t.Errorf("DebounceMS = %d", s.DebounceMS)
	}
	if s.Verbose {
		t.Error("Verbose defaults to true")
	}
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keymapd.toml")
	content := `config_dir = "/opt/keymapd"
debounce_ms = 200
verbose = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.ConfigDir != "/opt/keymapd" {
		t.Errorf("ConfigDir = %q", s.ConfigDir)
	}
	if s.DebounceMS != 200 {
		t.Errorf("DebounceMS = %d", s.DebounceMS)
	}
	if !s.Verbose {
		t.Error("Verbose not set")
	}
}

func TestLoadSettingsPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keymapd.toml")
	if err := os.WriteFile(path, []byte("verbose = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.ConfigDir != "/etc/keymapd" || s.DebounceMS != 50 {
		t.Errorf("defaults disturbed: %+v", s)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nosuch.toml"))
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.ConfigDir != "/etc/keymapd" {
		t.Errorf("ConfigDir = %q", s.ConfigDir)
	}
}

func TestLoadSettingsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keymapd.toml")
	if err := os.WriteFile(path, []byte("config_dir = [broken\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSettings(path); err == nil {
		t.Error("expected an error for malformed TOML")
	}
}
