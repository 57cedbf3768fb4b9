package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogPath != "/var/log/ufw.log" {
		t.Errorf("LogPath = %q, want default", cfg.LogPath)
	}
	if cfg.PollSeconds != 1 {
		t.Errorf("PollSeconds = %d, want 1", cfg.PollSeconds)
	}
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "log_path = \"" + filepath.Join(dir, "kern.log") + "\"\npoll_seconds = 5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogPath != filepath.Join(dir, "kern.log") {
		t.Errorf("LogPath = %q", cfg.LogPath)
	}
	if cfg.PollSeconds != 5 {
		t.Errorf("PollSeconds = %d, want 5", cfg.PollSeconds)
	}
}

func TestLoadBlankAndInvalidValuesFallBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("log_path = \"  \"\npoll_seconds = -3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogPath != "/var/log/ufw.log" {
		t.Errorf("LogPath = %q, want default for blank value", cfg.LogPath)
	}
	if cfg.PollSeconds != 1 {
		t.Errorf("PollSeconds = %d, want default for non-positive value", cfg.PollSeconds)
	}
}

func TestLoadMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("log_path = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load() error = %v, want parse failure", err)
	}
}
