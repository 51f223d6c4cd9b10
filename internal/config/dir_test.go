package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

// setXDG points xdg at the given env values and restores it afterwards.
func setXDG(t *testing.T, env map[string]string) {
	t.Helper()
	// Registered first so it runs after t.Setenv has restored the environment.
	t.Cleanup(xdg.Reload)
	for key, value := range env {
		t.Setenv(key, value)
	}
	xdg.Reload()
}

func TestDir_Default(t *testing.T) {
	t.Setenv(EnvConfigHome, "")

	dir := Dir()
	if dir == "" {
		t.Fatal("Dir() returned empty string")
	}
	if filepath.Base(dir) != AppName {
		t.Errorf("Dir() = %q, want path ending in %q", dir, AppName)
	}
}

func TestDir_ExplicitOverride(t *testing.T) {
	t.Setenv(EnvConfigHome, "/custom/path")
	if got := Dir(); got != "/custom/path" {
		t.Errorf("Dir() = %q, want %q", got, "/custom/path")
	}
}

func TestDir_XDGOverride(t *testing.T) {
	base := t.TempDir()
	t.Setenv(EnvConfigHome, "")
	setXDG(t, map[string]string{"XDG_CONFIG_HOME": base})

	if got, want := Dir(), filepath.Join(base, AppName); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}

func TestDataDir_EnvOverride(t *testing.T) {
	t.Setenv(EnvDataDir, "/srv/drafts")
	got, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir() error = %v", err)
	}
	if got != "/srv/drafts" {
		t.Errorf("DataDir() = %q, want %q", got, "/srv/drafts")
	}
}

func TestDataDir_FromConfigFile(t *testing.T) {
	cfgDir := t.TempDir()
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvConfigHome, cfgDir)
	writeFile(t, filepath.Join(cfgDir, FileName), "data_dir: /var/lib/draftdesk\n")

	got, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir() error = %v", err)
	}
	if got != "/var/lib/draftdesk" {
		t.Errorf("DataDir() = %q, want %q", got, "/var/lib/draftdesk")
	}
}

func TestDataDir_XDGDataHome(t *testing.T) {
	base := t.TempDir()
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvConfigHome, t.TempDir())
	setXDG(t, map[string]string{"XDG_DATA_HOME": base})

	got, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir() error = %v", err)
	}
	if want := filepath.Join(base, AppName); got != want {
		t.Errorf("DataDir() = %q, want %q", got, want)
	}
	if _, statErr := os.Stat(got); !errors.Is(statErr, os.ErrNotExist) {
		t.Errorf("DataDir() should not create the directory, stat err = %v", statErr)
	}
}

func TestDataDir_BadConfig(t *testing.T) {
	cfgDir := t.TempDir()
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvConfigHome, cfgDir)
	writeFile(t, filepath.Join(cfgDir, FileName), "data_dir: [unterminated\n")

	if _, err := DataDir(); err == nil {
		t.Fatal("DataDir() expected error for malformed config")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got, want := expandHome("~/drafts"), filepath.Join(home, "drafts"); got != want {
		t.Errorf("expandHome() = %q, want %q", got, want)
	}
	if got := expandHome("/abs/drafts"); got != "/abs/drafts" {
		t.Errorf("expandHome() = %q, want unchanged", got)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
