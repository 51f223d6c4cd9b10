// Package config resolves the draftdesk configuration and data directories.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName names the per-user directories draftdesk owns.
const AppName = "draftdesk"

// Environment overrides.
const (
	EnvConfigHome = "DRAFTDESK_CONFIG_HOME"
	EnvDataDir    = "DRAFTDESK_DATA_DIR"
	EnvLogLevel   = "DRAFTDESK_LOG_LEVEL"
)

// Dir returns the draftdesk configuration directory.
//
// Resolution:
//   - $DRAFTDESK_CONFIG_HOME if set (explicit override)
//   - the platform config home from xdg ($XDG_CONFIG_HOME, ~/Library/Application Support,
//     %LOCALAPPDATA% or ~/.config) joined with "draftdesk"
//
// Returns an empty string if no config home can be determined.
func Dir() string {
	if dir := os.Getenv(EnvConfigHome); dir != "" {
		return dir
	}
	if xdg.ConfigHome == "" {
		return ""
	}
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DataDir returns the application data directory that holds the drafts file.
// It does not create the directory.
//
// Resolution:
//   - $DRAFTDESK_DATA_DIR if set
//   - data_dir from config.yaml
//   - the platform data home from xdg joined with "draftdesk"
func DataDir() (string, error) {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir, nil
	}

	cfg, err := Load()
	if err != nil {
		return "", err
	}
	if cfg.DataDir != "" {
		return expandHome(cfg.DataDir), nil
	}

	if xdg.DataHome == "" {
		return "", ErrNoDataHome
	}
	return filepath.Join(xdg.DataHome, AppName), nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
