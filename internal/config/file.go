package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file inside Dir().
const FileName = "config.yaml"

// ErrNoDataHome is returned when the platform reports no data directory.
var ErrNoDataHome = errors.New("no platform data directory available")

// File is the optional draftdesk config file.
type File struct {
	DataDir  string `yaml:"data_dir,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

// Load reads config.yaml from Dir().
// A missing file or config directory yields an empty File.
func Load() (*File, error) {
	dir := Dir()
	if dir == "" {
		return &File{}, nil
	}
	return LoadFrom(filepath.Join(dir, FileName))
}

// LoadFrom reads a config file from path.
// Unknown keys are rejected so typos surface instead of being ignored.
func LoadFrom(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}
