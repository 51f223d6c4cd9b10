// Package drafts persists the draft collection as a single JSON array file
// in the application data directory.
package drafts

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// FileName is the name of the drafts file inside the data directory.
const FileName = "skeet-drafts.json"

// EmptyCollection is returned by Load when no drafts file exists yet.
const EmptyCollection = "[]"

var errInvalidUTF8 = errors.New("invalid UTF-8")

// Locator resolves the directory that holds the drafts file.
type Locator func() (string, error)

// StaticDir returns a Locator that always resolves to dir.
func StaticDir(dir string) Locator {
	return func() (string, error) {
		return dir, nil
	}
}

// Store reads and writes the drafts file.
// It keeps no state between calls: every operation resolves the
// location again and touches the filesystem.
type Store struct {
	locate Locator
	log    zerolog.Logger
}

// NewStore creates a Store that keeps its file in the directory returned by locate.
// If logger is nil, the store does not log.
func NewStore(locate Locator, logger *zerolog.Logger) *Store {
	store := &Store{locate: locate, log: zerolog.Nop()}
	if logger != nil {
		store.log = logger.With().Str("component", "drafts").Logger()
	}
	return store
}

// Path resolves the absolute drafts file path, creating the data directory if needed.
func (s *Store) Path() (string, error) {
	if s.locate == nil {
		return "", newError(KindLocationUnavailable, "", errors.New("no locator configured"))
	}
	dir, err := s.locate()
	if err != nil {
		return "", newError(KindLocationUnavailable, "", err)
	}
	if dir == "" {
		return "", newError(KindLocationUnavailable, "", nil)
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		return "", newError(KindLocationUnavailable, "", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", newError(KindDirectoryCreateFailed, dir, err)
	}
	return filepath.Join(dir, FileName), nil
}

// Location returns the drafts file path for display.
func (s *Store) Location() (string, error) {
	return s.Path()
}

// Load returns the stored collection as a compact JSON array.
// A missing file yields EmptyCollection.
func (s *Store) Load() (string, error) {
	path, err := s.Path()
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Debug().Str("path", path).Msg("no drafts file yet")
			return EmptyCollection, nil
		}
		return "", newError(KindReadFailed, path, err)
	}

	raw, err := validateArray(data)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", newError(KindParseFailed, path, err)
	}
	s.log.Debug().Str("path", path).Int("bytes", len(data)).Msg("loaded drafts")
	return buf.String(), nil
}

// Save replaces the drafts file with data, which must be a JSON array.
// The file is rewritten in place; invalid input never reaches the disk.
func (s *Store) Save(data string) error {
	path, err := s.Path()
	if err != nil {
		return err
	}

	raw, err := validateArray([]byte(data))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return newError(KindParseFailed, path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return newError(KindWriteFailed, path, err)
	}
	s.log.Debug().Str("path", path).Int("bytes", buf.Len()).Msg("saved drafts")
	return nil
}

// validateArray checks that raw is valid UTF-8 JSON with an array at the top
// level and returns it with surrounding whitespace trimmed.
func validateArray(raw []byte) (json.RawMessage, error) {
	// json.Unmarshal substitutes U+FFFD for bad bytes instead of failing.
	if !utf8.Valid(raw) {
		return nil, newError(KindParseFailed, "", errInvalidUTF8)
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, newError(KindParseFailed, "", err)
	}
	if _, ok := value.([]any); !ok {
		return nil, newError(KindInvalidFormat, "", nil)
	}
	return json.RawMessage(bytes.TrimSpace(raw)), nil
}
