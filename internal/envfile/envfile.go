// Package envfile loads environment variables from .env files.
// Variables already set in the environment take precedence.
package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load reads a .env file and sets any variables not already in the environment.
// Returns nil if the file doesn't exist. Returns an error only for read or parse failures.
func Load(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// LoadAll loads each file in order. Earlier files win because later files
// never override a variable that is already set.
// The first failure is returned after every file has been tried.
func LoadAll(paths ...string) error {
	var first error
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := Load(path); err != nil && first == nil {
			first = err
		}
	}
	return first
}
