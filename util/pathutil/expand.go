// Package pathutil resolves user-supplied paths from the command line
// and configuration files.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Expand expands a home directory prefix (~) and environment variables
// in a path and returns it absolute.
func Expand(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	path = os.ExpandEnv(path)

	return filepath.Abs(path)
}

// ExpandLenient expands like Expand but returns the input unchanged
// when resolution fails. Used where a best effort beats an error, like
// log file paths from configuration.
func ExpandLenient(path string) string {
	expanded, err := Expand(path)
	if err != nil {
		return path
	}
	return expanded
}
