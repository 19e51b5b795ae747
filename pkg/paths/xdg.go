// Package paths resolves lectern's XDG directories.
//
// Each base directory resolves in order: the LECTERN_HOME portable root
// ($LECTERN_HOME/config and friends), then the matching XDG variable,
// then the home-relative platform default.
package paths

import (
	"os"
	"path/filepath"
)

const appName = "lectern"

// baseDir resolves one XDG base directory.
func baseDir(portableSub, xdgVar string, defaults ...string) string {
	if root := os.Getenv("LECTERN_HOME"); root != "" {
		return filepath.Join(root, portableSub)
	}
	if dir := os.Getenv(xdgVar); dir != "" {
		return dir
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, filepath.Join(defaults...))
	}
	return ""
}

// appDir appends the lectern directory to a base, preserving "" for an
// unresolvable base.
func appDir(base string) string {
	if base == "" {
		return ""
	}
	return filepath.Join(base, appName)
}

// ConfigDir returns the directory of the global lectern.yml.
func ConfigDir() string {
	return appDir(baseDir("config", "XDG_CONFIG_HOME", ".config"))
}

// GlobalConfigFile returns the path of the global lectern.yml, or ""
// when no home directory can be resolved.
func GlobalConfigFile() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "lectern.yml")
}

// DataDir returns the directory for persistent artifacts like exported
// decks.
func DataDir() string {
	return appDir(baseDir("data", "XDG_DATA_HOME", ".local", "share"))
}

// StateDir returns the directory for log files. It falls back to the
// system temp directory so logging still works without a resolvable
// home.
func StateDir() string {
	if dir := appDir(baseDir("state", "XDG_STATE_HOME", ".local", "state")); dir != "" {
		return dir
	}
	return filepath.Join(os.TempDir(), appName)
}

// CacheDir returns the directory for regenerable data.
func CacheDir() string {
	return appDir(baseDir("cache", "XDG_CACHE_HOME", ".cache"))
}

// LogsDir returns the directory lectern writes log files to.
func LogsDir() string {
	return filepath.Join(StateDir(), "logs")
}

// EnsureDirs creates all lectern directories that resolve.
func EnsureDirs() error {
	for _, dir := range []string{ConfigDir(), DataDir(), StateDir(), CacheDir(), LogsDir()} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
