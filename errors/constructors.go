package errors

import (
	"fmt"
)

// DocumentNotFound reports a document path that does not exist.
func DocumentNotFound(path string) *LecternError {
	return New(ErrCodeDocNotFound, fmt.Sprintf("document not found: %s", path)).
		WithDetail("path", path)
}

// UnsupportedFormat reports a document extension lectern cannot present.
func UnsupportedFormat(path, ext string) *LecternError {
	return New(ErrCodeDocUnsupportedFormat,
		fmt.Sprintf("unsupported document format '%s' for %s", ext, path)).
		WithDetail("path", path).
		WithDetail("extension", ext)
}

// ParseFailed wraps a markup parse failure for the given document.
func ParseFailed(path string, err error) *LecternError {
	return Wrap(err, ErrCodeDocParseFailed, fmt.Sprintf("failed to parse document: %s", path)).
		WithDetail("path", path)
}

// PositionIO wraps a read or write failure on the position file.
func PositionIO(path string, err error) *LecternError {
	return Wrap(err, ErrCodePositionIO, fmt.Sprintf("position store failure: %s", path)).
		WithDetail("path", path)
}

// ConfigNotFound reports that no configuration file exists at or
// above the given path.
func ConfigNotFound(path string) *LecternError {
	return New(ErrCodeConfigNotFound, "no configuration file found: "+path).
		WithDetail("path", path)
}

// ConfigInvalid reports a configuration that fails validation.
func ConfigInvalid(reason string) *LecternError {
	return New(ErrCodeConfigInvalid, "invalid configuration: "+reason)
}

// ServerFailed wraps a follow server startup or serve failure.
func ServerFailed(addr string, err error) *LecternError {
	return Wrap(err, ErrCodeServerFailed, fmt.Sprintf("follow server failed on %s", addr)).
		WithDetail("addr", addr)
}

// ExportFailed wraps a deck export failure.
func ExportFailed(path string, err error) *LecternError {
	return Wrap(err, ErrCodeExportFailed, fmt.Sprintf("failed to export deck to %s", path)).
		WithDetail("path", path)
}
