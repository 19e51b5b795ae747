package cli

import (
	"fmt"
	"os"

	"github.com/lecterntools/lectern/errors"
)

// ErrorHandler prints actionable messages for lectern error codes.
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle prints a hint matched to the error code and returns err
// unchanged so callers still exit non-zero.
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeDocNotFound:
		fmt.Fprintf(os.Stderr, "❌ Document not found: %s\n", detail(err, "path"))
		fmt.Fprintf(os.Stderr, "Check the path. Relative paths resolve from the current directory.\n")

	case errors.ErrCodeDocUnsupportedFormat:
		fmt.Fprintf(os.Stderr, "❌ Unsupported document format: %s\n", detail(err, "path"))
		fmt.Fprintf(os.Stderr, "lectern presents Markdown (.md, .markdown) and HTML (.html, .htm) files.\n")

	case errors.ErrCodeDocParseFailed:
		fmt.Fprintf(os.Stderr, "❌ Could not parse document: %v\n", err)

	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "❌ Configuration file not found: %s\n", detail(err, "path"))
		fmt.Fprintf(os.Stderr, "Drop the --config flag to fall back to defaults.\n")

	case errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation:
		fmt.Fprintf(os.Stderr, "❌ Invalid configuration: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run 'lectern config --validate' to see the failing fields.\n")

	case errors.ErrCodePositionIO:
		fmt.Fprintf(os.Stderr, "❌ Could not read or write the position file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Rerun with --no-position to present without resume.\n")

	case errors.ErrCodeServerFailed:
		fmt.Fprintf(os.Stderr, "❌ Follow server failed on %s\n", detail(err, "addr"))
		fmt.Fprintf(os.Stderr, "The address may be in use. Pass a different one with --listen.\n")

	case errors.ErrCodeExportFailed:
		fmt.Fprintf(os.Stderr, "❌ Export failed: %v\n", err)

	default:
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
	}

	if h.Verbose {
		if lerr, ok := err.(*errors.LecternError); ok {
			fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", lerr.ToJSON())
		}
	}
	return err
}

// detail extracts one detail value from a structured error, falling
// back to the message for plain errors.
func detail(err error, key string) string {
	if lerr, ok := err.(*errors.LecternError); ok {
		if v, ok := lerr.Details[key]; ok {
			return fmt.Sprintf("%v", v)
		}
	}
	return err.Error()
}
