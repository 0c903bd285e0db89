// Package errors defines the sentinel error values shared across the mcget
// acquisition engine and small helpers for wrapping them with context.
package errors

import "fmt"

// Common error types.
var (
	// Config errors.
	ErrEmptyConfigPath   = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath = fmt.Errorf("invalid config file path")
	ErrConfigParse       = fmt.Errorf("failed to parse config")
	ErrConfigValidation  = fmt.Errorf("invalid configuration")

	// Resolution errors.
	ErrVersionNotFound   = fmt.Errorf("version not found in manifest")
	ErrMalformedManifest = fmt.Errorf("malformed version manifest")

	// Transfer errors.
	ErrTransport        = fmt.Errorf("transport failure")
	ErrChecksumMismatch = fmt.Errorf("checksum mismatch")
	ErrFileOpen         = fmt.Errorf("cannot open destination file")
	ErrInvalidChecksum  = fmt.Errorf("invalid checksum string")

	// Asset errors.
	ErrMalformedAssetIndex = fmt.Errorf("malformed asset index")

	// Filesystem errors.
	ErrInvalidPath = fmt.Errorf("invalid path")

	// Hook errors.
	ErrHookExecution = fmt.Errorf("error executing hook")
	ErrHookScript    = fmt.Errorf("hook script error")
	ErrHookLoad      = fmt.Errorf("failed to load hook")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
