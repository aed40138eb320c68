package blogcerrs

import "fmt"

// LoaderError wraps an I/O or per-source parse failure with the file path
// that caused it, matching the "An error occurred while parsing source
// file: %s" wrapping in the reference loader.
type LoaderError struct {
	Path string
	Err  error
}

func (e *LoaderError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *LoaderError) Unwrap() error {
	return e.Err
}

// UsageError signals a CLI-level mistake (bad flags, missing required
// arguments) that should exit with code 2 rather than 1.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}
