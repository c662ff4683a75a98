package watermark

import (
	"errors"
	"fmt"
)

// Errors returned by the watermark engine. Check them with errors.Is.
var (
	// ErrInvalidConfig is returned when configuration validation fails.
	// No file is touched when it is returned.
	ErrInvalidConfig = errors.New("watermark: invalid configuration")

	// ErrInvalidInput is returned when the input path is missing or a
	// single-file target is not a supported image.
	ErrInvalidInput = errors.New("watermark: invalid input")
)

// FileError records the failure of a single file during a run. It never
// aborts the run; it is collected into Result.Failures.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("watermark %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
