package twbmeta

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates an input path does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates an input file is not a valid workbook document.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ErrNoInput indicates no input paths were given.
var ErrNoInput = errors.New("no input paths")

// ExtractionError represents a failure to process one input file.
// It never aborts a batch run.
type ExtractionError struct {
	File      string
	Component string // "open", "parse", "validate"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in file %q (%s): %v", e.File, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(file, component string, err error) *ExtractionError {
	return &ExtractionError{
		File:      file,
		Component: component,
		Err:       err,
	}
}

// OutputError represents a failure to produce the final report. It is fatal
// to the run, unlike ExtractionError.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("output error: %v", e.Err)
	}
	return fmt.Sprintf("output error writing %q: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}
