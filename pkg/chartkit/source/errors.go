package source

import (
	"errors"
	"fmt"
)

// ErrUnsupportedDriver indicates a database driver this package does not register.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// ErrUnsupportedFormat indicates a file extension with no known decoder.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// SourceError represents an error while reading rows from a source.
type SourceError struct {
	Source string // "sql", "xlsx", "json", "yaml"
	Target string // sheet name, file path or query summary
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s source error (%s): %v", e.Source, e.Target, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a new SourceError.
func NewSourceError(source, target string, err error) *SourceError {
	return &SourceError{
		Source: source,
		Target: target,
		Err:    err,
	}
}
