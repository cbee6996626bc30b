package chartkit

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidMapping indicates a column mapping failed validation.
var ErrInvalidMapping = errors.New("invalid column mapping")

// ErrNoDatabase indicates a query was requested without a configured database.
var ErrNoDatabase = errors.New("no database configured")

// MappingError reports the mapping field that failed validation.
type MappingError struct {
	Field string // e.g. "chartType", "valueMappings[1].column"
	Err   error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

// NewMappingError creates a MappingError wrapping ErrInvalidMapping.
func NewMappingError(field, format string, args ...any) *MappingError {
	return &MappingError{
		Field: field,
		Err:   fmt.Errorf("%w: %s", ErrInvalidMapping, fmt.Sprintf(format, args...)),
	}
}

// ChartError reports a failure while producing one chart of a batch.
type ChartError struct {
	ChartID string
	Err     error
}

func (e *ChartError) Error() string {
	return fmt.Sprintf("chart %q: %v", e.ChartID, e.Err)
}

func (e *ChartError) Unwrap() error {
	return e.Err
}
