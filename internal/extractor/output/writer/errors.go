package writer

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrWriterClosed is returned by Write when the writer has already been closed.
	ErrWriterClosed = errors.New("writer is closed")
	// ErrNotImplemented is returned by sinks that are registered but not built yet.
	ErrNotImplemented = errors.New("not implemented")
)

// ConstructionError type is returned when sink cannot open its destination storage.
type ConstructionError struct {
	Sink string
	Err  error
}

// Error function returns text of error.
func (e *ConstructionError) Error() string {
	return fmt.Sprintf("failed to construct %s writer: %v", e.Sink, e.Err)
}

// Unwrap function returns the cause of error.
func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// NewConstructionError function creates ConstructionError object.
func NewConstructionError(sink string, err error) *ConstructionError {
	return &ConstructionError{
		Sink: sink,
		Err:  err,
	}
}
