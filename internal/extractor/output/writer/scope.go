package writer

import (
	"github.com/pkg/errors"
)

// Use calls fn with w and closes w when fn returns or panics.
// Close error is reported even if fn succeeded.
func Use(w Writer, fn func(w Writer) error) (err error) {
	defer func() {
		closeErr := w.Close()
		if closeErr == nil {
			return
		}

		if err != nil {
			err = errors.WithMessagef(err, "also failed to close writer: %v", closeErr)

			return
		}

		err = errors.WithMessage(closeErr, "failed to close writer")
	}()

	return fn(w)
}
