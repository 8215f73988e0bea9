package errors

// UsageError is returned when command line is malformed. Usage is already printed when it is returned.
type UsageError struct {
	err string
}

func (e *UsageError) Error() string {
	return e.err
}

func NewUsageError(err error) error {
	return &UsageError{
		err: err.Error(),
	}
}
