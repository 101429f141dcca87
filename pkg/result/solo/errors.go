package solo

import "fmt"

// FailError is the default error raised for a Fail payload.
type FailError struct {
	Payload any
}

// NewFailError is the default factory used by Get and GetOrThrow.
func NewFailError[E any](payload E) error {
	return &FailError{Payload: payload}
}

// Error returns the payload's string form.
func (e *FailError) Error() string {
	if err, ok := e.Payload.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(e.Payload)
}

func (e *FailError) Unwrap() error {
	err, _ := e.Payload.(error)
	return err
}

// PanicError carries a recovered panic value that was not an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprint(e.Value)
}
