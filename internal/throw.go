package internal

import "github.com/pkg/errors"

// Threading errors through the pipeline stages would add noise to code that
// can only fail on bad input. Instead, we use panics, and the public API
// recovers to convert to an error.

// Returned (wrapped) whenever the input is not a usable set of points.
var ErrInvalidInput = errors.New("invalid input")

// Panic payload for errors raised by this package. Any other panic is a real
// bug and is re-raised by HandleHullPanicRecover.
type HullError struct {
	Err error
}

func (e HullError) Error() string {
	return e.Err.Error()
}

func (e HullError) Unwrap() error {
	return e.Err
}

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	panic(HullError{errors.Errorf(format, args...)})
}

// Panic with a HullError wrapping ErrInvalidInput.
func invalidInputf(format string, args ...interface{}) {
	panic(HullError{errors.Wrapf(ErrInvalidInput, format, args...)})
}

func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError.Err
		}
		panic(r)
	}
	return nil
}
