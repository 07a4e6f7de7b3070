package oerror

import "fmt"

// Error is the error type returned by every package of the locomotion module.
type Error struct {
	Err   string
	cause error
}

// New formats an Error the same way fmt.Sprintf would.
func New(format string, args ...any) *Error {
	return &Error{Err: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Err
}

// Unwrap returns the error passed to Wrap, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Wrap prefixes err with a formatted context message. Nil errors stay nil.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{Err: fmt.Sprintf(format, args...) + ": " + err.Error(), cause: err}
}
