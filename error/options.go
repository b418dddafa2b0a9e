package error

import "runtime"

// Option configures an Error during construction.
type Option func(*Error)

// WithLocation records the caller's file and line on the constructed Error.
// The frame is resolved here, when the option is built at the call site, not
// when it is later applied inside the constructor.
func WithLocation() Option {
	_, file, line, ok := runtime.Caller(1)

	return func(e *Error) {
		if ok {
			e.file = file
			e.line = line
		}
	}
}

// WithCause sets the underlying cause to be returned by Unwrap().
func WithCause(cause error) Option { return func(e *Error) { e.cause = cause } }
