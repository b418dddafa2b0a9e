package error

import (
	"fmt"

	"github.com/next-trace/scg-easyerror/contract"
)

// Error is a human-targeted context string plus an optional single cause.
//
// Fields:
//   - ctx:   what was being attempted when the failure occurred
//   - cause: the underlying error, nil at the end of a chain
//   - file/line: the construction site, captured only via WithLocation
//
// Values are immutable after construction and hold no shared state, so they
// can be handed across goroutine boundaries freely.
type Error struct {
	ctx   string
	cause error
	file  string
	line  int
}

// compile-time guarantee that *Error implements contract.Error
var _ contract.Error = (*Error)(nil)

// ------ standard error interface

// Error renders exactly the context string, suffixed with the construction
// site when one was captured. The cause is deliberately omitted; callers that
// want the full story walk the chain.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	if e.file != "" {
		return fmt.Sprintf("%s (%s:%d)", e.ctx, e.file, e.line)
	}

	return e.ctx
}

// Unwrap returns the underlying cause, nil for a chain terminus.
func (e *Error) Unwrap() error { return e.cause }

// ------ getters

// Context returns the context message without any location suffix.
func (e *Error) Context() string { return e.ctx }

// Location reports the construction site, if one was captured.
func (e *Error) Location() (file string, line int, ok bool) {
	return e.file, e.line, e.file != ""
}

// ------ core constructors

// New creates an Error from a context message and the error that caused it.
// The cause is retained for Unwrap; pass options to capture diagnostics.
func New(ctx string, cause error, opts ...Option) *Error {
	e := &Error{ctx: ctx, cause: cause}
	for _, o := range opts {
		o(e)
	}

	return e
}

// FromMessage creates an Error with no cause, marking the start of a chain.
// Used for originating failures, e.g. a validation that found bad input.
func FromMessage(ctx string, opts ...Option) *Error {
	return New(ctx, nil, opts...)
}

// Errorf creates a cause-less Error using the standard formatting verbs.
func Errorf(format string, args ...any) *Error {
	return FromMessage(fmt.Sprintf(format, args...))
}

// IterCauses returns a cursor over this error's causes, starting at the
// immediate cause. See the package-level IterCauses for the convention.
func (e *Error) IterCauses() *Causes { return IterCauses(e) }
