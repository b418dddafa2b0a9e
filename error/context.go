package error

import "fmt"

// Context attaches a context message to err, keeping the original error as
// the cause. A nil err passes through as nil, so call sites can wrap a
// function's error return unconditionally:
//
//	f, err := os.Open(name)
//	if err != nil {
//		return nil, error.Context(err, "could not open config")
//	}
//
// The context string is built eagerly; use WithContext when producing it is
// expensive.
func Context(err error, ctx string, opts ...Option) error {
	if err == nil {
		return nil
	}

	return New(ctx, err, opts...)
}

// Contextf is Context with standard formatting verbs.
func Contextf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	return New(fmt.Sprintf(format, args...), err)
}

// WithContext attaches a lazily computed context message to err. ctxFn is
// invoked only when err is non-nil, never on the success path.
func WithContext(err error, ctxFn func() string, opts ...Option) error {
	if err == nil {
		return nil
	}

	return New(ctxFn(), err, opts...)
}

// Bail creates a fresh, cause-less Error for callers to return immediately:
//
//	if n%2 == 1 {
//		return error.Bail("only even numbers can be used")
//	}
func Bail(format string, args ...any) error {
	return Errorf(format, args...)
}

// Ensure returns nil when cond holds, and a Bail-style error otherwise:
//
//	if err := error.Ensure(v != 0, "value cannot be zero"); err != nil {
//		return err
//	}
func Ensure(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}

	return Errorf(format, args...)
}
