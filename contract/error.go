// Package contract exposes the minimal error interfaces used by other packages.
//
// Implementations must keep their message stable after construction and support
// errors.Unwrap for proper interoperability with standard error helpers.
package contract

// Error is the minimal, stable surface a chainable error exposes: a
// human-readable message plus at most one underlying cause.
//
// Implementations must:
//   - Return only their own message from Error(); causes are reached via
//     Unwrap, never folded into the display string.
//   - Return nil from Unwrap() at the end of a chain.
//
// Any plain error value can still participate in a chain as a terminus; this
// interface describes the links, not the tail.
type Error interface {
	error
	Unwrap() error
}

// Causer is the legacy cause accessor used by github.com/pkg/errors-style
// wrappers. Chain walkers in this module fall back to it when an error does
// not implement Unwrap.
type Causer interface {
	error
	Cause() error
}
