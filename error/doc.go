// Package error provides a lightweight, string-context error type for
// command-line tools and quick prototyping.
//
// It exposes a single concrete type Error that pairs a human-readable context
// message with an optional underlying cause, and integrates with the standard
// library's errors helpers (Is/As) via Unwrap.
//
// Key characteristics:
//   - Error() renders the context only; causes are never folded into the
//     display string and must be walked via Unwrap or IterCauses
//   - Context/WithContext attach a context message to the failure path of a
//     call while passing nil through untouched
//   - Causes is a lazy, one-shot cursor over an arbitrary error chain
//   - Optional call-site capture via the WithLocation option, for diagnostics
//
// Bail and Ensure cover the common "fail early with a message" cases so that
// originating an error is a one-liner next to the condition it guards.
package error
