package error

import (
	"errors"

	"github.com/next-trace/scg-easyerror/contract"
)

// Causes is a lazy, one-shot cursor over the causes of an error.
//
// Each call to Next performs exactly one source lookup; the chain is never
// materialised up front. A cursor cannot be rewound; build a new one from the
// original error to walk again.
//
// Chains built from this package are acyclic because every Error owns at most
// one cause. A foreign error type that reports itself as its own source will
// make the cursor loop forever; that is a known limitation, not guarded here.
type Causes struct {
	next error
}

// IterCauses returns a cursor over the causes of err, starting at err's
// immediate cause. The error itself is excluded; use Chain to include it.
func IterCauses(err error) *Causes { return &Causes{next: source(err)} }

// Chain returns a cursor that yields err itself first, then its causes.
func Chain(err error) *Causes { return &Causes{next: err} }

// Next returns the current entry and advances the cursor to its source.
// It returns nil once the chain is exhausted, and keeps returning nil on
// every subsequent call.
func (c *Causes) Next() error {
	cur := c.next
	if cur != nil {
		c.next = source(cur)
	}

	return cur
}

// source resolves one step down the chain. Unwrap is the canonical accessor;
// the legacy Cause() of github.com/pkg/errors-style wrappers is honoured as a
// fallback.
func source(err error) error {
	if err == nil {
		return nil
	}

	if next := errors.Unwrap(err); next != nil {
		return next
	}

	// A plain type assertion, not errors.As: only the top error's own
	// accessor counts here.
	if c, ok := err.(contract.Causer); ok {
		return c.Cause()
	}

	return nil
}
