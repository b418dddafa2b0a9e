// Package terminator provides a display-only wrapper for a program's
// top-level error channel.
//
// Printing an arbitrary error chain from main usually loses everything below
// the top entry, or smashes the whole chain onto one line. Terminator wraps
// any error and renders the full chain one entry per line, most recent
// context first, root cause last:
//
//	Could not open file
//	Caused by: open example.txt: no such file or directory
//
// It is meant to be the last thing that touches an error before the process
// exits; nothing inspects it programmatically beyond its rendering.
package terminator

import (
	"fmt"
	"io"
	"os"
	"strings"

	scgerror "github.com/next-trace/scg-easyerror/error"
)

// causePrefix starts every chain line after the first.
const causePrefix = "Caused by: "

// Terminator wraps one error, the top of a chain, for rendering.
type Terminator struct {
	inner error
}

// Wrap converts any error into a Terminator. Wrapping nil yields nil, so the
// result of a fallible run function can be passed through unconditionally.
func Wrap(err error) *Terminator {
	if err == nil {
		return nil
	}

	return &Terminator{inner: err}
}

// Unwrap returns the wrapped error.
func (t *Terminator) Unwrap() error { return t.inner }

// Render writes the chain to w: the wrapped error's message on the first
// line, then one "Caused by: " line per cause, each newline-terminated.
// Write failures propagate to the caller.
func (t *Terminator) Render(w io.Writer) error {
	if _, err := fmt.Fprintln(w, t.inner.Error()); err != nil {
		return err
	}

	causes := scgerror.IterCauses(t.inner)
	for cause := causes.Next(); cause != nil; cause = causes.Next() {
		if _, err := fmt.Fprintln(w, causePrefix+cause.Error()); err != nil {
			return err
		}
	}

	return nil
}

// Error returns the same rendering as Render, newline-joined without a
// trailing newline, so a Terminator still satisfies error and prints the
// full chain through fmt.
func (t *Terminator) Error() string {
	var b strings.Builder
	// strings.Builder never fails a write.
	_ = t.Render(&b)

	return strings.TrimSuffix(b.String(), "\n")
}

// Exit is the process-termination adapter: a no-op on nil, otherwise it
// renders err's chain to stderr and exits with a non-zero status.
//
//	func main() {
//		terminator.Exit(run())
//	}
func Exit(err error) {
	if err == nil {
		return
	}

	_ = Wrap(err).Render(os.Stderr)
	os.Exit(1)
}
