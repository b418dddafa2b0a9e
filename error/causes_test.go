package error_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scgerror "github.com/next-trace/scg-easyerror/error"
)

// buildChain wraps a root error under depth levels of context, returning the
// top error and the expected messages from most recent to root.
func buildChain(depth int) (error, []string) {
	err := errors.New("root")
	messages := []string{"root"}

	for i := 1; i < depth; i++ {
		ctx := string(rune('a' + i))
		err = scgerror.New(ctx, err)
		messages = append([]string{ctx}, messages...)
	}

	return err, messages
}

func collect(c *scgerror.Causes) []string {
	var out []string
	for e := c.Next(); e != nil; e = c.Next() {
		out = append(out, e.Error())
	}

	return out
}

func TestIterCauses_ExcludesSelf(t *testing.T) {
	t.Parallel()

	top, messages := buildChain(4)

	// A chain of depth N yields N-1 causes, most recent first, root last.
	got := collect(scgerror.IterCauses(top))
	assert.Equal(t, messages[1:], got)
}

func TestChain_IncludesSelf(t *testing.T) {
	t.Parallel()

	top, messages := buildChain(4)

	got := collect(scgerror.Chain(top))
	assert.Equal(t, messages, got)
}

func TestIterCauses_Terminus(t *testing.T) {
	t.Parallel()

	c := scgerror.IterCauses(scgerror.FromMessage("lonely"))
	assert.Nil(t, c.Next())
}

func TestNext_IdempotentAfterExhaustion(t *testing.T) {
	t.Parallel()

	top, _ := buildChain(2)
	c := scgerror.IterCauses(top)

	require.NotNil(t, c.Next())
	require.Nil(t, c.Next())

	// Exhaustion is sticky; nothing resurrects an entry.
	for i := 0; i < 3; i++ {
		assert.Nil(t, c.Next())
	}
}

func TestIterCauses_YieldsByIdentity(t *testing.T) {
	t.Parallel()

	root := errors.New("root")
	top := scgerror.New("top", root)

	c := scgerror.IterCauses(top)
	require.Same(t, root, c.Next())
}

func TestErrorIterCauses_Method(t *testing.T) {
	t.Parallel()

	root := errors.New("root")
	top := scgerror.New("top", root)

	c := top.IterCauses()
	require.Same(t, root, c.Next())
	assert.Nil(t, c.Next())
}

// causerError wraps its cause the github.com/pkg/errors way, with Cause()
// instead of Unwrap().
type causerError struct {
	msg   string
	cause error
}

func (e *causerError) Error() string { return e.msg }
func (e *causerError) Cause() error  { return e.cause }

func TestIterCauses_HonorsLegacyCauser(t *testing.T) {
	t.Parallel()

	root := errors.New("root")
	legacy := &causerError{msg: "legacy wrapper", cause: root}
	top := scgerror.New("top", legacy)

	got := collect(scgerror.IterCauses(top))
	assert.Equal(t, []string{"legacy wrapper", "root"}, got)
}
