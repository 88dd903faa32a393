package errext_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liuxd6825/elemx/errext"
	"github.com/liuxd6825/elemx/errext/exitcodes"
)

type locatedError struct{}

func (locatedError) Error() string { return "view.elx: Line 2:5 Unexpected number" }

func (locatedError) Location() (string, int, int) { return "view.elx", 2, 5 }

func TestWithExitCodeIfNone(t *testing.T) {
	t.Parallel()

	assert.Nil(t, errext.WithExitCodeIfNone(nil, exitcodes.ParseFailed))

	err := errext.WithExitCodeIfNone(errors.New("boom"), exitcodes.ParseFailed)
	err = errext.WithExitCodeIfNone(fmt.Errorf("wrapped: %w", err), exitcodes.InvalidConfig)

	code, ok := errext.ExitCodeOf(err)
	require.True(t, ok)
	assert.Equal(t, exitcodes.ParseFailed, code)
	assert.Equal(t, "wrapped: boom", err.Error())

	_, ok = errext.ExitCodeOf(errext.WithHint(errors.New("boom"), "no code"))
	assert.False(t, ok)
	_, ok = errext.ExitCodeOf(nil)
	assert.False(t, ok)
}

func TestWithHint(t *testing.T) {
	t.Parallel()

	assert.Nil(t, errext.WithHint(nil, "ignored"))

	err := errext.WithHint(errors.New("boom"), "inner")
	err = errext.WithHint(err, "outer")

	var herr errext.HasHint
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, "outer (inner)", herr.Hint())
	assert.Equal(t, "boom", err.Error())

	err = errext.WithHint(fmt.Errorf("ctx: %w", errext.WithHint(err, "middle")), "top")
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, "top (middle (outer (inner)))", herr.Hint())
}

func TestFormat(t *testing.T) {
	t.Parallel()

	msg, fields := errext.Format(nil)
	assert.Empty(t, msg)
	assert.Nil(t, fields)

	err := errext.WithHint(fmt.Errorf("parse: %w", locatedError{}), "check the braces")
	msg, fields = errext.Format(err)
	assert.Equal(t, "parse: view.elx: Line 2:5 Unexpected number", msg)
	assert.Equal(t, map[string]interface{}{
		"file":   "view.elx",
		"line":   2,
		"column": 5,
		"hint":   "check the braces",
	}, fields)
}
