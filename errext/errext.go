// Package errext annotates errors with what the elemx command needs to report
// them: a process exit code, a hint for the user and a source location.
package errext

import (
	"errors"
	"strings"

	"github.com/liuxd6825/elemx/errext/exitcodes"
)

// HasExitCode is implemented by errors that decide the exit code of the
// process.
type HasExitCode interface {
	error
	ExitCode() exitcodes.ExitCode
}

// HasHint is implemented by errors that carry advice on how to fix them.
type HasHint interface {
	error
	Hint() string
}

// HasLocation is implemented by errors that point at a place in a source
// file, such as syntax errors.
type HasLocation interface {
	error
	Location() (filename string, line, column int)
}

// WithExitCodeIfNone attaches code to err. The innermost code in a chain
// wins, so a nil err or one that already has a code is returned as is.
func WithExitCodeIfNone(err error, code exitcodes.ExitCode) error {
	if err == nil {
		return nil
	}
	if _, ok := ExitCodeOf(err); ok {
		return err
	}
	return &codedError{err: err, code: code}
}

// ExitCodeOf returns the exit code attached anywhere in the chain of err.
func ExitCodeOf(err error) (exitcodes.ExitCode, bool) {
	var ecerr HasExitCode
	if !errors.As(err, &ecerr) {
		return 0, false
	}
	return ecerr.ExitCode(), true
}

// WithHint attaches hint to err. Hints stack: the outermost one is read
// first and the ones it wraps follow in parentheses.
func WithHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	return &hintedError{err: err, hint: hint}
}

type codedError struct {
	err  error
	code exitcodes.ExitCode
}

func (e *codedError) Error() string                { return e.err.Error() }
func (e *codedError) Unwrap() error                { return e.err }
func (e *codedError) ExitCode() exitcodes.ExitCode { return e.code }

type hintedError struct {
	err  error
	hint string
}

func (e *hintedError) Error() string { return e.err.Error() }
func (e *hintedError) Unwrap() error { return e.err }

func (e *hintedError) Hint() string {
	var inner HasHint
	if !errors.As(e.err, &inner) {
		return e.hint
	}
	var b strings.Builder
	b.WriteString(e.hint)
	b.WriteString(" (")
	b.WriteString(inner.Hint())
	b.WriteByte(')')
	return b.String()
}
