package element

import (
	"github.com/dop251/goja/file"

	"github.com/liuxd6825/elemx/ast"
	"github.com/liuxd6825/elemx/token"
)

// State is an opaque copy of a host's mutable lexer and parser state. Only
// the host that produced it knows how to restore it.
type State interface{}

// Host is the expression parser the element grammar plugs into.
//
// The cursor methods operate on the current token. Every method that fails
// returns an error instead of panicking; errors from Unexpected must match
// ErrUnexpectedToken with errors.Is.
type Host interface {
	Token() token.Token
	Literal() string
	// Idx is the index of the first character of the current token.
	Idx() file.Idx
	// LastEnd is the index just after the last consumed token.
	LastEnd() file.Idx

	Match(tkn token.Token) bool
	Eat(tkn token.Token) bool
	Expect(tkn token.Token) error

	Next()
	// RescanInBody lexes the current token again under element-body rules.
	RescanInBody()
	// PeekChar returns the first non-blank character after the current
	// token without consuming anything, or -1 at the end of input.
	PeekChar() rune

	StartNode() ast.Span
	StartNodeAt(idx file.Idx) ast.Span
	FinishNode(span *ast.Span)
	FinishNodeAt(span *ast.Span, idx file.Idx)

	ParseExpression() (ast.Expression, error)
	ParseMaybeAssign() (ast.Expression, error)
	ParseExprAtom() (ast.Expression, error)

	Unexpected() error
	Raise(idx file.Idx, message string) error

	Snapshot() State
	Restore(state State)
	// Lookahead reports whether the host is parsing speculatively. While it
	// is, diagnostics and other side effects must be suppressed.
	Lookahead() bool
	SetLookahead(on bool)
}
