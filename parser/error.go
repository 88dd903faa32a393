package parser

import (
	"github.com/dop251/goja/file"
	jsparser "github.com/dop251/goja/parser"

	"github.com/liuxd6825/elemx/element"
	"github.com/liuxd6825/elemx/token"
)

const (
	errUnexpectedEndOfInput = "Unexpected end of input"
	errInvalidToken         = "Invalid or unexpected token"
	errInvalidAssignment    = "Invalid left-hand side in assignment"
)

// Error is a syntax error at a source position. It prints like a goja parser
// error and unwraps to its Kind, if any.
type Error struct {
	Idx      file.Idx
	Position file.Position
	Message  string
	Kind     error
}

func (e *Error) Error() string {
	return (&jsparser.Error{Position: e.Position, Message: e.Message}).Error()
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Location reports where the error occurred, after source map resolution.
func (e *Error) Location() (string, int, int) {
	return e.Position.Filename, e.Position.Line, e.Position.Column
}

// Raise builds an error at idx. Outside of lookahead it is also appended to
// the diagnostics.
func (p *Parser) Raise(idx file.Idx, message string) error {
	return p.raise(idx, message, nil)
}

// Unexpected reports the current token.
func (p *Parser) Unexpected() error {
	return p.raise(p.idx, unexpectedMessage(p.token, p.literal), element.ErrUnexpectedToken)
}

func (p *Parser) raise(idx file.Idx, message string, kind error) error {
	err := &Error{
		Idx:      idx,
		Position: p.position(idx),
		Message:  message,
		Kind:     kind,
	}
	if !p.lookahead {
		p.diagnostics.Add(err.Position, message)
	}
	return err
}

func unexpectedMessage(tkn token.Token, literal string) string {
	switch tkn {
	case token.EOF:
		return errUnexpectedEndOfInput
	case token.ILLEGAL:
		return errInvalidToken
	case token.IDENTIFIER:
		return "Unexpected identifier"
	case token.KEYWORD:
		return "Unexpected reserved word"
	case token.STRING:
		return "Unexpected string"
	case token.NUMBER:
		return "Unexpected number"
	case token.BOOLEAN, token.NULL:
		return "Unexpected token " + literal
	}
	return "Unexpected token " + tkn.String()
}
