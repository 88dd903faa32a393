package parser

import (
	"github.com/dop251/goja/file"

	"github.com/liuxd6825/elemx/ast"
	"github.com/liuxd6825/elemx/element"
	"github.com/liuxd6825/elemx/token"
)

// parserState is everything Snapshot captures. Comments and diagnostics are
// not part of it: neither is recorded while lookahead is on.
type parserState struct {
	offset    int // read offset just past the current token
	token     token.Token
	literal   string
	value     string // decoded value of a string literal
	idx       file.Idx
	end       file.Idx
	lastEnd   file.Idx
	lookahead bool
}

var _ element.Host = (*Parser)(nil)

func (p *Parser) Token() token.Token { return p.token }
func (p *Parser) Literal() string    { return p.literal }
func (p *Parser) Idx() file.Idx      { return p.idx }
func (p *Parser) LastEnd() file.Idx  { return p.lastEnd }

func (p *Parser) Match(tkn token.Token) bool {
	return p.token == tkn
}

// Eat consumes the current token if it is tkn.
func (p *Parser) Eat(tkn token.Token) bool {
	if p.token != tkn {
		return false
	}
	p.Next()
	return true
}

// Expect consumes tkn or reports the current token as unexpected.
func (p *Parser) Expect(tkn token.Token) error {
	if p.token != tkn {
		return p.Unexpected()
	}
	p.Next()
	return nil
}

// Next advances to the following token, lexed under expression rules.
func (p *Parser) Next() {
	p.lastEnd = p.end
	p.scanToken(false)
}

// RescanInBody lexes the current token again under element-body rules.
func (p *Parser) RescanInBody() {
	p.offset = int(p.idx) - p.base
	p.scanToken(true)
}

// PeekChar returns the first non-blank character after the current token, or
// -1 at the end of input.
func (p *Parser) PeekChar() rune {
	for _, c := range p.src[p.offset:] {
		if !isSpace(c) {
			return c
		}
	}
	return -1
}

func (p *Parser) StartNode() ast.Span {
	return p.StartNodeAt(p.idx)
}

func (p *Parser) StartNodeAt(idx file.Idx) ast.Span {
	return ast.Span{From: idx, Start: p.position(idx)}
}

func (p *Parser) FinishNode(span *ast.Span) {
	p.FinishNodeAt(span, p.lastEnd)
}

func (p *Parser) FinishNodeAt(span *ast.Span, idx file.Idx) {
	span.To = idx
	span.End = p.position(idx)
}

// Snapshot captures the cursor. The returned value is only meaningful to
// Restore on the same Parser.
func (p *Parser) Snapshot() element.State {
	return p.parserState
}

func (p *Parser) Restore(state element.State) {
	p.parserState = state.(parserState)
}

func (p *Parser) Lookahead() bool {
	return p.lookahead
}

func (p *Parser) SetLookahead(on bool) {
	p.lookahead = on
}
