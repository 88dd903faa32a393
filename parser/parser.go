/*
Package parser implements a small expression parser that hosts element
literals.

It understands names, strings, numbers, booleans, null, array literals,
member access, calls, unary and binary operators, the conditional operator,
assignment and sequences. Wherever an atom may start with a name or `@` it
asks the element sub-parser whether an element literal begins there.

	program, err := parser.ParseFile("page.elx", `page(title: "Hi") { p { "hello" } }`)

Positions are reported with goja's file package, so a source map attached via
WithSourceMap is honored when errors and spans are resolved.
*/
package parser

import (
	"io"

	"github.com/dop251/goja/file"
	jsparser "github.com/dop251/goja/parser"
	"github.com/go-sourcemap/sourcemap"
	"github.com/sirupsen/logrus"

	"github.com/liuxd6825/elemx/ast"
	"github.com/liuxd6825/elemx/element"
	"github.com/liuxd6825/elemx/token"
)

// Parser is a host parser over one source text. A Parser is not safe for
// concurrent use.
type Parser struct {
	parserState

	src  string
	base int
	file *file.File

	elements    *element.Parser
	logger      logrus.FieldLogger
	diagnostics jsparser.ErrorList
	comments    []*ast.Comment
	elementList []*ast.Element

	fastPath  bool
	sourceMap *sourcemap.Consumer
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger handed to the element sub-parser.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithFastPath toggles the element pre-filter. It is on by default.
func WithFastPath(enabled bool) Option {
	return func(p *Parser) {
		p.fastPath = enabled
	}
}

// WithSourceMap maps every reported position through sm.
func WithSourceMap(sm *sourcemap.Consumer) Option {
	return func(p *Parser) {
		p.sourceMap = sm
	}
}

// New returns a Parser positioned on the first token of src.
func New(filename, src string, opts ...Option) *Parser {
	p := &Parser{
		src:      src,
		base:     1,
		fastPath: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		p.logger = l
	}

	p.file = file.NewFile(filename, src, p.base)
	if p.sourceMap != nil {
		p.file.SetSourceMap(p.sourceMap)
	}
	p.elements = element.New(p,
		element.WithLogger(p.logger.WithField("file", filename)),
		element.WithFastPath(p.fastPath),
	)

	p.lastEnd = p.idxOf(0)
	p.scanToken(false)
	return p
}

// ParseFile parses src as a program.
func ParseFile(filename, src string, opts ...Option) (*ast.Program, error) {
	return New(filename, src, opts...).ParseProgram()
}

// ParseExpression parses src as exactly one expression.
func ParseExpression(src string, opts ...Option) (ast.Expression, error) {
	p := New("", src, opts...)
	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if !p.Match(token.EOF) {
		return nil, p.Unexpected()
	}
	return expr, nil
}

// ParseProgram parses a sequence of expressions separated by optional
// semicolons until the end of input.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{Span: p.StartNodeAt(p.idxOf(0))}
	for {
		for p.Eat(token.SEMICOLON) {
		}
		if p.Match(token.EOF) {
			break
		}
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		program.Body = append(program.Body, expr)
		if !p.Match(token.SEMICOLON) && !p.Match(token.EOF) && p.sameLine() {
			return nil, p.Unexpected()
		}
	}
	p.FinishNodeAt(&program.Span, p.idxOf(len(p.src)))
	program.Comments = p.comments
	return program, nil
}

// Diagnostics returns the errors reported outside of lookahead, in order.
func (p *Parser) Diagnostics() jsparser.ErrorList {
	return p.diagnostics
}

// Comments returns the comments seen so far, each recorded once.
func (p *Parser) Comments() []*ast.Comment {
	return p.comments
}

// Elements returns the outermost and nested elements built so far, in the
// order they were completed.
func (p *Parser) Elements() []*ast.Element {
	return p.elementList
}

// File returns the source file positions are resolved against.
func (p *Parser) File() *file.File {
	return p.file
}

func (p *Parser) idxOf(offset int) file.Idx {
	return file.Idx(p.base + offset)
}

func (p *Parser) position(idx file.Idx) file.Position {
	return p.file.Position(int(idx) - p.base)
}

// sameLine reports whether the current token starts on the line the previous
// one ended on.
func (p *Parser) sameLine() bool {
	from := int(p.lastEnd) - p.base
	to := int(p.idx) - p.base
	for i := from; i < to && i < len(p.src); i++ {
		if p.src[i] == '\n' || p.src[i] == '\r' {
			return false
		}
	}
	return true
}
