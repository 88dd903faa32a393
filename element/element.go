package element

import (
	"github.com/liuxd6825/elemx/ast"
	"github.com/liuxd6825/elemx/token"
)

// ParseElement parses the element literal starting at the current token and
// leaves the host on the token after its closing brace. Callers normally ask
// IsElementStart first.
func (p *Parser) ParseElement() (*ast.Element, error) {
	span := p.host.StartNode()
	opening, err := p.openingTag()
	if err != nil {
		return nil, err
	}
	node := &ast.Element{
		Span:    span,
		Opening: opening,
	}
	if o, ok := opening.(*ast.OpeningElement); ok && o.SelfClosing {
		p.host.Next() // }
		p.host.FinishNode(&node.Span)
		return node, nil
	}
	if node.Children, err = p.parseChildren(); err != nil {
		return nil, err
	}
	p.host.FinishNode(&node.Span)
	return node, nil
}

// parseChildren reads children until it consumes the closing brace.
func (p *Parser) parseChildren() ([]ast.Node, error) {
	var children []ast.Node
	for {
		// the previous child may have left a token lexed under code rules
		p.host.RescanInBody()

		var (
			child ast.Node
			err   error
		)
		switch p.host.Token() {
		case token.RIGHT_BRACE:
			p.host.Next()
			return children, nil
		case token.STRING, token.IDENTIFIER, token.AT:
			child, err = p.host.ParseExprAtom()
		case token.KEYWORD, token.BOOLEAN, token.NULL:
			// only as the name of a nested element
			if !p.IsElementStart() {
				return nil, p.host.Unexpected()
			}
			child, err = p.host.ParseExprAtom()
		case token.LEFT_BRACE:
			child, err = p.parseBraceChild()
		case token.ELLIPSIS:
			span := p.host.StartNode()
			p.host.Next()
			child, err = p.finishSpreadChild(span, false)
		default:
			return nil, p.host.Unexpected()
		}
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}

// parseBraceChild parses {...expr}, {expr} or {}.
func (p *Parser) parseBraceChild() (ast.Node, error) {
	span := p.host.StartNode()
	p.host.Next()
	if p.host.Eat(token.ELLIPSIS) {
		return p.finishSpreadChild(span, true)
	}
	return p.finishExpressionContainer(span)
}

func (p *Parser) finishSpreadChild(span ast.Span, braced bool) (ast.Node, error) {
	expression, err := p.host.ParseMaybeAssign()
	if err != nil {
		return nil, err
	}
	if braced {
		if err := p.host.Expect(token.RIGHT_BRACE); err != nil {
			return nil, err
		}
	}
	node := &ast.SpreadChild{
		Span:       span,
		Expression: expression,
	}
	p.host.FinishNode(&node.Span)
	return node, nil
}
