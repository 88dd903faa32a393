package element

import (
	"github.com/liuxd6825/elemx/ast"
	"github.com/liuxd6825/elemx/token"
)

// parseOpeningTag parses `@{` or `name[(attributes)] {`. On success the body's
// opening brace has been consumed and the current token is the first token of
// the body, lexed under body rules.
func (p *Parser) parseOpeningTag() (ast.OpeningTag, error) {
	span := p.host.StartNode()
	if p.host.Eat(token.AT) {
		if !p.host.Match(token.LEFT_BRACE) {
			return nil, p.host.Unexpected()
		}
		p.nextInBody()
		node := &ast.OpeningFragment{Span: span}
		p.host.FinishNode(&node.Span)
		return node, nil
	}

	name, err := p.parseElementName()
	if err != nil {
		return nil, err
	}
	node := &ast.OpeningElement{
		Span: span,
		Name: name,
	}
	if p.host.Match(token.LEFT_PARENTHESIS) {
		if node.Attributes, err = p.parseAttributes(); err != nil {
			return nil, err
		}
	}
	if !p.host.Match(token.LEFT_BRACE) {
		return nil, p.host.Unexpected()
	}
	p.nextInBody()
	p.host.FinishNode(&node.Span)
	node.SelfClosing = p.host.Match(token.RIGHT_BRACE)
	return node, nil
}

// parseAttributes parses a parenthesized, comma separated attribute list.
// Commas separate entries; none may lead or trail.
func (p *Parser) parseAttributes() ([]ast.AttributeItem, error) {
	p.nextInBody() // (
	var list []ast.AttributeItem
	for !p.host.Match(token.RIGHT_PARENTHESIS) {
		if len(list) > 0 {
			if !p.host.Match(token.COMMA) {
				return nil, p.host.Unexpected()
			}
			p.nextInBody()
		}
		attr, err := p.parseAttribute()
		if err != nil {
			return nil, err
		}
		list = append(list, attr)
	}
	p.host.Next() // )
	return list, nil
}

func (p *Parser) parseAttribute() (ast.AttributeItem, error) {
	span := p.host.StartNode()
	switch p.host.Token() {
	case token.ELLIPSIS:
		p.host.Next()
		return p.finishSpreadAttribute(span, false)
	case token.LEFT_BRACE:
		p.host.Next()
		if !p.host.Eat(token.ELLIPSIS) {
			return nil, p.host.Unexpected()
		}
		return p.finishSpreadAttribute(span, true)
	}

	name, err := p.parseNamespacedName(true)
	if err != nil {
		return nil, err
	}
	node := &ast.Attribute{
		Span: span,
		Name: name,
	}
	if p.host.Eat(token.COLON) {
		if node.Value, err = p.parseAttributeValue(); err != nil {
			return nil, err
		}
	}
	p.host.FinishNode(&node.Span)
	return node, nil
}

func (p *Parser) finishSpreadAttribute(span ast.Span, braced bool) (ast.AttributeItem, error) {
	argument, err := p.host.ParseMaybeAssign()
	if err != nil {
		return nil, err
	}
	if braced {
		if err := p.host.Expect(token.RIGHT_BRACE); err != nil {
			return nil, err
		}
	}
	node := &ast.SpreadAttribute{
		Span:     span,
		Argument: argument,
	}
	p.host.FinishNode(&node.Span)
	return node, nil
}

func (p *Parser) parseAttributeValue() (ast.Node, error) {
	if p.host.Match(token.LEFT_BRACE) {
		span := p.host.StartNode()
		p.host.Next()
		return p.finishExpressionContainer(span)
	}
	value, err := p.host.ParseMaybeAssign()
	if err != nil {
		return nil, err
	}
	return value, nil
}

// finishExpressionContainer parses the rest of `{ expr }` or `{}` after the
// opening brace, consuming the closing one.
func (p *Parser) finishExpressionContainer(span ast.Span) (ast.Node, error) {
	node := &ast.ExpressionContainer{Span: span}
	if p.host.Match(token.RIGHT_BRACE) {
		empty := &ast.EmptyExpression{Span: p.host.StartNodeAt(p.host.LastEnd())}
		p.host.FinishNodeAt(&empty.Span, p.host.Idx())
		node.Expression = empty
	} else {
		expression, err := p.host.ParseExpression()
		if err != nil {
			return nil, err
		}
		node.Expression = expression
	}
	if err := p.host.Expect(token.RIGHT_BRACE); err != nil {
		return nil, err
	}
	p.host.FinishNode(&node.Span)
	return node, nil
}
