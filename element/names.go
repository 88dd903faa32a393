package element

import (
	"github.com/liuxd6825/elemx/ast"
	"github.com/liuxd6825/elemx/token"
)

// parseIdentifier consumes a plain name or a reserved-word spelling.
func (p *Parser) parseIdentifier() (*ast.Identifier, error) {
	if !token.IsId(p.host.Token()) {
		return nil, p.host.Unexpected()
	}
	node := &ast.Identifier{
		Span: p.host.StartNode(),
		Name: p.host.Literal(),
	}
	p.host.Next()
	p.host.FinishNode(&node.Span)
	return node, nil
}

// parseNamespacedName parses name or ns/name. The separator must touch both
// names, so that `a / b` remains a division. In attribute-name position the
// local name is lexed under body rules, like the namespace before it.
func (p *Parser) parseNamespacedName(inBody bool) (ast.ElementName, error) {
	span := p.host.StartNode()
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if !p.host.Match(token.SLASH) || p.host.Idx() != p.host.LastEnd() {
		return name, nil
	}
	if inBody {
		p.nextInBody()
	} else {
		p.host.Next()
	}
	if p.host.Idx() != p.host.LastEnd() {
		return nil, p.host.Unexpected()
	}
	local, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	node := &ast.NamespacedName{
		Span:      span,
		Namespace: name,
		Name:      local,
	}
	p.host.FinishNode(&node.Span)
	return node, nil
}

// parseElementName parses a namespaced name or a dotted member chain.
// Namespaced names cannot be chained.
func (p *Parser) parseElementName() (ast.ElementName, error) {
	span := p.host.StartNode()
	name, err := p.parseNamespacedName(false)
	if err != nil {
		return nil, err
	}
	if _, ok := name.(*ast.NamespacedName); ok {
		return name, nil
	}
	for p.host.Eat(token.PERIOD) {
		property, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		member := &ast.MemberName{
			Span:     span,
			Object:   name,
			Property: property,
		}
		p.host.FinishNode(&member.Span)
		name = member
	}
	return name, nil
}
