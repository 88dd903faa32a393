package parser

import (
	"strconv"

	"github.com/liuxd6825/elemx/ast"
	"github.com/liuxd6825/elemx/token"
)

// ParseExpression parses a comma separated sequence.
func (p *Parser) ParseExpression() (ast.Expression, error) {
	span := p.StartNode()
	left, err := p.ParseMaybeAssign()
	if err != nil || !p.Match(token.COMMA) {
		return left, err
	}
	node := &ast.SequenceExpression{
		Span:     span,
		Sequence: []ast.Expression{left},
	}
	for p.Eat(token.COMMA) {
		next, err := p.ParseMaybeAssign()
		if err != nil {
			return nil, err
		}
		node.Sequence = append(node.Sequence, next)
	}
	p.FinishNode(&node.Span)
	return node, nil
}

// ParseMaybeAssign parses one expression without a top-level comma.
func (p *Parser) ParseMaybeAssign() (ast.Expression, error) {
	span := p.StartNode()
	left, err := p.parseConditional()
	if err != nil || !p.Match(token.ASSIGN) {
		return left, err
	}
	switch left.(type) {
	case *ast.Identifier, *ast.DotExpression, *ast.BracketExpression:
	default:
		return nil, p.Raise(left.Idx0(), errInvalidAssignment)
	}
	p.Next()
	right, err := p.ParseMaybeAssign()
	if err != nil {
		return nil, err
	}
	node := &ast.AssignExpression{
		Span:  span,
		Left:  left,
		Right: right,
	}
	p.FinishNode(&node.Span)
	return node, nil
}

func (p *Parser) parseConditional() (ast.Expression, error) {
	span := p.StartNode()
	test, err := p.parseBinary(1)
	if err != nil || !p.Eat(token.QUESTION_MARK) {
		return test, err
	}
	consequent, err := p.ParseMaybeAssign()
	if err != nil {
		return nil, err
	}
	if err := p.Expect(token.COLON); err != nil {
		return nil, err
	}
	alternate, err := p.ParseMaybeAssign()
	if err != nil {
		return nil, err
	}
	node := &ast.ConditionalExpression{
		Span:       span,
		Test:       test,
		Consequent: consequent,
		Alternate:  alternate,
	}
	p.FinishNode(&node.Span)
	return node, nil
}

// parseBinary climbs operator precedence; all binary operators are left
// associative.
func (p *Parser) parseBinary(minPrecedence int) (ast.Expression, error) {
	span := p.StartNode()
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		precedence := p.token.Precedence()
		if precedence == 0 || precedence < minPrecedence {
			return left, nil
		}
		operator := p.token
		p.Next()
		right, err := p.parseBinary(precedence + 1)
		if err != nil {
			return nil, err
		}
		node := &ast.BinaryExpression{
			Span:     span,
			Operator: operator,
			Left:     left,
			Right:    right,
		}
		p.FinishNode(&node.Span)
		left = node
	}
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	switch p.token {
	case token.NOT, token.MINUS, token.PLUS:
		span := p.StartNode()
		operator := p.token
		p.Next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		node := &ast.UnaryExpression{
			Span:     span,
			Operator: operator,
			Operand:  operand,
		}
		p.FinishNode(&node.Span)
		return node, nil
	}
	return p.parseSubscripts()
}

func (p *Parser) parseSubscripts() (ast.Expression, error) {
	span := p.StartNode()
	left, err := p.ParseExprAtom()
	if err != nil {
		return nil, err
	}
	for {
		switch p.token {
		case token.PERIOD:
			p.Next()
			if !token.IsId(p.token) {
				return nil, p.Unexpected()
			}
			property := &ast.Identifier{
				Span: p.StartNode(),
				Name: p.literal,
			}
			p.Next()
			p.FinishNode(&property.Span)
			node := &ast.DotExpression{
				Span:       span,
				Left:       left,
				Identifier: property,
			}
			p.FinishNode(&node.Span)
			left = node
		case token.LEFT_BRACKET:
			p.Next()
			member, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}
			if err := p.Expect(token.RIGHT_BRACKET); err != nil {
				return nil, err
			}
			node := &ast.BracketExpression{
				Span:   span,
				Left:   left,
				Member: member,
			}
			p.FinishNode(&node.Span)
			left = node
		case token.LEFT_PARENTHESIS:
			arguments, err := p.parseArguments(token.RIGHT_PARENTHESIS)
			if err != nil {
				return nil, err
			}
			node := &ast.CallExpression{
				Span:         span,
				Callee:       left,
				ArgumentList: arguments,
			}
			p.FinishNode(&node.Span)
			left = node
		default:
			return left, nil
		}
	}
}

// parseArguments parses a list opened by the current token and closed by
// closing, accepting spread entries.
func (p *Parser) parseArguments(closing token.Token) ([]ast.Expression, error) {
	p.Next()
	var list []ast.Expression
	for !p.Match(closing) {
		if len(list) > 0 {
			if err := p.Expect(token.COMMA); err != nil {
				return nil, err
			}
		}
		item, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	p.Next()
	return list, nil
}

func (p *Parser) parseArgument() (ast.Expression, error) {
	if !p.Match(token.ELLIPSIS) {
		return p.ParseMaybeAssign()
	}
	span := p.StartNode()
	p.Next()
	argument, err := p.ParseMaybeAssign()
	if err != nil {
		return nil, err
	}
	node := &ast.SpreadElement{
		Span:       span,
		Expression: argument,
	}
	p.FinishNode(&node.Span)
	return node, nil
}

// ParseExprAtom parses a primary expression. A name or `@` that opens an
// element literal is handed to the element parser.
func (p *Parser) ParseExprAtom() (ast.Expression, error) {
	span := p.StartNode()
	// reserved-word spellings may name elements too
	if (p.token == token.AT || token.IsId(p.token)) && p.elements.IsElementStart() {
		return p.parseElement()
	}
	switch p.token {
	case token.IDENTIFIER:
		node := &ast.Identifier{
			Span: span,
			Name: p.literal,
		}
		p.Next()
		p.FinishNode(&node.Span)
		return node, nil
	case token.STRING:
		node := &ast.StringLiteral{
			Span:    span,
			Literal: p.literal,
			Value:   p.value,
		}
		p.Next()
		p.FinishNode(&node.Span)
		return node, nil
	case token.NUMBER:
		value, err := strconv.ParseFloat(p.literal, 64)
		if err != nil {
			return nil, p.Raise(p.idx, "Invalid number "+p.literal)
		}
		node := &ast.NumberLiteral{
			Span:    span,
			Literal: p.literal,
			Value:   value,
		}
		p.Next()
		p.FinishNode(&node.Span)
		return node, nil
	case token.BOOLEAN:
		node := &ast.BooleanLiteral{
			Span:    span,
			Literal: p.literal,
			Value:   p.literal == "true",
		}
		p.Next()
		p.FinishNode(&node.Span)
		return node, nil
	case token.NULL:
		node := &ast.NullLiteral{
			Span:    span,
			Literal: p.literal,
		}
		p.Next()
		p.FinishNode(&node.Span)
		return node, nil
	case token.LEFT_PARENTHESIS:
		p.Next()
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.Expect(token.RIGHT_PARENTHESIS); err != nil {
			return nil, err
		}
		return expr, nil
	case token.LEFT_BRACKET:
		values, err := p.parseArguments(token.RIGHT_BRACKET)
		if err != nil {
			return nil, err
		}
		node := &ast.ArrayLiteral{
			Span:  span,
			Value: values,
		}
		p.FinishNode(&node.Span)
		return node, nil
	}
	return nil, p.Unexpected()
}

func (p *Parser) parseElement() (ast.Expression, error) {
	node, err := p.elements.ParseElement()
	if err != nil {
		return nil, err
	}
	if !p.lookahead {
		p.elementList = append(p.elementList, node)
	}
	return node, nil
}
