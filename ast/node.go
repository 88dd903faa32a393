/*
Package ast declares the syntax tree produced by the element-literal parser:
ordinary host expressions plus the element, attribute and child nodes.

Every node embeds a Span. Nodes are immutable once the parser returns them and
are owned solely by their parent.
*/
package ast

import (
	"github.com/dop251/goja/file"

	"github.com/liuxd6825/elemx/token"
)

// All nodes implement the Node interface.
type Node interface {
	Idx0() file.Idx // The index of the first character belonging to the node
	Idx1() file.Idx // The index of the first character immediately after the node
}

// Span is the source extent of a node.
type Span struct {
	From  file.Idx
	To    file.Idx
	Start file.Position
	End   file.Position
}

func (s Span) Idx0() file.Idx { return s.From }
func (s Span) Idx1() file.Idx { return s.To }

// ========== //
// Expression //
// ========== //

type (
	// All expression nodes implement the Expression interface.
	Expression interface {
		Node
		_expressionNode()
	}

	ArrayLiteral struct {
		Span
		Value []Expression
	}

	AssignExpression struct {
		Span
		Left  Expression
		Right Expression
	}

	BinaryExpression struct {
		Span
		Operator token.Token
		Left     Expression
		Right    Expression
	}

	BooleanLiteral struct {
		Span
		Literal string
		Value   bool
	}

	BracketExpression struct {
		Span
		Left   Expression
		Member Expression
	}

	CallExpression struct {
		Span
		Callee       Expression
		ArgumentList []Expression
	}

	ConditionalExpression struct {
		Span
		Test       Expression
		Consequent Expression
		Alternate  Expression
	}

	DotExpression struct {
		Span
		Left       Expression
		Identifier *Identifier
	}

	Identifier struct {
		Span
		Name string
	}

	NullLiteral struct {
		Span
		Literal string
	}

	NumberLiteral struct {
		Span
		Literal string
		Value   float64
	}

	SequenceExpression struct {
		Span
		Sequence []Expression
	}

	SpreadElement struct {
		Span
		Expression Expression
	}

	StringLiteral struct {
		Span
		Literal string
		Value   string
	}

	UnaryExpression struct {
		Span
		Operator token.Token
		Operand  Expression
	}
)

// _expressionNode

func (*ArrayLiteral) _expressionNode()          {}
func (*AssignExpression) _expressionNode()      {}
func (*BinaryExpression) _expressionNode()      {}
func (*BooleanLiteral) _expressionNode()        {}
func (*BracketExpression) _expressionNode()     {}
func (*CallExpression) _expressionNode()        {}
func (*ConditionalExpression) _expressionNode() {}
func (*DotExpression) _expressionNode()         {}
func (*Identifier) _expressionNode()            {}
func (*NullLiteral) _expressionNode()           {}
func (*NumberLiteral) _expressionNode()         {}
func (*SequenceExpression) _expressionNode()    {}
func (*SpreadElement) _expressionNode()         {}
func (*StringLiteral) _expressionNode()         {}
func (*UnaryExpression) _expressionNode()       {}

// ==== //
// Misc //
// ==== //

// Comment is a line or block comment, recorded by the host lexer outside of
// lookahead mode.
type Comment struct {
	Span
	Text  string
	Block bool
}

// Program is a sequence of top level expressions.
type Program struct {
	Span
	Body     []Expression
	Comments []*Comment
}
