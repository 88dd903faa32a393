package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/liuxd6825/elemx/ast"
	"github.com/liuxd6825/elemx/element"
	"github.com/liuxd6825/elemx/token"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func tokens(src string, body bool) []token.Token {
	p := New("", src)
	if body {
		p.RescanInBody()
	}
	var list []token.Token
	for !p.Match(token.EOF) {
		list = append(list, p.token)
		p.Next()
		if body {
			p.RescanInBody()
		}
	}
	return list
}

func TestLexer(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []token.Token{
		token.IDENTIFIER, token.MINUS, token.IDENTIFIER,
	}, tokens("list-item", false))
	assert.Equal(t, []token.Token{token.IDENTIFIER}, tokens("list-item", true))
	assert.Equal(t, []token.Token{
		token.IDENTIFIER, token.MINUS,
	}, tokens("item-", true))

	assert.Equal(t, []token.Token{
		token.ELLIPSIS, token.IDENTIFIER, token.PERIOD, token.IDENTIFIER,
		token.AT, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.EQUAL, token.NOT_EQUAL, token.LOGICAL_AND, token.LOGICAL_OR,
		token.LESS_OR_EQUAL, token.GREATER, token.ASSIGN, token.NOT,
	}, tokens("...a.b @{} == != && || <= > = !", false))

	assert.Equal(t, []token.Token{
		token.KEYWORD, token.BOOLEAN, token.NULL, token.NUMBER, token.NUMBER, token.STRING,
	}, tokens(`class true null 1.5e3 .5 'x'`, false))

	assert.Equal(t, []token.Token{token.ILLEGAL}, tokens(`"open`, false))
	assert.Equal(t, []token.Token{token.ILLEGAL}, tokens(`/* open`, false))
	assert.Equal(t, []token.Token{token.ILLEGAL}, tokens(`#`, false))
}

func TestStringEscapes(t *testing.T) {
	t.Parallel()

	testCases := map[string]string{
		`"plain"`:          "plain",
		`'it\'s'`:          "it's",
		`"a\nb\tc"`:        "a\nb\tc",
		`"\x41B"`:          "AB",
		`"\u{1F600}"`:      "\U0001F600",
		`"héllo"`:          "héllo",
		"\"line\\\nnext\"": "linenext",
	}
	for src, want := range testCases {
		expr, err := ParseExpression(src)
		require.NoError(t, err, src)
		lit, ok := expr.(*ast.StringLiteral)
		require.True(t, ok, src)
		assert.Equal(t, want, lit.Value, src)
		assert.Equal(t, src, lit.Literal)
	}
}

func TestPrecedence(t *testing.T) {
	t.Parallel()

	expr, err := ParseExpression(`a || b && c == d + e * -f`)
	require.NoError(t, err)

	or, ok := expr.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, token.LOGICAL_OR, or.Operator)
	and, ok := or.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, token.LOGICAL_AND, and.Operator)
	eq, ok := and.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, token.EQUAL, eq.Operator)
	plus, ok := eq.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, token.PLUS, plus.Operator)
	times, ok := plus.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, token.MULTIPLY, times.Operator)
	assert.IsType(t, &ast.UnaryExpression{}, times.Right)

	expr, err = ParseExpression(`a - b - c`)
	require.NoError(t, err)
	minus, ok := expr.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.IsType(t, &ast.BinaryExpression{}, minus.Left)
	assert.IsType(t, &ast.Identifier{}, minus.Right)
}

func TestSubscriptsAndSequences(t *testing.T) {
	t.Parallel()

	expr, err := ParseExpression(`a.b[0](x, ...rest), y = z`)
	require.NoError(t, err)
	seq, ok := expr.(*ast.SequenceExpression)
	require.True(t, ok)
	require.Len(t, seq.Sequence, 2)

	call, ok := seq.Sequence[0].(*ast.CallExpression)
	require.True(t, ok)
	require.Len(t, call.ArgumentList, 2)
	assert.IsType(t, &ast.SpreadElement{}, call.ArgumentList[1])
	bracket, ok := call.Callee.(*ast.BracketExpression)
	require.True(t, ok)
	assert.IsType(t, &ast.DotExpression{}, bracket.Left)

	assert.IsType(t, &ast.AssignExpression{}, seq.Sequence[1])
}

func TestInvalidAssignment(t *testing.T) {
	t.Parallel()

	p := New("", `1 = a`)
	_, err := p.ParseExpression()
	require.Error(t, err)
	assert.Contains(t, err.Error(), errInvalidAssignment)
	assert.False(t, errors.Is(err, element.ErrUnexpectedToken))
	assert.Equal(t, 1, p.Diagnostics().Len())
}

func TestProgram(t *testing.T) {
	t.Parallel()

	src := "// header\nx = page { \"a\" }\n;; y\nrow(k: 1) {} /* tail */"
	p := New("app.elx", src)
	program, err := p.ParseProgram()
	require.NoError(t, err)

	require.Len(t, program.Body, 3)
	assert.IsType(t, &ast.AssignExpression{}, program.Body[0])
	assert.IsType(t, &ast.Identifier{}, program.Body[1])
	assert.IsType(t, &ast.Element{}, program.Body[2])
	assert.EqualValues(t, 1, program.Idx0())
	assert.EqualValues(t, len(src)+1, program.Idx1())

	require.Len(t, program.Comments, 2)
	assert.Equal(t, " header", program.Comments[0].Text)
	assert.False(t, program.Comments[0].Block)
	assert.Equal(t, " tail ", program.Comments[1].Text)
	assert.True(t, program.Comments[1].Block)

	require.Len(t, p.Elements(), 2)
	assert.Equal(t, "page", ast.NameString(p.Elements()[0].OpeningElement().Name))
	assert.Equal(t, "row", ast.NameString(p.Elements()[1].OpeningElement().Name))
	assert.Zero(t, p.Diagnostics().Len())
}

func TestProgramRejectsJuxtaposition(t *testing.T) {
	t.Parallel()

	_, err := ParseFile("", `a b`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unexpected identifier")
}

func TestErrorPosition(t *testing.T) {
	t.Parallel()

	p := New("view.elx", "row {\n  \"a\"\n  1\n}")
	_, err := p.ParseProgram()
	require.Error(t, err)

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "Unexpected number", perr.Message)
	assert.Equal(t, "view.elx", perr.Position.Filename)
	assert.Equal(t, 3, perr.Position.Line)
	assert.Contains(t, err.Error(), "view.elx")
	assert.Contains(t, err.Error(), "Unexpected number")

	require.Equal(t, 1, p.Diagnostics().Len())
	assert.Equal(t, perr.Position, p.Diagnostics()[0].Position)
}

func TestSnapshotRestore(t *testing.T) {
	t.Parallel()

	p := New("", `a b c`)
	state := p.Snapshot()
	p.SetLookahead(true)
	p.Next()
	p.Next()
	assert.Equal(t, "c", p.Literal())
	p.Restore(state)
	assert.Equal(t, "a", p.Literal())
	assert.False(t, p.Lookahead())
	assert.Equal(t, state, p.Snapshot())
}

func TestPeekChar(t *testing.T) {
	t.Parallel()

	assert.Equal(t, '{', New("", "tag   {").PeekChar())
	assert.Equal(t, '(', New("", "tag(").PeekChar())
	assert.Equal(t, rune(-1), New("", "tag  ").PeekChar())
}

func TestWithFastPathDisabled(t *testing.T) {
	t.Parallel()

	expr, err := ParseExpression(`tag { inner(a: 1) { "x" } }`, WithFastPath(false))
	require.NoError(t, err)
	assert.IsType(t, &ast.Element{}, expr)
}
