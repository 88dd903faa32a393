package element_test

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liuxd6825/elemx/ast"
	"github.com/liuxd6825/elemx/element"
	"github.com/liuxd6825/elemx/lib/testutils"
	"github.com/liuxd6825/elemx/parser"
)

func TestIsElementStartLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		src  string
		want bool
	}{
		{`foo(bar, baz + 1)`, false},
		{`foo(bar)`, false},
		{`foo(/* note */ bar)`, false},
		{`foo`, false},
		{`foo.bar(1)`, false},
		{`foo.bar {}`, true},
		{`foo(bar) { "x" }`, true},
		{`foo(/* note */ bar) {}`, true},
		{`@{}`, true},
		{`@x`, false},
		{`ns/x {}`, true},
		{`class {}`, true},
		{`class`, false},
		{`null(a) {}`, true},
		{`"x"`, false},
	}
	for _, tc := range testCases {
		tc := tc
		for _, fastPath := range []bool{true, false} {
			fastPath := fastPath
			t.Run(fmt.Sprintf("%s/fastPath=%t", tc.src, fastPath), func(t *testing.T) {
				t.Parallel()

				p := parser.New("", tc.src)
				before := p.Snapshot()
				comments := len(p.Comments())

				elements := element.New(p, element.WithFastPath(fastPath))
				assert.Equal(t, tc.want, elements.IsElementStart())

				assert.Equal(t, before, p.Snapshot())
				assert.False(t, p.Lookahead())
				assert.Zero(t, p.Diagnostics().Len())
				assert.Len(t, p.Comments(), comments)
			})
		}
	}
}

func TestAmbiguousCallStaysCall(t *testing.T) {
	t.Parallel()

	p := parser.New("", `foo(/* a */ bar, baz + 1)`)
	program, err := p.ParseProgram()
	require.NoError(t, err)
	require.Len(t, program.Body, 1)

	call, ok := program.Body[0].(*ast.CallExpression)
	require.True(t, ok, "got %T", program.Body[0])
	assert.Len(t, call.ArgumentList, 2)
	assert.IsType(t, &ast.BinaryExpression{}, call.ArgumentList[1])

	assert.Zero(t, p.Diagnostics().Len())
	assert.Empty(t, p.Elements())
	require.Len(t, program.Comments, 1)
	assert.Equal(t, " a ", program.Comments[0].Text)
}

func TestExpressionsAroundElements(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		src  string
		kind interface{}
	}{
		{`a / b`, &ast.BinaryExpression{}},
		{`a.b`, &ast.DotExpression{}},
		{`a(b)`, &ast.CallExpression{}},
		{`a.b(c)`, &ast.CallExpression{}},
		{`x = row {}`, &ast.AssignExpression{}},
		{`[row {}, col {}]`, &ast.ArrayLiteral{}},
		{`ok ? yes {} : no {}`, &ast.ConditionalExpression{}},
		{`list(item {})`, &ast.CallExpression{}},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.src, func(t *testing.T) {
			t.Parallel()
			expr, err := parser.ParseExpression(tc.src)
			require.NoError(t, err)
			assert.IsType(t, tc.kind, expr)
		})
	}
}

func TestTrialRejectionIsTraced(t *testing.T) {
	t.Parallel()

	hook := testutils.NewLogHook(logrus.TraceLevel)
	logger := testutils.NewLogger(t, hook)

	p := parser.New("", `foo(bar, baz + 1)`)
	elements := element.New(p, element.WithLogger(logger))
	require.False(t, elements.IsElementStart())

	entries := hook.Drain()
	require.Len(t, entries, 1)
	assert.Equal(t, "Element trial parse rejected", entries[0].Message)
	err, ok := entries[0].Data[logrus.ErrorKey].(error)
	require.True(t, ok)
	assert.Contains(t, err.Error(), `"foo" does not open an element`)
	assert.ErrorIs(t, err, element.ErrUnexpectedToken)
}
