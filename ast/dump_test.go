package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "opening_element", Kind(&OpeningElement{}))
	assert.Equal(t, "expression_container", Kind(&ExpressionContainer{}))
	assert.Equal(t, "identifier", Kind(&Identifier{}))
	assert.Equal(t, "", Kind(nil))
}

func TestNameString(t *testing.T) {
	t.Parallel()

	a, b, c := &Identifier{Name: "a"}, &Identifier{Name: "b"}, &Identifier{Name: "c"}
	assert.Equal(t, "a", NameString(a))
	assert.Equal(t, "a/b", NameString(&NamespacedName{Namespace: a, Name: b}))
	assert.Equal(t, "a.b.c", NameString(&MemberName{
		Object:   &MemberName{Object: a, Property: b},
		Property: c,
	}))
}

func TestDumpElement(t *testing.T) {
	t.Parallel()

	el := &Element{
		Span: Span{From: 1, To: 12},
		Opening: &OpeningElement{
			Name: &Identifier{Name: "tag", Span: Span{From: 1, To: 4}},
			Attributes: []AttributeItem{
				&Attribute{Name: &Identifier{Name: "on"}},
			},
		},
		Children: []Node{&StringLiteral{Value: "leaf"}},
	}

	m, ok := Dump(el).(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "element", m["type"])
	assert.Equal(t, []int{1, 12}, m["range"])

	opening := m["opening"].(map[string]interface{}) //nolint:forcetypeassert
	assert.Equal(t, "opening_element", opening["type"])
	attrs := opening["attributes"].([]interface{}) //nolint:forcetypeassert
	require.Len(t, attrs, 1)
	assert.Nil(t, attrs[0].(map[string]interface{})["value"]) //nolint:forcetypeassert

	children := m["children"].([]interface{}) //nolint:forcetypeassert
	require.Len(t, children, 1)
	assert.Equal(t, "leaf", children[0].(map[string]interface{})["value"]) //nolint:forcetypeassert
}

func TestDumpNil(t *testing.T) {
	t.Parallel()

	var el *Element
	assert.Nil(t, Dump(el))
	assert.Nil(t, Dump(nil))
}
