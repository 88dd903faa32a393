package ast

import (
	"reflect"
	"sync"

	"github.com/serenize/snaker"
)

//nolint:gochecknoglobals
var kindCache sync.Map // reflect.Type -> string

// Kind returns the snake_case tag of a node, derived from its type name
// (e.g. "opening_element" for *OpeningElement).
func Kind(n Node) string {
	t := reflect.TypeOf(n)
	if t == nil {
		return ""
	}
	if k, ok := kindCache.Load(t); ok {
		return k.(string) //nolint:forcetypeassert
	}
	name := t.Name()
	if t.Kind() == reflect.Ptr {
		name = t.Elem().Name()
	}
	k := snaker.CamelToSnake(name)
	kindCache.Store(t, k)
	return k
}

// Dump converts a tree into nested maps and slices that encode cleanly as
// JSON or YAML. Every map carries "type" and "range" keys.
func Dump(n Node) interface{} {
	if n == nil {
		return nil
	}
	if v := reflect.ValueOf(n); v.Kind() == reflect.Ptr && v.IsNil() {
		return nil
	}
	m := map[string]interface{}{
		"type":  Kind(n),
		"range": []int{int(n.Idx0()), int(n.Idx1())},
	}
	switch n := n.(type) {
	case *Program:
		m["body"] = dumpExpressions(n.Body)
		if len(n.Comments) > 0 {
			comments := make([]interface{}, len(n.Comments))
			for i, c := range n.Comments {
				comments[i] = Dump(c)
			}
			m["comments"] = comments
		}
	case *Comment:
		m["text"] = n.Text
		m["block"] = n.Block
	case *Identifier:
		m["name"] = n.Name
	case *StringLiteral:
		m["value"] = n.Value
	case *NumberLiteral:
		m["value"] = n.Value
	case *BooleanLiteral:
		m["value"] = n.Value
	case *NullLiteral:
	case *ArrayLiteral:
		m["elements"] = dumpExpressions(n.Value)
	case *AssignExpression:
		m["left"] = Dump(n.Left)
		m["right"] = Dump(n.Right)
	case *BinaryExpression:
		m["operator"] = n.Operator.String()
		m["left"] = Dump(n.Left)
		m["right"] = Dump(n.Right)
	case *UnaryExpression:
		m["operator"] = n.Operator.String()
		m["operand"] = Dump(n.Operand)
	case *ConditionalExpression:
		m["test"] = Dump(n.Test)
		m["consequent"] = Dump(n.Consequent)
		m["alternate"] = Dump(n.Alternate)
	case *CallExpression:
		m["callee"] = Dump(n.Callee)
		m["arguments"] = dumpExpressions(n.ArgumentList)
	case *DotExpression:
		m["object"] = Dump(n.Left)
		m["property"] = Dump(n.Identifier)
	case *BracketExpression:
		m["object"] = Dump(n.Left)
		m["member"] = Dump(n.Member)
	case *SequenceExpression:
		m["expressions"] = dumpExpressions(n.Sequence)
	case *SpreadElement:
		m["argument"] = Dump(n.Expression)
	case *NamespacedName:
		m["namespace"] = Dump(n.Namespace)
		m["name"] = Dump(n.Name)
	case *MemberName:
		m["object"] = Dump(n.Object)
		m["property"] = Dump(n.Property)
	case *Attribute:
		m["name"] = Dump(n.Name)
		m["value"] = Dump(n.Value)
	case *SpreadAttribute:
		m["argument"] = Dump(n.Argument)
	case *OpeningElement:
		m["name"] = Dump(n.Name)
		attrs := make([]interface{}, len(n.Attributes))
		for i, a := range n.Attributes {
			attrs[i] = Dump(a)
		}
		m["attributes"] = attrs
		m["selfClosing"] = n.SelfClosing
	case *OpeningFragment:
	case *ExpressionContainer:
		m["expression"] = Dump(n.Expression)
	case *EmptyExpression:
	case *SpreadChild:
		m["expression"] = Dump(n.Expression)
	case *Element:
		m["opening"] = Dump(n.Opening)
		children := make([]interface{}, len(n.Children))
		for i, c := range n.Children {
			children[i] = Dump(c)
		}
		m["children"] = children
	}
	return m
}

func dumpExpressions(list []Expression) []interface{} {
	out := make([]interface{}, len(list))
	for i, e := range list {
		out[i] = Dump(e)
	}
	return out
}
