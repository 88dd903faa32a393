package ast

type (
	// ElementName is implemented by *Identifier, *NamespacedName and
	// *MemberName.
	ElementName interface {
		Node
		_elementName()
	}

	// NamespacedName is ns/local. It is only valid as a whole name and never
	// appears below a MemberName.
	NamespacedName struct {
		Span
		Namespace *Identifier
		Name      *Identifier
	}

	// MemberName is a dotted chain, built left to right: a.b.c is
	// MemberName{MemberName{a, b}, c}.
	MemberName struct {
		Span
		Object   ElementName
		Property *Identifier
	}

	// AttributeItem is implemented by *Attribute and *SpreadAttribute.
	AttributeItem interface {
		Node
		_attributeItem()
	}

	// Attribute is key[: value]. Name is an *Identifier or a
	// *NamespacedName; a nil Value marks a boolean attribute.
	Attribute struct {
		Span
		Name  ElementName
		Value Node // Expression or *ExpressionContainer
	}

	SpreadAttribute struct {
		Span
		Argument Expression
	}

	// OpeningTag is implemented by *OpeningElement and *OpeningFragment.
	OpeningTag interface {
		Node
		_openingTag()
	}

	OpeningElement struct {
		Span
		Name        ElementName
		Attributes  []AttributeItem
		SelfClosing bool
	}

	OpeningFragment struct {
		Span
	}

	ExpressionContainer struct {
		Span
		Expression Expression // *EmptyExpression for {}
	}

	// EmptyExpression spans the inside of an empty {} container: from just
	// after the opening brace to just before the closing one.
	EmptyExpression struct {
		Span
	}

	SpreadChild struct {
		Span
		Expression Expression
	}

	// Element is a complete tag literal. Children holds expressions
	// (literals, identifiers, nested elements), *ExpressionContainer and
	// *SpreadChild nodes in source order.
	Element struct {
		Span
		Opening  OpeningTag
		Children []Node
	}
)

func (*Identifier) _elementName()     {}
func (*NamespacedName) _elementName() {}
func (*MemberName) _elementName()     {}

func (*Attribute) _attributeItem()       {}
func (*SpreadAttribute) _attributeItem() {}

func (*OpeningElement) _openingTag()  {}
func (*OpeningFragment) _openingTag() {}

func (*Element) _expressionNode()         {}
func (*EmptyExpression) _expressionNode() {}

// IsFragment reports whether the element was opened with the fragment marker.
func (e *Element) IsFragment() bool {
	_, ok := e.Opening.(*OpeningFragment)
	return ok
}

// OpeningElement returns the named opening tag, or nil for a fragment.
func (e *Element) OpeningElement() *OpeningElement {
	o, _ := e.Opening.(*OpeningElement)
	return o
}

// NameString renders an element or attribute name the way it was written.
func NameString(name ElementName) string {
	switch n := name.(type) {
	case *Identifier:
		return n.Name
	case *NamespacedName:
		return n.Namespace.Name + "/" + n.Name.Name
	case *MemberName:
		return NameString(n.Object) + "." + n.Property.Name
	}
	return ""
}
