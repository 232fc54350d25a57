package ast

import (
	"strconv"
	"strings"
)

// Element is a single step in a document path: a bare attribute name, or an
// attribute name followed by one or more list indexes.
type Element struct {
	// Name is the attribute name.
	Name string
	// Indexes holds the list indexes applied to the attribute, in order.
	// A nil or empty slice means the element is a bare name.
	Indexes []uint32
}

func (Element) exprNode() {}

// NameElement returns an Element for a bare attribute name.
func NameElement(name string) Element {
	return Element{Name: name}
}

// IndexedElement returns an Element for an attribute name with list indexes,
// such as foo[3][1]. With no indexes it is equivalent to NameElement.
func IndexedElement(name string, indexes ...uint32) Element {
	if len(indexes) == 0 {
		return Element{Name: name}
	}
	return Element{Name: name, Indexes: indexes}
}

// String renders the element as it appears in expression text, e.g. "foo" or
// "foo[3][1]".
func (e Element) String() string {
	if len(e.Indexes) == 0 {
		return e.Name
	}
	var sb strings.Builder
	sb.WriteString(e.Name)
	for _, idx := range e.Indexes {
		sb.WriteByte('[')
		sb.WriteString(strconv.FormatUint(uint64(idx), 10))
		sb.WriteByte(']')
	}
	return sb.String()
}

// Path is a document path: an ordered sequence of elements addressing an
// attribute, possibly nested and indexed (e.g. foo.bar[3][1]).
//
// A Path is an independent value. Copies do not share state and two paths
// are equal when their element sequences are equal.
type Path struct {
	// Elements are the steps of the path, outermost first.
	Elements []Element
}

func (Path) exprNode() {}
func (Path) operand()  {}

// NewPath returns a Path with a single bare name element.
func NewPath(name string) Path {
	return Path{Elements: []Element{{Name: name}}}
}

// PathOf returns a Path built from the given elements.
func PathOf(elements ...Element) Path {
	return Path{Elements: elements}
}

// Append returns a new Path with elem added after the receiver's elements.
// The receiver is not modified.
func (p Path) Append(elem Element) Path {
	elements := make([]Element, 0, len(p.Elements)+1)
	elements = append(elements, p.Elements...)
	elements = append(elements, elem)
	return Path{Elements: elements}
}

// Concat returns a new Path with other's elements added after the
// receiver's. Neither operand is modified.
func (p Path) Concat(other Path) Path {
	elements := make([]Element, 0, len(p.Elements)+len(other.Elements))
	elements = append(elements, p.Elements...)
	elements = append(elements, other.Elements...)
	return Path{Elements: elements}
}

// String renders the path as dot-joined elements, e.g. "foo.bar[3][1]".
func (p Path) String() string {
	parts := make([]string, 0, len(p.Elements))
	for _, e := range p.Elements {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, ".")
}
