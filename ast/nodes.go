// Package ast defines the Abstract Syntax Tree (AST) for DynamoDB
// condition, key condition, filter, projection, and update expressions.
//
// It decouples expression construction from string formatting, providing a
// structured way to build expressions programmatically. Trees are immutable
// once constructed: combinators return new values and never mutate their
// operands.
package ast

// ExprNode is the marker interface for all AST nodes.
type ExprNode interface {
	exprNode()
}

// --- Operands ---

// Operand is the marker interface for anything usable on either side of a
// comparison or inside a function call: a Path, a literal Value, a Ref, a
// Size function, or a nested Condition.
type Operand interface {
	ExprNode
	operand()
}

// Size represents the size(path) function, which resolves to the length of
// the attribute at the path.
type Size struct {
	// Path is the attribute whose size is taken.
	Path Path
}

func (Size) exprNode() {}
func (Size) operand()  {}

// --- Conditions ---

// Condition is the marker interface for boolean predicate nodes. Every
// Condition is also an Operand, so conditions can appear as sub-expressions.
type Condition interface {
	ExprNode
	Operand
	condition()
}

// Comparator selects the comparison operator of a Comparison node.
type Comparator int

// Comparison operators in DynamoDB expression grammar.
const (
	Eq Comparator = iota // =
	Ne                   // <>
	Lt                   // <
	Le                   // <=
	Gt                   // >
	Ge                   // >=
)

// String returns the operator's expression-grammar symbol.
func (c Comparator) String() string {
	switch c {
	case Eq:
		return "="
	case Ne:
		return "<>"
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	default:
		return "?"
	}
}

// TypeCode is a DynamoDB attribute type tag as used by attribute_type.
type TypeCode string

// Attribute type tags.
const (
	TypeString    TypeCode = "S"
	TypeStringSet TypeCode = "SS"
	TypeNumber    TypeCode = "N"
	TypeNumberSet TypeCode = "NS"
	TypeBinary    TypeCode = "B"
	TypeBinarySet TypeCode = "BS"
	TypeBool      TypeCode = "BOOL"
	TypeNull      TypeCode = "NULL"
	TypeList      TypeCode = "L"
	TypeMap       TypeCode = "M"
)

// AttributeExists is the attribute_exists(path) predicate.
type AttributeExists struct {
	// Path is the attribute tested for presence.
	Path Path
}

func (AttributeExists) exprNode()  {}
func (AttributeExists) operand()   {}
func (AttributeExists) condition() {}

// AttributeNotExists is the attribute_not_exists(path) predicate.
type AttributeNotExists struct {
	// Path is the attribute tested for absence.
	Path Path
}

func (AttributeNotExists) exprNode()  {}
func (AttributeNotExists) operand()   {}
func (AttributeNotExists) condition() {}

// AttributeType is the attribute_type(path, type) predicate.
type AttributeType struct {
	// Path is the attribute whose type is tested.
	Path Path
	// Type is the expected attribute type tag.
	Type TypeCode
}

func (AttributeType) exprNode()  {}
func (AttributeType) operand()   {}
func (AttributeType) condition() {}

// BeginsWith is the begins_with(path, substr) predicate.
type BeginsWith struct {
	// Path is the attribute tested.
	Path Path
	// Substr is the prefix: a string literal or a Ref.
	Substr ValueOrRef
}

func (BeginsWith) exprNode()  {}
func (BeginsWith) operand()   {}
func (BeginsWith) condition() {}

// Contains is the contains(path, operand) predicate.
type Contains struct {
	// Path is the attribute tested.
	Path Path
	// Operand is the scalar literal or Ref searched for.
	Operand ValueOrRef
}

func (Contains) exprNode()  {}
func (Contains) operand()   {}
func (Contains) condition() {}

// Between is the BETWEEN operator: true when Op is greater than or equal to
// Lower and less than or equal to Upper.
type Between struct {
	// Op is the tested operand.
	Op Operand
	// Lower is the inclusive lower bound.
	Lower Operand
	// Upper is the inclusive upper bound.
	Upper Operand
}

func (Between) exprNode()  {}
func (Between) operand()   {}
func (Between) condition() {}

// In is the IN operator: true when Op is equal to any item.
//
// Constructing an In directly performs no arity checking. DynamoDB rejects
// IN lists that are empty or hold more than 100 items; use Path.In for a
// checked constructor.
type In struct {
	// Op is the tested operand.
	Op Operand
	// Items are the candidate operands.
	Items []Operand
}

func (In) exprNode()  {}
func (In) operand()   {}
func (In) condition() {}

// Comparison is a binary comparison between two operands.
type Comparison struct {
	// Left is the left operand.
	Left Operand
	// Cmp is the comparison operator.
	Cmp Comparator
	// Right is the right operand.
	Right Operand
}

func (Comparison) exprNode()  {}
func (Comparison) operand()   {}
func (Comparison) condition() {}

// And is the logical conjunction of two conditions. Chains of AND are
// represented as nested binary nodes, not flat lists.
type And struct {
	// Left is the left condition.
	Left Condition
	// Right is the right condition.
	Right Condition
}

func (And) exprNode()  {}
func (And) operand()   {}
func (And) condition() {}

// Or is the logical disjunction of two conditions.
type Or struct {
	// Left is the left condition.
	Left Condition
	// Right is the right condition.
	Right Condition
}

func (Or) exprNode()  {}
func (Or) operand()   {}
func (Or) condition() {}

// Not negates a condition. Repeated wrapping is preserved verbatim in the
// rendered text; NOT NOT is not collapsed.
type Not struct {
	// Condition is the negated condition.
	Condition Condition
}

func (Not) exprNode()  {}
func (Not) operand()   {}
func (Not) condition() {}

// Parenthetical wraps a condition in parentheses. Repeated wrapping renders
// repeated parenthesis pairs; nesting is never flattened on render.
type Parenthetical struct {
	// Condition is the wrapped condition.
	Condition Condition
}

func (Parenthetical) exprNode()  {}
func (Parenthetical) operand()   {}
func (Parenthetical) condition() {}
