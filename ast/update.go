package ast

// Update is an update expression: up to four sections rendered in the fixed
// order SET, REMOVE, ADD, DELETE. Combining updates with And appends to the
// matching sections; unlike conditions, update composition is flat
// concatenation, never nesting.
type Update struct {
	// Set holds the SET section's actions in order.
	Set []SetAction
	// Remove holds the REMOVE section's paths in order.
	Remove []Path
	// Add holds the ADD section's actions in order.
	Add []AddAction
	// Delete holds the DELETE section's actions in order.
	Delete []DeleteAction
}

func (Update) exprNode() {}

// And returns a new Update whose sections are the receiver's sections with
// other's appended. Neither operand is modified.
func (u Update) And(other Update) Update {
	return Update{
		Set:    concatSlice(u.Set, other.Set),
		Remove: concatSlice(u.Remove, other.Remove),
		Add:    concatSlice(u.Add, other.Add),
		Delete: concatSlice(u.Delete, other.Delete),
	}
}

// IsEmpty reports whether the update has no actions in any section.
func (u Update) IsEmpty() bool {
	return len(u.Set) == 0 && len(u.Remove) == 0 && len(u.Add) == 0 && len(u.Delete) == 0
}

func concatSlice[T any](a, b []T) []T {
	if len(b) == 0 {
		return a
	}
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// --- SET actions ---

// SetAction is the marker interface for actions in an update's SET section.
type SetAction interface {
	ExprNode
	setAction()
}

// Assign sets an attribute to a value: "path = value".
type Assign struct {
	// Path is the destination attribute.
	Path Path
	// Value is the assigned literal or Ref.
	Value ValueOrRef
}

func (Assign) exprNode()  {}
func (Assign) setAction() {}

// MathOp selects addition or subtraction for a Math action.
type MathOp int

// Math operators.
const (
	MathAdd MathOp = iota // +
	MathSub               // -
)

// String returns the operator symbol.
func (op MathOp) String() string {
	if op == MathSub {
		return "-"
	}
	return "+"
}

// Math sets an attribute to the result of adding a number to (or
// subtracting it from) a source attribute: "dst = src op num". A nil Src
// defaults to Dst.
type Math struct {
	// Dst is the destination attribute.
	Dst Path
	// Src is the source attribute; nil means use Dst.
	Src *Path
	// Op is the operator.
	Op MathOp
	// Num is the numeric literal or Ref.
	Num ValueOrRef
}

func (Math) exprNode()  {}
func (Math) setAction() {}

// ListAppend sets an attribute to the concatenation of a source list
// attribute and a literal list: "dst = list_append(src, list)", or with
// Before set, "dst = list_append(list, src)". A nil Src defaults to Dst.
type ListAppend struct {
	// Dst is the destination attribute.
	Dst Path
	// Src is the source attribute; nil means use Dst.
	Src *Path
	// List is the appended list literal or Ref.
	List ValueOrRef
	// Before places the literal list ahead of the source attribute.
	Before bool
}

func (ListAppend) exprNode()  {}
func (ListAppend) setAction() {}

// IfNotExists sets an attribute only when the source attribute is absent:
// "dst = if_not_exists(src, value)". A nil Src defaults to Dst.
type IfNotExists struct {
	// Dst is the destination attribute.
	Dst Path
	// Src is the attribute tested for absence; nil means use Dst.
	Src *Path
	// Value is the fallback literal or Ref.
	Value ValueOrRef
}

func (IfNotExists) exprNode()  {}
func (IfNotExists) setAction() {}

// --- ADD and DELETE actions ---

// AddAction adds a number to a numeric attribute or members to a set
// attribute: "path value".
type AddAction struct {
	// Path is the target attribute.
	Path Path
	// Value is a numeric or set literal, or a Ref.
	Value ValueOrRef
}

func (AddAction) exprNode() {}

// DeleteAction removes members from a set attribute: "path subset".
type DeleteAction struct {
	// Path is the target attribute.
	Path Path
	// Subset is the set literal or Ref naming the members to remove.
	Subset ValueOrRef
}

func (DeleteAction) exprNode() {}
