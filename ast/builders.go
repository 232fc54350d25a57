package ast

// Fluent constructors for condition and update nodes. Nodes can also be
// built directly as struct literals; these helpers cover the common shapes.

// --- Comparisons ---

// Equal is the "p = right" condition.
func (p Path) Equal(right Operand) Comparison {
	return Comparison{Left: p, Cmp: Eq, Right: right}
}

// NotEqual is the "p <> right" condition.
func (p Path) NotEqual(right Operand) Comparison {
	return Comparison{Left: p, Cmp: Ne, Right: right}
}

// LessThan is the "p < right" condition.
func (p Path) LessThan(right Operand) Comparison {
	return Comparison{Left: p, Cmp: Lt, Right: right}
}

// LessThanOrEqual is the "p <= right" condition.
func (p Path) LessThanOrEqual(right Operand) Comparison {
	return Comparison{Left: p, Cmp: Le, Right: right}
}

// GreaterThan is the "p > right" condition.
func (p Path) GreaterThan(right Operand) Comparison {
	return Comparison{Left: p, Cmp: Gt, Right: right}
}

// GreaterThanOrEqual is the "p >= right" condition.
func (p Path) GreaterThanOrEqual(right Operand) Comparison {
	return Comparison{Left: p, Cmp: Ge, Right: right}
}

// Between is the "p BETWEEN lower AND upper" condition.
func (p Path) Between(lower, upper Operand) Between {
	return Between{Op: p, Lower: lower, Upper: upper}
}

// In is the checked constructor for the "p IN (items...)" condition.
// DynamoDB allows between 1 and 100 items; anything else fails with a
// *ListSizeError carrying the rejected items. The In struct literal remains
// available as the unchecked constructor.
func (p Path) In(items ...Operand) (In, error) {
	if len(items) < 1 || len(items) > maxInItems {
		return In{}, &ListSizeError{Items: items}
	}
	return In{Op: p, Items: items}, nil
}

// maxInItems is the largest IN list DynamoDB accepts.
const maxInItems = 100

// --- Functions ---

// AttributeExists is the "attribute_exists(p)" condition.
func (p Path) AttributeExists() AttributeExists {
	return AttributeExists{Path: p}
}

// AttributeNotExists is the "attribute_not_exists(p)" condition.
func (p Path) AttributeNotExists() AttributeNotExists {
	return AttributeNotExists{Path: p}
}

// AttributeType is the "attribute_type(p, t)" condition.
func (p Path) AttributeType(t TypeCode) AttributeType {
	return AttributeType{Path: p, Type: t}
}

// BeginsWith is the "begins_with(p, substr)" condition. The prefix is a
// string literal or a Ref.
func (p Path) BeginsWith(substr ValueOrRef) BeginsWith {
	return BeginsWith{Path: p, Substr: substr}
}

// Contains is the "contains(p, operand)" condition. The operand is a scalar
// literal or a Ref.
func (p Path) Contains(operand ValueOrRef) Contains {
	return Contains{Path: p, Operand: operand}
}

// Size is the "size(p)" operand.
func (p Path) Size() Size {
	return Size{Path: p}
}

// --- Combinators ---

// AndAll joins conditions with AND, nesting left to right: AndAll(a, b, c)
// is (a AND b) AND c structurally, rendered "a AND b AND c".
func AndAll(first Condition, rest ...Condition) Condition {
	cond := first
	for _, r := range rest {
		cond = And{Left: cond, Right: r}
	}
	return cond
}

// OrAll joins conditions with OR, nesting left to right.
func OrAll(first Condition, rest ...Condition) Condition {
	cond := first
	for _, r := range rest {
		cond = Or{Left: cond, Right: r}
	}
	return cond
}

// Negate wraps a condition in NOT. Double negation is preserved, not
// simplified.
func Negate(c Condition) Not {
	return Not{Condition: c}
}

// Group wraps a condition in parentheses. Repeated grouping renders
// repeated parenthesis pairs.
func Group(c Condition) Parenthetical {
	return Parenthetical{Condition: c}
}

// --- Update actions ---

// Assign is the SET action "p = value".
func (p Path) Assign(value ValueOrRef) Update {
	return Update{Set: []SetAction{Assign{Path: p, Value: value}}}
}

// Math starts a SET arithmetic action on p. Finish with Add or Sub.
func (p Path) Math() MathBuilder {
	return MathBuilder{dst: p}
}

// MathBuilder accumulates a Math action. Obtain one from Path.Math.
type MathBuilder struct {
	dst Path
	src *Path
}

// Src overrides the source attribute, which otherwise defaults to the
// destination.
func (b MathBuilder) Src(src Path) MathBuilder {
	b.src = &src
	return b
}

// Add finishes the action as "dst = src + num".
func (b MathBuilder) Add(num ValueOrRef) Update {
	return Update{Set: []SetAction{Math{Dst: b.dst, Src: b.src, Op: MathAdd, Num: num}}}
}

// Sub finishes the action as "dst = src - num".
func (b MathBuilder) Sub(num ValueOrRef) Update {
	return Update{Set: []SetAction{Math{Dst: b.dst, Src: b.src, Op: MathSub, Num: num}}}
}

// ListAppend starts a SET list_append action on p. Finish with List.
func (p Path) ListAppend() ListAppendBuilder {
	return ListAppendBuilder{dst: p}
}

// ListAppendBuilder accumulates a ListAppend action. Obtain one from
// Path.ListAppend.
type ListAppendBuilder struct {
	dst    Path
	src    *Path
	before bool
}

// Src overrides the source attribute, which otherwise defaults to the
// destination.
func (b ListAppendBuilder) Src(src Path) ListAppendBuilder {
	b.src = &src
	return b
}

// After appends the literal list after the source attribute. This is the
// default.
func (b ListAppendBuilder) After() ListAppendBuilder {
	b.before = false
	return b
}

// Before places the literal list ahead of the source attribute.
func (b ListAppendBuilder) Before() ListAppendBuilder {
	b.before = true
	return b
}

// List finishes the action with the appended list literal or Ref.
func (b ListAppendBuilder) List(list ValueOrRef) Update {
	return Update{Set: []SetAction{ListAppend{Dst: b.dst, Src: b.src, List: list, Before: b.before}}}
}

// IfNotExists starts a SET if_not_exists action on p. Finish with Assign.
func (p Path) IfNotExists() IfNotExistsBuilder {
	return IfNotExistsBuilder{dst: p}
}

// IfNotExistsBuilder accumulates an IfNotExists action. Obtain one from
// Path.IfNotExists.
type IfNotExistsBuilder struct {
	dst Path
	src *Path
}

// Src overrides the attribute tested for absence, which otherwise defaults
// to the destination.
func (b IfNotExistsBuilder) Src(src Path) IfNotExistsBuilder {
	b.src = &src
	return b
}

// Assign finishes the action with the fallback value.
func (b IfNotExistsBuilder) Assign(value ValueOrRef) Update {
	return Update{Set: []SetAction{IfNotExists{Dst: b.dst, Src: b.src, Value: value}}}
}

// Remove is the REMOVE action for p.
func (p Path) Remove() Update {
	return Update{Remove: []Path{p}}
}

// Add is the ADD action "p value" for a number or set.
func (p Path) Add(value ValueOrRef) Update {
	return Update{Add: []AddAction{{Path: p, Value: value}}}
}

// Delete is the DELETE action "p subset" removing members from a set
// attribute.
func (p Path) Delete(subset ValueOrRef) Update {
	return Update{Delete: []DeleteAction{{Path: p, Subset: subset}}}
}
