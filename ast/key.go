package ast

// Key marks a Path as a primary key attribute and is the entry point for
// building key conditions. Only the operators DynamoDB allows in a key
// condition are offered here, so a KeyCondition is valid by construction.
type Key struct {
	path Path
}

// Key returns the path as a Key for building a key condition.
func (p Path) Key() Key {
	return Key{path: p}
}

// Equal is the "key = value" key condition.
func (k Key) Equal(right Operand) KeyCondition {
	return KeyCondition{Condition: Comparison{Left: k.path, Cmp: Eq, Right: right}}
}

// LessThan is the "key < value" key condition.
func (k Key) LessThan(right Operand) KeyCondition {
	return KeyCondition{Condition: Comparison{Left: k.path, Cmp: Lt, Right: right}}
}

// LessThanOrEqual is the "key <= value" key condition.
func (k Key) LessThanOrEqual(right Operand) KeyCondition {
	return KeyCondition{Condition: Comparison{Left: k.path, Cmp: Le, Right: right}}
}

// GreaterThan is the "key > value" key condition.
func (k Key) GreaterThan(right Operand) KeyCondition {
	return KeyCondition{Condition: Comparison{Left: k.path, Cmp: Gt, Right: right}}
}

// GreaterThanOrEqual is the "key >= value" key condition.
func (k Key) GreaterThanOrEqual(right Operand) KeyCondition {
	return KeyCondition{Condition: Comparison{Left: k.path, Cmp: Ge, Right: right}}
}

// Between is the "key BETWEEN lower AND upper" key condition.
func (k Key) Between(lower, upper Operand) KeyCondition {
	return KeyCondition{Condition: Between{Op: k.path, Lower: lower, Upper: upper}}
}

// BeginsWith is the "begins_with(key, substr)" key condition. The prefix is
// a string literal or a Ref.
func (k Key) BeginsWith(substr ValueOrRef) KeyCondition {
	return KeyCondition{Condition: BeginsWith{Path: k.path, Substr: substr}}
}

// KeyCondition is a condition restricted to the shapes DynamoDB permits for
// bounding a primary-key query. Build one from the methods on Key.
type KeyCondition struct {
	// Condition is the wrapped condition tree.
	Condition Condition
}

func (KeyCondition) exprNode() {}

// And joins two key conditions with AND, typically a partition-key equality
// with a sort-key bound.
func (kc KeyCondition) And(right KeyCondition) KeyCondition {
	return KeyCondition{Condition: And{Left: kc.Condition, Right: right.Condition}}
}
