package ast

// Normalize returns a condition with double negations collapsed and nested
// parentheticals flattened to a single level. Rendering never calls this;
// it is an explicit, opt-in rewrite. The input tree is not modified.
func Normalize(cond Condition) Condition {
	switch cn := cond.(type) {
	case And:
		return And{Left: Normalize(cn.Left), Right: Normalize(cn.Right)}

	case Or:
		return Or{Left: Normalize(cn.Left), Right: Normalize(cn.Right)}

	case Not:
		inner := Normalize(cn.Condition)
		if doubled, ok := inner.(Not); ok {
			return Normalize(doubled.Condition)
		}
		return Not{Condition: inner}

	case Parenthetical:
		inner := Normalize(cn.Condition)
		if nested, ok := inner.(Parenthetical); ok {
			return nested
		}
		return Parenthetical{Condition: inner}

	default:
		return cond
	}
}
