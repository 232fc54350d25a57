package ast

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strings"
)

// Compiler compiles AST nodes into DynamoDB expression strings.
// It traverses the AST and generates the corresponding expression grammar
// text. The zero value is ready to use.
type Compiler struct{}

// Compile compiles a single AST node into its expression string
// representation. It returns an error if the node type is unknown.
func (c *Compiler) Compile(node ExprNode) (string, error) {
	switch n := node.(type) {
	case Condition:
		return c.Condition(n)
	case KeyCondition:
		return c.KeyCondition(n)
	case Update:
		return c.Update(n)
	case Operand:
		return c.Operand(n)
	case SetAction:
		return c.setAction(n)
	default:
		return "", fmt.Errorf("unknown node type: %T", node)
	}
}

// --- Conditions ---

// Condition compiles a condition tree. NOT and parenthetical nesting is
// rendered verbatim; no simplification happens here.
func (c *Compiler) Condition(cond Condition) (string, error) {
	switch cn := cond.(type) {
	case AttributeExists:
		return fmt.Sprintf("attribute_exists(%s)", cn.Path), nil

	case AttributeNotExists:
		return fmt.Sprintf("attribute_not_exists(%s)", cn.Path), nil

	case AttributeType:
		return fmt.Sprintf("attribute_type(%s, %s)", cn.Path, cn.Type), nil

	case BeginsWith:
		substr, err := c.Value(cn.Substr)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("begins_with(%s, %s)", cn.Path, substr), nil

	case Contains:
		operand, err := c.Value(cn.Operand)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("contains(%s, %s)", cn.Path, operand), nil

	case Between:
		op, err := c.Operand(cn.Op)
		if err != nil {
			return "", err
		}
		lower, err := c.Operand(cn.Lower)
		if err != nil {
			return "", err
		}
		upper, err := c.Operand(cn.Upper)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s BETWEEN %s AND %s", op, lower, upper), nil

	case In:
		op, err := c.Operand(cn.Op)
		if err != nil {
			return "", err
		}
		items := make([]string, 0, len(cn.Items))
		for _, item := range cn.Items {
			s, err := c.Operand(item)
			if err != nil {
				return "", err
			}
			items = append(items, s)
		}
		return fmt.Sprintf("%s IN (%s)", op, strings.Join(items, ",")), nil

	case Comparison:
		left, err := c.Operand(cn.Left)
		if err != nil {
			return "", err
		}
		right, err := c.Operand(cn.Right)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s %s", left, cn.Cmp, right), nil

	case And:
		left, err := c.Condition(cn.Left)
		if err != nil {
			return "", err
		}
		right, err := c.Condition(cn.Right)
		if err != nil {
			return "", err
		}
		return left + " AND " + right, nil

	case Or:
		left, err := c.Condition(cn.Left)
		if err != nil {
			return "", err
		}
		right, err := c.Condition(cn.Right)
		if err != nil {
			return "", err
		}
		return left + " OR " + right, nil

	case Not:
		inner, err := c.Condition(cn.Condition)
		if err != nil {
			return "", err
		}
		return "NOT " + inner, nil

	case Parenthetical:
		inner, err := c.Condition(cn.Condition)
		if err != nil {
			return "", err
		}
		return "(" + inner + ")", nil

	default:
		return "", fmt.Errorf("unknown condition type: %T", cond)
	}
}

// KeyCondition compiles a key condition by delegating to its wrapped
// condition.
func (c *Compiler) KeyCondition(kc KeyCondition) (string, error) {
	return c.Condition(kc.Condition)
}

// --- Operands ---

// Operand compiles an operand: a path, size function, literal, reference,
// or nested condition.
func (c *Compiler) Operand(op Operand) (string, error) {
	switch on := op.(type) {
	case Path:
		return on.String(), nil
	case Size:
		return fmt.Sprintf("size(%s)", on.Path), nil
	case ValueOrRef:
		return c.Value(on)
	case Condition:
		return c.Condition(on)
	default:
		return "", fmt.Errorf("unknown operand type: %T", op)
	}
}

// --- Updates ---

// Update compiles an update expression. Present sections render in the
// fixed order SET, REMOVE, ADD, DELETE, joined by single spaces; an empty
// update renders as an empty string.
func (c *Compiler) Update(u Update) (string, error) {
	sections := make([]string, 0, 4)

	if len(u.Set) > 0 {
		actions := make([]string, 0, len(u.Set))
		for _, a := range u.Set {
			s, err := c.setAction(a)
			if err != nil {
				return "", err
			}
			actions = append(actions, s)
		}
		sections = append(sections, "SET "+strings.Join(actions, ", "))
	}

	if len(u.Remove) > 0 {
		paths := make([]string, 0, len(u.Remove))
		for _, p := range u.Remove {
			paths = append(paths, p.String())
		}
		sections = append(sections, "REMOVE "+strings.Join(paths, ", "))
	}

	if len(u.Add) > 0 {
		actions := make([]string, 0, len(u.Add))
		for _, a := range u.Add {
			v, err := c.Value(a.Value)
			if err != nil {
				return "", err
			}
			actions = append(actions, a.Path.String()+" "+v)
		}
		sections = append(sections, "ADD "+strings.Join(actions, ", "))
	}

	if len(u.Delete) > 0 {
		actions := make([]string, 0, len(u.Delete))
		for _, a := range u.Delete {
			v, err := c.Value(a.Subset)
			if err != nil {
				return "", err
			}
			actions = append(actions, a.Path.String()+" "+v)
		}
		sections = append(sections, "DELETE "+strings.Join(actions, ", "))
	}

	return strings.Join(sections, " "), nil
}

func (c *Compiler) setAction(action SetAction) (string, error) {
	switch a := action.(type) {
	case Assign:
		v, err := c.Value(a.Value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s = %s", a.Path, v), nil

	case Math:
		num, err := c.Value(a.Num)
		if err != nil {
			return "", err
		}
		src := a.Dst
		if a.Src != nil {
			src = *a.Src
		}
		return fmt.Sprintf("%s = %s %s %s", a.Dst, src, a.Op, num), nil

	case ListAppend:
		list, err := c.Value(a.List)
		if err != nil {
			return "", err
		}
		src := a.Dst.String()
		if a.Src != nil {
			src = a.Src.String()
		}
		first, second := src, list
		if a.Before {
			first, second = list, src
		}
		return fmt.Sprintf("%s = list_append(%s, %s)", a.Dst, first, second), nil

	case IfNotExists:
		v, err := c.Value(a.Value)
		if err != nil {
			return "", err
		}
		src := a.Dst
		if a.Src != nil {
			src = *a.Src
		}
		return fmt.Sprintf("%s = if_not_exists(%s, %s)", a.Dst, src, v), nil

	default:
		return "", fmt.Errorf("unknown set action type: %T", action)
	}
}

// --- Values ---

// Value compiles a literal value or reference into its expression-grammar
// text: strings quoted and escaped, numbers verbatim, binary as quoted
// base64, null as NULL, sets and lists bracketed, maps braced with sorted
// keys, references as ":name".
func (c *Compiler) Value(v ValueOrRef) (string, error) {
	switch val := v.(type) {
	case StringValue:
		return QuoteString(val.Val), nil

	case NumValue:
		return val.N, nil

	case BoolValue:
		if val.Val {
			return "true", nil
		}
		return "false", nil

	case BinaryValue:
		return QuoteString(base64.StdEncoding.EncodeToString(val.Val)), nil

	case NullValue:
		return "NULL", nil

	case StringSetValue:
		members := make([]string, 0, len(val.Vals))
		for _, s := range val.Vals {
			members = append(members, QuoteString(s))
		}
		return "[" + strings.Join(members, ", ") + "]", nil

	case NumSetValue:
		return "[" + strings.Join(val.Vals, ", ") + "]", nil

	case BinarySetValue:
		members := make([]string, 0, len(val.Vals))
		for _, b := range val.Vals {
			members = append(members, QuoteString(base64.StdEncoding.EncodeToString(b)))
		}
		return "[" + strings.Join(members, ", ") + "]", nil

	case ListValue:
		items := make([]string, 0, len(val.Items))
		for _, item := range val.Items {
			s, err := c.Value(item)
			if err != nil {
				return "", err
			}
			items = append(items, s)
		}
		return "[" + strings.Join(items, ", ") + "]", nil

	case MapValue:
		keys := make([]string, 0, len(val.Entries))
		for k := range val.Entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]string, 0, len(keys))
		for _, k := range keys {
			s, err := c.Value(val.Entries[k])
			if err != nil {
				return "", err
			}
			entries = append(entries, k+": "+s)
		}
		return "{" + strings.Join(entries, ", ") + "}", nil

	case Ref:
		return ":" + val.Name, nil

	default:
		return "", fmt.Errorf("unknown value type: %T", v)
	}
}

// QuoteString quotes and escapes a string for use as an expression literal.
// It handles backslashes, quotes, newlines, carriage returns, and tabs.
func QuoteString(s string) string {
	return `"` + EscapeString(s) + `"`
}

// EscapeString escapes special characters in a string for use inside a
// quoted expression literal.
func EscapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	return s
}
