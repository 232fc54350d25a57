package ast

import (
	"bytes"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Value is the marker interface for literal value nodes: scalars, sets,
// lists, and maps. Every Value can also be used where a ValueOrRef or an
// Operand is expected.
type Value interface {
	ValueOrRef
	value()
}

// ValueOrRef is the marker interface for anything accepted where a literal
// value goes: either a Value, which the expression builder interns into a
// generated ":N" placeholder, or a Ref, which names a placeholder the caller
// has already declared and passes through untouched.
type ValueOrRef interface {
	ExprNode
	Operand
	valueOrRef()
}

// Number is the constraint for numeric inputs accepted by Num, NumLowerExp,
// NumUpperExp, and NumSet.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// --- Scalars ---

// StringValue is a UTF-8 string literal, rendered quoted and escaped.
type StringValue struct {
	// Val is the string content.
	Val string
}

func (StringValue) exprNode()   {}
func (StringValue) operand()    {}
func (StringValue) valueOrRef() {}
func (StringValue) value()      {}

// Str returns a StringValue.
func Str(s string) StringValue {
	return StringValue{Val: s}
}

// NumValue is a numeric literal. The number is stored as canonical decimal
// (or exponential) text chosen at construction time, never as a native
// float, so no precision is lost between construction and rendering.
// Equality is equality of the stored text.
type NumValue struct {
	// N is the canonical textual form of the number.
	N string
}

func (NumValue) exprNode()   {}
func (NumValue) operand()    {}
func (NumValue) valueOrRef() {}
func (NumValue) value()      {}

// Num returns a NumValue in fixed notation, e.g. Num(1000) renders 1000 and
// Num(2.5) renders 2.5.
func Num[T Number](n T) NumValue {
	return NumValue{N: formatFixed(reflect.ValueOf(n))}
}

// NumLowerExp returns a NumValue in lower exponential notation, e.g.
// NumLowerExp(1000) renders 1e3.
func NumLowerExp[T Number](n T) NumValue {
	return NumValue{N: formatExp(toFloat(reflect.ValueOf(n)), false)}
}

// NumUpperExp returns a NumValue in upper exponential notation, e.g.
// NumUpperExp(1000) renders 1E3.
func NumUpperExp[T Number](n T) NumValue {
	return NumValue{N: formatExp(toFloat(reflect.ValueOf(n)), true)}
}

func formatFixed(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	default:
		return strconv.FormatInt(rv.Int(), 10)
	}
}

func toFloat(rv reflect.Value) float64 {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	default:
		return float64(rv.Int())
	}
}

// formatExp renders n in minimal exponential notation: 1000 becomes "1e3",
// not "1e+03".
func formatExp(n float64, upper bool) string {
	s := strconv.FormatFloat(n, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	exp = strings.TrimPrefix(exp, "+")
	neg := strings.HasPrefix(exp, "-")
	digits := strings.TrimLeft(strings.TrimPrefix(exp, "-"), "0")
	if digits == "" {
		digits = "0"
	}
	e := "e"
	if upper {
		e = "E"
	}
	if neg {
		return mantissa + e + "-" + digits
	}
	return mantissa + e + digits
}

// BoolValue is a boolean literal, rendered true or false.
type BoolValue struct {
	// Val is the boolean value.
	Val bool
}

func (BoolValue) exprNode()   {}
func (BoolValue) operand()    {}
func (BoolValue) valueOrRef() {}
func (BoolValue) value()      {}

// Bool returns a BoolValue.
func Bool(b bool) BoolValue {
	return BoolValue{Val: b}
}

// BinaryValue is a raw byte literal, rendered as a quoted base64 string.
type BinaryValue struct {
	// Val is the raw byte content.
	Val []byte
}

func (BinaryValue) exprNode()   {}
func (BinaryValue) operand()    {}
func (BinaryValue) valueOrRef() {}
func (BinaryValue) value()      {}

// Binary returns a BinaryValue.
func Binary(b []byte) BinaryValue {
	return BinaryValue{Val: b}
}

// NullValue is the null literal, rendered as the token NULL.
type NullValue struct{}

func (NullValue) exprNode()   {}
func (NullValue) operand()    {}
func (NullValue) valueOrRef() {}
func (NullValue) value()      {}

// Null returns a NullValue.
func Null() NullValue {
	return NullValue{}
}

// --- Sets ---

// StringSetValue is a deduplicated set of strings, stored sorted for
// deterministic rendering.
type StringSetValue struct {
	// Vals are the members in canonical sorted order.
	Vals []string
}

func (StringSetValue) exprNode()   {}
func (StringSetValue) operand()    {}
func (StringSetValue) valueOrRef() {}
func (StringSetValue) value()      {}

// StringSet returns a StringSetValue. Members are deduplicated and sorted.
func StringSet(items ...string) StringSetValue {
	vals := make([]string, len(items))
	copy(vals, items)
	sort.Strings(vals)
	return StringSetValue{Vals: dedupStrings(vals)}
}

// NumSetValue is a deduplicated set of numbers, stored as canonical number
// text sorted for deterministic rendering.
type NumSetValue struct {
	// Vals are the members' canonical textual forms in sorted order.
	Vals []string
}

func (NumSetValue) exprNode()   {}
func (NumSetValue) operand()    {}
func (NumSetValue) valueOrRef() {}
func (NumSetValue) value()      {}

// NumSet returns a NumSetValue from numeric inputs in fixed notation.
// Members are deduplicated and sorted by their canonical text.
func NumSet[T Number](items ...T) NumSetValue {
	vals := make([]string, 0, len(items))
	for _, n := range items {
		vals = append(vals, formatFixed(reflect.ValueOf(n)))
	}
	sort.Strings(vals)
	return NumSetValue{Vals: dedupStrings(vals)}
}

// NumSetOf returns a NumSetValue from already-constructed NumValues, keeping
// whatever notation each was built with. Members are deduplicated and sorted
// by their canonical text.
func NumSetOf(items ...NumValue) NumSetValue {
	vals := make([]string, 0, len(items))
	for _, n := range items {
		vals = append(vals, n.N)
	}
	sort.Strings(vals)
	return NumSetValue{Vals: dedupStrings(vals)}
}

// BinarySetValue is a deduplicated set of byte strings, stored sorted for
// deterministic rendering.
type BinarySetValue struct {
	// Vals are the members in canonical sorted order.
	Vals [][]byte
}

func (BinarySetValue) exprNode()   {}
func (BinarySetValue) operand()    {}
func (BinarySetValue) valueOrRef() {}
func (BinarySetValue) value()      {}

// BinarySet returns a BinarySetValue. Members are deduplicated and sorted
// bytewise.
func BinarySet(items ...[]byte) BinarySetValue {
	vals := make([][]byte, len(items))
	copy(vals, items)
	sort.Slice(vals, func(i, j int) bool { return bytes.Compare(vals[i], vals[j]) < 0 })
	out := vals[:0]
	for i, v := range vals {
		if i == 0 || !bytes.Equal(v, vals[i-1]) {
			out = append(out, v)
		}
	}
	return BinarySetValue{Vals: out}
}

func dedupStrings(sorted []string) []string {
	out := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			out = append(out, v)
		}
	}
	return out
}

// --- Composites ---

// ListValue is an ordered, heterogeneous sequence of values.
type ListValue struct {
	// Items are the list members in order.
	Items []Value
}

func (ListValue) exprNode()   {}
func (ListValue) operand()    {}
func (ListValue) valueOrRef() {}
func (ListValue) value()      {}

// List returns a ListValue.
func List(items ...Value) ListValue {
	return ListValue{Items: items}
}

// MapValue is a collection of name/value pairs. Entries are logically
// unordered; rendering sorts keys for determinism.
type MapValue struct {
	// Entries maps attribute names to their values.
	Entries map[string]Value
}

func (MapValue) exprNode()   {}
func (MapValue) operand()    {}
func (MapValue) valueOrRef() {}
func (MapValue) value()      {}

// Map returns a MapValue over the given entries. The map is used as-is, so
// callers should not mutate it afterwards.
func Map(entries map[string]Value) MapValue {
	return MapValue{Entries: entries}
}

// --- References ---

// Ref names an expression attribute value placeholder the caller has already
// declared, rendered as ":name". Refs pass through the expression builder
// untouched instead of being interned.
type Ref struct {
	// Name is the placeholder name without the leading colon.
	Name string
}

func (Ref) exprNode()   {}
func (Ref) operand()    {}
func (Ref) valueOrRef() {}

// ValueRef returns a Ref for the given placeholder name.
func ValueRef(name string) Ref {
	return Ref{Name: name}
}
