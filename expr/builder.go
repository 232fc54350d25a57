package expr

import (
	"fmt"
	"strconv"

	"github.com/CaliLuke/go-dynexpr/ast"
)

// Builder accumulates expression slots and interns the literal names and
// values inside them. The zero value is not usable; call NewBuilder.
//
// A Builder is single-goroutine state: the interner mutates as slots are
// attached. Each With* call overwrites its own slot (last write wins) but
// placeholders already assigned are never withdrawn, so the tables grow
// monotonically.
type Builder struct {
	condition    ast.Condition
	keyCondition *ast.KeyCondition
	update       *ast.Update
	filter       ast.Condition
	projection   []string

	names     map[string]string    // attribute name -> "#N"
	values    map[string]string    // structural value key -> ":N"
	valueByPH map[string]ast.Value // ":N" -> original literal

	err error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		names:     make(map[string]string),
		values:    make(map[string]string),
		valueByPH: make(map[string]ast.Value),
	}
}

// WithCondition attaches the condition expression, interning its names and
// values. Any previously attached condition is replaced.
func (b *Builder) WithCondition(cond ast.Condition) *Builder {
	processed, err := b.processCondition(cond)
	if err != nil {
		b.fail(err)
		return b
	}
	b.condition = processed
	return b
}

// WithKeyCondition attaches the key condition expression, interning its
// names and values. Any previously attached key condition is replaced.
func (b *Builder) WithKeyCondition(kc ast.KeyCondition) *Builder {
	processed, err := b.processCondition(kc.Condition)
	if err != nil {
		b.fail(err)
		return b
	}
	b.keyCondition = &ast.KeyCondition{Condition: processed}
	return b
}

// WithUpdate attaches the update expression, interning its names and
// values. Any previously attached update is replaced.
func (b *Builder) WithUpdate(update ast.Update) *Builder {
	processed, err := b.processUpdate(update)
	if err != nil {
		b.fail(err)
		return b
	}
	b.update = &processed
	return b
}

// WithFilter attaches the filter expression, interning its names and
// values. Any previously attached filter is replaced.
func (b *Builder) WithFilter(filter ast.Condition) *Builder {
	processed, err := b.processCondition(filter)
	if err != nil {
		b.fail(err)
		return b
	}
	b.filter = processed
	return b
}

// WithProjection attaches the projection: the attribute names to return,
// each interned like any other name. An empty list leaves the projection
// absent, since DynamoDB rejects an empty projection expression. Any
// previously attached projection is replaced.
func (b *Builder) WithProjection(names ...string) *Builder {
	if len(names) == 0 {
		b.projection = nil
		return b
	}
	placeholders := make([]string, 0, len(names))
	for _, name := range names {
		placeholders = append(placeholders, b.internName(name))
	}
	b.projection = placeholders
	return b
}

// Build renders the attached slots and returns the Expression. Slots never
// attached come back as empty strings; tables with no entries come back
// nil. The only error source is a foreign AST node reaching the compiler.
func (b *Builder) Build() (Expression, error) {
	if b.err != nil {
		return Expression{}, b.err
	}

	c := &ast.Compiler{}
	var e Expression
	var err error

	if b.condition != nil {
		if e.Condition, err = c.Condition(b.condition); err != nil {
			return Expression{}, err
		}
	}
	if b.keyCondition != nil {
		if e.KeyCondition, err = c.KeyCondition(*b.keyCondition); err != nil {
			return Expression{}, err
		}
	}
	if b.update != nil {
		if e.Update, err = c.Update(*b.update); err != nil {
			return Expression{}, err
		}
	}
	if b.filter != nil {
		if e.Filter, err = c.Condition(b.filter); err != nil {
			return Expression{}, err
		}
	}
	for i, ph := range b.projection {
		if i > 0 {
			e.Projection += ", "
		}
		e.Projection += ph
	}

	if len(b.names) > 0 {
		e.Names = make(map[string]string, len(b.names))
		for name, ph := range b.names {
			e.Names[ph] = name
		}
	}
	if len(b.valueByPH) > 0 {
		e.Values = make(map[string]ast.Value, len(b.valueByPH))
		for ph, v := range b.valueByPH {
			e.Values[ph] = v
		}
	}

	return e, nil
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// --- Interning walk ---
//
// Each process method returns a rewritten copy of its input with every
// attribute name and literal value replaced by a placeholder. Inputs are
// never mutated. The walk is total over the ast package's node set; only a
// node from outside it produces an error.

func (b *Builder) processCondition(cond ast.Condition) (ast.Condition, error) {
	switch cn := cond.(type) {
	case ast.AttributeExists:
		return ast.AttributeExists{Path: b.processPath(cn.Path)}, nil

	case ast.AttributeNotExists:
		return ast.AttributeNotExists{Path: b.processPath(cn.Path)}, nil

	case ast.AttributeType:
		return ast.AttributeType{Path: b.processPath(cn.Path), Type: cn.Type}, nil

	case ast.BeginsWith:
		return ast.BeginsWith{Path: b.processPath(cn.Path), Substr: b.processValue(cn.Substr)}, nil

	case ast.Contains:
		return ast.Contains{Path: b.processPath(cn.Path), Operand: b.processValue(cn.Operand)}, nil

	case ast.Between:
		op, err := b.processOperand(cn.Op)
		if err != nil {
			return nil, err
		}
		lower, err := b.processOperand(cn.Lower)
		if err != nil {
			return nil, err
		}
		upper, err := b.processOperand(cn.Upper)
		if err != nil {
			return nil, err
		}
		return ast.Between{Op: op, Lower: lower, Upper: upper}, nil

	case ast.In:
		op, err := b.processOperand(cn.Op)
		if err != nil {
			return nil, err
		}
		items := make([]ast.Operand, 0, len(cn.Items))
		for _, item := range cn.Items {
			processed, err := b.processOperand(item)
			if err != nil {
				return nil, err
			}
			items = append(items, processed)
		}
		return ast.In{Op: op, Items: items}, nil

	case ast.Comparison:
		left, err := b.processOperand(cn.Left)
		if err != nil {
			return nil, err
		}
		right, err := b.processOperand(cn.Right)
		if err != nil {
			return nil, err
		}
		return ast.Comparison{Left: left, Cmp: cn.Cmp, Right: right}, nil

	case ast.And:
		left, err := b.processCondition(cn.Left)
		if err != nil {
			return nil, err
		}
		right, err := b.processCondition(cn.Right)
		if err != nil {
			return nil, err
		}
		return ast.And{Left: left, Right: right}, nil

	case ast.Or:
		left, err := b.processCondition(cn.Left)
		if err != nil {
			return nil, err
		}
		right, err := b.processCondition(cn.Right)
		if err != nil {
			return nil, err
		}
		return ast.Or{Left: left, Right: right}, nil

	case ast.Not:
		inner, err := b.processCondition(cn.Condition)
		if err != nil {
			return nil, err
		}
		return ast.Not{Condition: inner}, nil

	case ast.Parenthetical:
		inner, err := b.processCondition(cn.Condition)
		if err != nil {
			return nil, err
		}
		return ast.Parenthetical{Condition: inner}, nil

	default:
		return nil, fmt.Errorf("unknown condition type: %T", cond)
	}
}

func (b *Builder) processOperand(op ast.Operand) (ast.Operand, error) {
	switch on := op.(type) {
	case ast.Path:
		return b.processPath(on), nil
	case ast.Size:
		return ast.Size{Path: b.processPath(on.Path)}, nil
	case ast.ValueOrRef:
		return b.processValue(on), nil
	case ast.Condition:
		return b.processCondition(on)
	default:
		return nil, fmt.Errorf("unknown operand type: %T", op)
	}
}

func (b *Builder) processUpdate(update ast.Update) (ast.Update, error) {
	var out ast.Update

	if len(update.Set) > 0 {
		out.Set = make([]ast.SetAction, 0, len(update.Set))
		for _, action := range update.Set {
			processed, err := b.processSetAction(action)
			if err != nil {
				return ast.Update{}, err
			}
			out.Set = append(out.Set, processed)
		}
	}
	if len(update.Remove) > 0 {
		out.Remove = make([]ast.Path, 0, len(update.Remove))
		for _, p := range update.Remove {
			out.Remove = append(out.Remove, b.processPath(p))
		}
	}
	if len(update.Add) > 0 {
		out.Add = make([]ast.AddAction, 0, len(update.Add))
		for _, action := range update.Add {
			out.Add = append(out.Add, ast.AddAction{
				Path:  b.processPath(action.Path),
				Value: b.processValue(action.Value),
			})
		}
	}
	if len(update.Delete) > 0 {
		out.Delete = make([]ast.DeleteAction, 0, len(update.Delete))
		for _, action := range update.Delete {
			out.Delete = append(out.Delete, ast.DeleteAction{
				Path:   b.processPath(action.Path),
				Subset: b.processValue(action.Subset),
			})
		}
	}

	return out, nil
}

func (b *Builder) processSetAction(action ast.SetAction) (ast.SetAction, error) {
	switch a := action.(type) {
	case ast.Assign:
		return ast.Assign{Path: b.processPath(a.Path), Value: b.processValue(a.Value)}, nil

	case ast.Math:
		return ast.Math{
			Dst: b.processPath(a.Dst),
			Src: b.processOptionalPath(a.Src),
			Op:  a.Op,
			Num: b.processValue(a.Num),
		}, nil

	case ast.ListAppend:
		return ast.ListAppend{
			Dst:    b.processPath(a.Dst),
			Src:    b.processOptionalPath(a.Src),
			List:   b.processValue(a.List),
			Before: a.Before,
		}, nil

	case ast.IfNotExists:
		return ast.IfNotExists{
			Dst:   b.processPath(a.Dst),
			Src:   b.processOptionalPath(a.Src),
			Value: b.processValue(a.Value),
		}, nil

	default:
		return nil, fmt.Errorf("unknown set action type: %T", action)
	}
}

func (b *Builder) processOptionalPath(p *ast.Path) *ast.Path {
	if p == nil {
		return nil
	}
	processed := b.processPath(*p)
	return &processed
}

// processPath rewrites each element's attribute name to its "#N"
// placeholder, keeping indexes intact.
func (b *Builder) processPath(p ast.Path) ast.Path {
	elements := make([]ast.Element, 0, len(p.Elements))
	for _, elem := range p.Elements {
		elements = append(elements, ast.Element{
			Name:    b.internName(elem.Name),
			Indexes: elem.Indexes,
		})
	}
	return ast.Path{Elements: elements}
}

// processValue interns a literal value, returning its ":N" placeholder as a
// Ref. Caller-supplied Refs pass through untouched; they are assumed
// already declared.
func (b *Builder) processValue(v ast.ValueOrRef) ast.Ref {
	if ref, ok := v.(ast.Ref); ok {
		return ref
	}
	value := v.(ast.Value)

	key := internKey(value)
	if ph, ok := b.values[key]; ok {
		return ast.Ref{Name: ph[1:]}
	}

	n := strconv.Itoa(len(b.values))
	b.values[key] = ":" + n
	b.valueByPH[":"+n] = value
	return ast.Ref{Name: n}
}

// internName returns the "#N" placeholder for an attribute name, assigning
// the next sequential placeholder on first occurrence.
func (b *Builder) internName(name string) string {
	if ph, ok := b.names[name]; ok {
		return ph
	}
	ph := "#" + strconv.Itoa(len(b.names))
	b.names[name] = ph
	return ph
}
