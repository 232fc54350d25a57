package expr

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/CaliLuke/go-dynexpr/ast"
)

// Snapshot codec. A built Expression is plain data, so it can be serialized
// once and reused across processes, typically to cache a prepared
// expression alongside the request it parameterizes.

// snapshot is the wire form of an Expression.
type snapshot struct {
	Condition    string               `msgpack:"c,omitempty"`
	KeyCondition string               `msgpack:"kc,omitempty"`
	Update       string               `msgpack:"u,omitempty"`
	Filter       string               `msgpack:"f,omitempty"`
	Projection   string               `msgpack:"p,omitempty"`
	Names        map[string]string    `msgpack:"n,omitempty"`
	Values       map[string]wireValue `msgpack:"v,omitempty"`
}

// wireValue is the tagged wire form of an ast.Value. Kind selects which
// payload field is meaningful.
type wireValue struct {
	Kind string               `msgpack:"k"`
	Str  string               `msgpack:"s,omitempty"`
	Num  string               `msgpack:"n,omitempty"`
	Bool bool                 `msgpack:"t,omitempty"`
	Bin  []byte               `msgpack:"b,omitempty"`
	SS   []string             `msgpack:"ss,omitempty"`
	NS   []string             `msgpack:"ns,omitempty"`
	BS   [][]byte             `msgpack:"bs,omitempty"`
	List []wireValue          `msgpack:"l,omitempty"`
	Map  map[string]wireValue `msgpack:"m,omitempty"`
}

// EncodeSnapshot serializes a built Expression to msgpack.
func EncodeSnapshot(e Expression) ([]byte, error) {
	snap := snapshot{
		Condition:    e.Condition,
		KeyCondition: e.KeyCondition,
		Update:       e.Update,
		Filter:       e.Filter,
		Projection:   e.Projection,
		Names:        e.Names,
	}
	if len(e.Values) > 0 {
		snap.Values = make(map[string]wireValue, len(e.Values))
		for ph, v := range e.Values {
			w, err := toWire(v)
			if err != nil {
				return nil, err
			}
			snap.Values[ph] = w
		}
	}

	data, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot deserializes an Expression previously written by
// EncodeSnapshot.
func DecodeSnapshot(data []byte) (Expression, error) {
	var snap snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Expression{}, fmt.Errorf("decode snapshot: %w", err)
	}

	e := Expression{
		Condition:    snap.Condition,
		KeyCondition: snap.KeyCondition,
		Update:       snap.Update,
		Filter:       snap.Filter,
		Projection:   snap.Projection,
		Names:        snap.Names,
	}
	if len(snap.Values) > 0 {
		e.Values = make(map[string]ast.Value, len(snap.Values))
		for ph, w := range snap.Values {
			v, err := fromWire(w)
			if err != nil {
				return Expression{}, err
			}
			e.Values[ph] = v
		}
	}

	return e, nil
}

func toWire(v ast.Value) (wireValue, error) {
	switch val := v.(type) {
	case ast.StringValue:
		return wireValue{Kind: "S", Str: val.Val}, nil
	case ast.NumValue:
		return wireValue{Kind: "N", Num: val.N}, nil
	case ast.BoolValue:
		return wireValue{Kind: "BOOL", Bool: val.Val}, nil
	case ast.BinaryValue:
		return wireValue{Kind: "B", Bin: val.Val}, nil
	case ast.NullValue:
		return wireValue{Kind: "NULL"}, nil
	case ast.StringSetValue:
		return wireValue{Kind: "SS", SS: val.Vals}, nil
	case ast.NumSetValue:
		return wireValue{Kind: "NS", NS: val.Vals}, nil
	case ast.BinarySetValue:
		return wireValue{Kind: "BS", BS: val.Vals}, nil
	case ast.ListValue:
		items := make([]wireValue, 0, len(val.Items))
		for _, item := range val.Items {
			w, err := toWire(item)
			if err != nil {
				return wireValue{}, err
			}
			items = append(items, w)
		}
		return wireValue{Kind: "L", List: items}, nil
	case ast.MapValue:
		entries := make(map[string]wireValue, len(val.Entries))
		for k, item := range val.Entries {
			w, err := toWire(item)
			if err != nil {
				return wireValue{}, err
			}
			entries[k] = w
		}
		return wireValue{Kind: "M", Map: entries}, nil
	default:
		return wireValue{}, fmt.Errorf("unknown value type: %T", v)
	}
}

func fromWire(w wireValue) (ast.Value, error) {
	switch w.Kind {
	case "S":
		return ast.StringValue{Val: w.Str}, nil
	case "N":
		return ast.NumValue{N: w.Num}, nil
	case "BOOL":
		return ast.BoolValue{Val: w.Bool}, nil
	case "B":
		return ast.BinaryValue{Val: w.Bin}, nil
	case "NULL":
		return ast.NullValue{}, nil
	case "SS":
		return ast.StringSetValue{Vals: w.SS}, nil
	case "NS":
		return ast.NumSetValue{Vals: w.NS}, nil
	case "BS":
		return ast.BinarySetValue{Vals: w.BS}, nil
	case "L":
		items := make([]ast.Value, 0, len(w.List))
		for _, item := range w.List {
			v, err := fromWire(item)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return ast.ListValue{Items: items}, nil
	case "M":
		entries := make(map[string]ast.Value, len(w.Map))
		for k, item := range w.Map {
			v, err := fromWire(item)
			if err != nil {
				return nil, err
			}
			entries[k] = v
		}
		return ast.MapValue{Entries: entries}, nil
	default:
		return nil, fmt.Errorf("unknown wire value kind: %q", w.Kind)
	}
}
