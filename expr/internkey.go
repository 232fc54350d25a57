package expr

import (
	"encoding/base64"
	"sort"
	"strings"

	"github.com/CaliLuke/go-dynexpr/ast"
)

// internKey derives a map key for a literal value such that two values get
// the same key exactly when they are structurally equal. The key is the
// value's canonical rendering prefixed with its type tag at every level, so
// a string "YQ==" and the binary bytes "a" (which render identically) still
// intern separately.
func internKey(v ast.Value) string {
	var sb strings.Builder
	writeInternKey(&sb, v)
	return sb.String()
}

func writeInternKey(sb *strings.Builder, v ast.Value) {
	switch val := v.(type) {
	case ast.StringValue:
		sb.WriteString("S:")
		sb.WriteString(val.Val)

	case ast.NumValue:
		sb.WriteString("N:")
		sb.WriteString(val.N)

	case ast.BoolValue:
		if val.Val {
			sb.WriteString("BOOL:1")
		} else {
			sb.WriteString("BOOL:0")
		}

	case ast.BinaryValue:
		sb.WriteString("B:")
		sb.WriteString(base64.StdEncoding.EncodeToString(val.Val))

	case ast.NullValue:
		sb.WriteString("NULL")

	case ast.StringSetValue:
		sb.WriteString("SS:")
		for i, s := range val.Vals {
			if i > 0 {
				sb.WriteByte(0)
			}
			sb.WriteString(s)
		}

	case ast.NumSetValue:
		sb.WriteString("NS:")
		for i, s := range val.Vals {
			if i > 0 {
				sb.WriteByte(0)
			}
			sb.WriteString(s)
		}

	case ast.BinarySetValue:
		sb.WriteString("BS:")
		for i, bts := range val.Vals {
			if i > 0 {
				sb.WriteByte(0)
			}
			sb.WriteString(base64.StdEncoding.EncodeToString(bts))
		}

	case ast.ListValue:
		sb.WriteString("L[")
		for i, item := range val.Items {
			if i > 0 {
				sb.WriteByte(0)
			}
			writeInternKey(sb, item)
		}
		sb.WriteByte(']')

	case ast.MapValue:
		keys := make([]string, 0, len(val.Entries))
		for k := range val.Entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteString("M{")
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(0)
			}
			sb.WriteString(k)
			sb.WriteByte('=')
			writeInternKey(sb, val.Entries[k])
		}
		sb.WriteByte('}')
	}
}
