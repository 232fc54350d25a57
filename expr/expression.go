// Package expr assembles DynamoDB expression strings and their attribute
// name/value substitution tables from ast trees.
//
// A Builder owns up to five expression slots (condition, key condition,
// update, filter, projection) and a single interner shared by all of them.
// Attaching a tree rewrites it immediately: every literal attribute name
// becomes a "#N" placeholder and every literal value a ":N" placeholder,
// assigned in first-occurrence order and deduplicated structurally across
// all slots. Build renders the rewritten trees and hands out the completed
// placeholder tables.
package expr

import "github.com/CaliLuke/go-dynexpr/ast"

// Expression is the rendered output of a Builder: up to five expression
// strings plus the two placeholder tables they refer to.
//
// A slot that was never attached is the empty string, and a table with no
// entries is nil, mirroring DynamoDB's rejection of empty attribute
// name/value maps. Once built, an Expression is plain immutable data and
// safe to share between goroutines.
type Expression struct {
	// Condition is the condition expression, or "" if unset.
	Condition string
	// KeyCondition is the key condition expression, or "" if unset.
	KeyCondition string
	// Update is the update expression, or "" if unset.
	Update string
	// Filter is the filter expression, or "" if unset.
	Filter string
	// Projection is the comma-joined projection expression, or "" if unset.
	Projection string
	// Names maps "#N" placeholders to the attribute names they stand for.
	// Nil when no names were interned.
	Names map[string]string
	// Values maps ":N" placeholders to the literal values they stand for.
	// Nil when no values were interned.
	Values map[string]ast.Value
}
