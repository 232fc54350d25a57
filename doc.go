// Package dynexpr builds DynamoDB expressions from typed syntax trees.
//
// Conditions, key conditions, update actions, filters, and projections are
// composed as values from the ast package, then handed to an expr.Builder,
// which interns every literal attribute name and value into the placeholder
// tables DynamoDB expects and renders the final expression strings.
//
// The module is organized into three packages:
//
//   - [github.com/CaliLuke/go-dynexpr/ast] — expression nodes, values, document paths, and the compiler
//   - [github.com/CaliLuke/go-dynexpr/expr] — the Builder, placeholder interning, and snapshots
//   - [github.com/CaliLuke/go-dynexpr/dynamo] — adapters for the AWS SDK for Go v2 input structs
//
// The ast and expr packages have no AWS dependency; only dynamo imports the
// SDK.
package dynexpr
