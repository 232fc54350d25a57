package ast

import "fmt"

// PathError is returned when textual path parsing fails: malformed bracket
// syntax, a non-numeric or out-of-range index, or trailing text after an
// index group.
type PathError struct {
	// Input is the path text that failed to parse.
	Input string
	// Err is the underlying parse error.
	Err error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("parse path %q: %v", e.Input, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// ListSizeError is returned by the checked IN constructor when the item
// list is empty or exceeds 100 items. It carries the rejected items so the
// caller can split or report them.
type ListSizeError struct {
	// Items is the rejected operand list.
	Items []Operand
}

func (e *ListSizeError) Error() string {
	return fmt.Sprintf("IN requires 1 to %d operands, got %d", maxInItems, len(e.Items))
}
