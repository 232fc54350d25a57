package ast

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Textual path parser. Accepts dot-joined elements where each element is an
// attribute name optionally followed by bracketed list indexes, e.g.
// "foo.bar[3][1]". Attribute names may contain any characters other than
// '.', '[' and ']'.

var pathLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Punct", Pattern: `[.\[\]]`},
	{Name: "Name", Pattern: `[^.\[\]]+`},
})

type pathGrammar struct {
	First elementGrammar   `parser:"@@"`
	Rest  []elementGrammar `parser:"( '.' @@ )*"`
}

type elementGrammar struct {
	Name    string  `parser:"@Name"`
	Indexes []index `parser:"( '[' @Name ']' )*"`
}

// index validates bracket contents while capturing: anything that does not
// parse as a non-negative 32-bit integer is a parse error.
type index uint32

func (i *index) Capture(values []string) error {
	n, err := strconv.ParseUint(values[0], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid index %q", values[0])
	}
	*i = index(n)
	return nil
}

var pathParser = participle.MustBuild[pathGrammar](
	participle.Lexer(pathLexer),
	participle.UseLookahead(2),
)

// ParsePath parses a textual document path. Malformed input (unbalanced or
// empty brackets, empty elements, non-numeric indexes, text directly after
// a closing bracket) fails with a *PathError.
func ParsePath(s string) (Path, error) {
	parsed, err := pathParser.ParseString("", s)
	if err != nil {
		return Path{}, &PathError{Input: s, Err: err}
	}

	elements := make([]Element, 0, 1+len(parsed.Rest))
	for _, eg := range append([]elementGrammar{parsed.First}, parsed.Rest...) {
		elem := Element{Name: eg.Name}
		// An element without indexes normalizes to a bare name.
		if len(eg.Indexes) > 0 {
			elem.Indexes = make([]uint32, 0, len(eg.Indexes))
			for _, idx := range eg.Indexes {
				elem.Indexes = append(elem.Indexes, uint32(idx))
			}
		}
		elements = append(elements, elem)
	}

	return Path{Elements: elements}, nil
}

// MustParsePath is ParsePath for statically known inputs; it panics on
// malformed paths.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}
