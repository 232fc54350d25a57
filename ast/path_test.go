package ast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	cases := []struct {
		input string
		want  Path
	}{
		{"foo", NewPath("foo")},
		{"foo.bar", PathOf(NameElement("foo"), NameElement("bar"))},
		{"foo[3]", PathOf(IndexedElement("foo", 3))},
		{"foo[3][1]", PathOf(IndexedElement("foo", 3, 1))},
		{"foo.bar[3][1].baz", PathOf(
			NameElement("foo"),
			IndexedElement("bar", 3, 1),
			NameElement("baz"),
		)},
		// Attribute names are not restricted to identifier characters.
		{"with space", NewPath("with space")},
		{"123", NewPath("123")},
	}
	for _, tc := range cases {
		got, err := ParsePath(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestParsePathErrors(t *testing.T) {
	inputs := []string{
		"",
		"[0]",
		"foo[",
		"foo]",
		"foo[]",
		"foo][",
		"foo[0",
		"foo[0]bar",
		"foo[a]",
		"foo[-1]",
		"foo..bar",
		"foo.",
		".foo",
		"foo[4294967296]", // one past the largest 32-bit index
	}
	for _, input := range inputs {
		_, err := ParsePath(input)
		require.Error(t, err, "input %q", input)

		var pathErr *PathError
		require.ErrorAs(t, err, &pathErr, "input %q", input)
		assert.Equal(t, input, pathErr.Input)
	}
}

func TestPathRoundTrip(t *testing.T) {
	// Display then re-parse reproduces an equal path.
	inputs := []string{"foo", "foo.bar", "foo[3][1]", "foo.bar[3][1].baz"}
	for _, input := range inputs {
		parsed, err := ParsePath(input)
		require.NoError(t, err)
		assert.Equal(t, input, parsed.String())

		again, err := ParsePath(parsed.String())
		require.NoError(t, err)
		assert.Equal(t, parsed, again)
	}
}

func TestIndexedElementNormalizesToBareName(t *testing.T) {
	assert.Equal(t, NameElement("foo"), IndexedElement("foo"))
	assert.Equal(t, "foo", IndexedElement("foo").String())
}

func TestPathAppendConcat(t *testing.T) {
	base := NewPath("foo")
	appended := base.Append(IndexedElement("bar", 2))
	assert.Equal(t, "foo.bar[2]", appended.String())
	assert.Equal(t, "foo", base.String(), "Append must not modify the receiver")

	joined := base.Concat(MustParsePath("bar.baz[0]"))
	assert.Equal(t, "foo.bar.baz[0]", joined.String())
}

func TestMustParsePathPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		var pathErr *PathError
		assert.True(t, errors.As(err, &pathErr))
	}()
	MustParsePath("foo[")
}
