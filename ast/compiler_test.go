package ast

import (
	"errors"
	"testing"
)

func compile(t *testing.T, node ExprNode) string {
	t.Helper()
	c := &Compiler{}
	got, err := c.Compile(node)
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}
	return got
}

func TestCompileComparison(t *testing.T) {
	a := NewPath("a")
	b := NewPath("b")

	cases := []struct {
		cond Condition
		want string
	}{
		{a.Equal(b), "a = b"},
		{a.NotEqual(b), "a <> b"},
		{a.LessThan(b), "a < b"},
		{a.LessThanOrEqual(b), "a <= b"},
		{a.GreaterThan(b), "a > b"},
		{a.GreaterThanOrEqual(b), "a >= b"},
	}
	for _, tc := range cases {
		if got := compile(t, tc.cond); got != tc.want {
			t.Errorf("want %q, got %q", tc.want, got)
		}
	}
}

func TestCompileAndOr(t *testing.T) {
	a := NewPath("a").GreaterThan(NewPath("b"))
	b := NewPath("c").LessThan(NewPath("d"))

	if got := compile(t, And{Left: a, Right: b}); got != "a > b AND c < d" {
		t.Errorf("got %q", got)
	}
	if got := compile(t, Or{Left: a, Right: b}); got != "a > b OR c < d" {
		t.Errorf("got %q", got)
	}

	// AND chains nest as binary trees and render flat.
	chained := AndAll(a, b, NewPath("e").Equal(Num(1)))
	if got := compile(t, chained); got != "a > b AND c < d AND e = 1" {
		t.Errorf("got %q", got)
	}
}

func TestCompileNotAndParenthesesNeverCollapse(t *testing.T) {
	cmp := NewPath("a").GreaterThan(NewPath("b"))

	if got := compile(t, Negate(cmp)); got != "NOT a > b" {
		t.Errorf("got %q", got)
	}
	if got := compile(t, Negate(Negate(cmp))); got != "NOT NOT a > b" {
		t.Errorf("double NOT must not collapse, got %q", got)
	}

	wrapped := Condition(cmp)
	for i := 0; i < 3; i++ {
		wrapped = Group(wrapped)
	}
	if got := compile(t, wrapped); got != "(((a > b)))" {
		t.Errorf("nested parentheses must render verbatim, got %q", got)
	}

	mixed := Group(Group(Group(Negate(Group(Group(Group(cmp)))))))
	if got := compile(t, mixed); got != "(((NOT (((a > b))))))" {
		t.Errorf("got %q", got)
	}
}

func TestCompileBetween(t *testing.T) {
	cond := NewPath("age").Between(Num(10), Num(90))
	if got := compile(t, cond); got != "age BETWEEN 10 AND 90" {
		t.Errorf("got %q", got)
	}

	// size(path) works as a BETWEEN operand.
	cond = Between{Op: NewPath("doc").Size(), Lower: Num(1), Upper: Num(512)}
	if got := compile(t, cond); got != "size(doc) BETWEEN 1 AND 512" {
		t.Errorf("got %q", got)
	}
}

func TestCompileIn(t *testing.T) {
	cond, err := NewPath("name").In(Str("Jack"), Str("Jill"))
	if err != nil {
		t.Fatalf("in error: %v", err)
	}
	if got := compile(t, cond); got != `name IN ("Jack","Jill")` {
		t.Errorf("got %q", got)
	}
}

func TestInArity(t *testing.T) {
	items := make([]Operand, 0, 101)
	for i := 0; i < 101; i++ {
		items = append(items, Num(i))
	}

	// 1 and 100 items succeed.
	if _, err := NewPath("n").In(items[:1]...); err != nil {
		t.Errorf("1 item: unexpected error %v", err)
	}
	if _, err := NewPath("n").In(items[:100]...); err != nil {
		t.Errorf("100 items: unexpected error %v", err)
	}

	// 0 and 101 items fail with a ListSizeError carrying the items back.
	var sizeErr *ListSizeError
	if _, err := NewPath("n").In(); !errors.As(err, &sizeErr) {
		t.Fatalf("0 items: want ListSizeError, got %v", err)
	}
	if len(sizeErr.Items) != 0 {
		t.Errorf("rejected items: want 0, got %d", len(sizeErr.Items))
	}
	if _, err := NewPath("n").In(items...); !errors.As(err, &sizeErr) {
		t.Fatalf("101 items: want ListSizeError, got %v", err)
	}
	if len(sizeErr.Items) != 101 {
		t.Errorf("rejected items: want 101, got %d", len(sizeErr.Items))
	}

	// The struct literal is intentionally unchecked.
	raw := In{Op: NewPath("n"), Items: items}
	if got := compile(t, raw); got == "" {
		t.Error("unchecked IN should still render")
	}
}

func TestCompileFunctions(t *testing.T) {
	if got := compile(t, NewPath("foo").AttributeExists()); got != "attribute_exists(foo)" {
		t.Errorf("got %q", got)
	}
	if got := compile(t, NewPath("foo").AttributeNotExists()); got != "attribute_not_exists(foo)" {
		t.Errorf("got %q", got)
	}
	if got := compile(t, NewPath("foo").AttributeType(TypeString)); got != "attribute_type(foo, S)" {
		t.Errorf("got %q", got)
	}

	indexed := PathOf(IndexedElement("foo", 3))
	if got := compile(t, indexed.BeginsWith(Str("foo"))); got != `begins_with(foo[3], "foo")` {
		t.Errorf("got %q", got)
	}
	if got := compile(t, NewPath("foo").BeginsWith(ValueRef("prefix"))); got != "begins_with(foo, :prefix)" {
		t.Errorf("got %q", got)
	}

	if got := compile(t, NewPath("foo").Contains(Str("Quinn"))); got != `contains(foo, "Quinn")` {
		t.Errorf("got %q", got)
	}
	if got := compile(t, NewPath("foo").Contains(Num(42))); got != "contains(foo, 42)" {
		t.Errorf("got %q", got)
	}
	if got := compile(t, NewPath("foo").Contains(Binary([]byte("fish")))); got != `contains(foo, "ZmlzaA==")` {
		t.Errorf("got %q", got)
	}
}

func TestCompileSizeComparison(t *testing.T) {
	cond := Comparison{Left: NewPath("tags").Size(), Cmp: Ge, Right: Num(3)}
	if got := compile(t, cond); got != "size(tags) >= 3" {
		t.Errorf("got %q", got)
	}
}

func TestCompileConditionAsOperand(t *testing.T) {
	inner := NewPath("a").Equal(Num(1))
	cond := Comparison{Left: Parenthetical{Condition: inner}, Cmp: Eq, Right: Bool(true)}
	if got := compile(t, cond); got != "(a = 1) = true" {
		t.Errorf("got %q", got)
	}
}

func TestCompileKeyCondition(t *testing.T) {
	kc := NewPath("id").Key().Equal(Num(42)).
		And(NewPath("category").Key().BeginsWith(Str("hardware.")))
	want := `id = 42 AND begins_with(category, "hardware.")`
	if got := compile(t, kc); got != want {
		t.Errorf("want %q, got %q", want, got)
	}

	kc = NewPath("age").Key().Between(Num(10), Num(90))
	if got := compile(t, kc); got != "age BETWEEN 10 AND 90" {
		t.Errorf("got %q", got)
	}
}

func TestCompileUnknownNode(t *testing.T) {
	c := &Compiler{}
	if _, err := c.Compile(nil); err == nil {
		t.Fatal("want error for unknown node")
	}
}
