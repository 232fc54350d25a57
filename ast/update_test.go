package ast

import "testing"

func TestCompileAssign(t *testing.T) {
	u := NewPath("foo").Assign(Str("a value"))
	if got := compile(t, u); got != `SET foo = "a value"` {
		t.Errorf("got %q", got)
	}
}

func TestCompileMath(t *testing.T) {
	// Source defaults to the destination.
	u := NewPath("foo").Math().Add(Num(7))
	if got := compile(t, u); got != "SET foo = foo + 7" {
		t.Errorf("got %q", got)
	}

	u = NewPath("foo").Math().Sub(Num(7))
	if got := compile(t, u); got != "SET foo = foo - 7" {
		t.Errorf("got %q", got)
	}

	u = NewPath("foo").Math().Src(NewPath("bar")).Add(Num(1))
	if got := compile(t, u); got != "SET foo = bar + 1" {
		t.Errorf("got %q", got)
	}
}

func TestCompileListAppend(t *testing.T) {
	list := List(Str("a"), Str("b"))

	cases := []struct {
		update Update
		want   string
	}{
		{
			NewPath("foo").ListAppend().Src(NewPath("bar")).After().List(list),
			`foo = list_append(bar, ["a", "b"])`,
		},
		{
			NewPath("foo").ListAppend().Src(NewPath("bar")).List(list),
			`foo = list_append(bar, ["a", "b"])`,
		},
		{
			NewPath("foo").ListAppend().Src(NewPath("bar")).Before().List(list),
			`foo = list_append(["a", "b"], bar)`,
		},
		{
			NewPath("foo").ListAppend().List(list),
			`foo = list_append(foo, ["a", "b"])`,
		},
		{
			NewPath("foo").ListAppend().Before().List(list),
			`foo = list_append(["a", "b"], foo)`,
		},
	}
	for _, tc := range cases {
		if got := compile(t, tc.update); got != "SET "+tc.want {
			t.Errorf("want %q, got %q", "SET "+tc.want, got)
		}
	}
}

func TestCompileIfNotExists(t *testing.T) {
	u := NewPath("foo").IfNotExists().Assign(Str("a value"))
	if got := compile(t, u); got != `SET foo = if_not_exists(foo, "a value")` {
		t.Errorf("got %q", got)
	}

	u = NewPath("foo").IfNotExists().Src(NewPath("bar")).Assign(Num(8))
	if got := compile(t, u); got != "SET foo = if_not_exists(bar, 8)" {
		t.Errorf("got %q", got)
	}
}

func TestCompileRemove(t *testing.T) {
	u := NewPath("foo").Remove()
	if got := compile(t, u); got != "REMOVE foo" {
		t.Errorf("got %q", got)
	}

	u = PathOf(IndexedElement("foo", 8)).Remove()
	if got := compile(t, u); got != "REMOVE foo[8]" {
		t.Errorf("got %q", got)
	}

	u = NewPath("foo").Remove().And(NewPath("bar").Remove()).And(NewPath("baz").Remove())
	if got := compile(t, u); got != "REMOVE foo, bar, baz" {
		t.Errorf("got %q", got)
	}
}

func TestCompileAddDelete(t *testing.T) {
	u := NewPath("foo").Add(Num(1))
	if got := compile(t, u); got != "ADD foo 1" {
		t.Errorf("got %q", got)
	}

	u = NewPath("foo").Add(StringSet("a value", "another value"))
	if got := compile(t, u); got != `ADD foo ["a value", "another value"]` {
		t.Errorf("got %q", got)
	}

	u = NewPath("foo").Delete(StringSet("a value"))
	if got := compile(t, u); got != `DELETE foo ["a value"]` {
		t.Errorf("got %q", got)
	}
}

func TestUpdateAndMergesSections(t *testing.T) {
	// Combining updates appends actions; it never nests.
	u := NewPath("foo").Math().Add(Num(1)).
		And(NewPath("bar").Assign(Num(8))).
		And(NewPath("baz").ListAppend().List(List(Str("d"), Str("e"), Str("f"))))
	want := `SET foo = foo + 1, bar = 8, baz = list_append(baz, ["d", "e", "f"])`
	if got := compile(t, u); got != want {
		t.Errorf("want %q, got %q", want, got)
	}

	// Sections render in SET, REMOVE, ADD, DELETE order no matter the
	// order they were combined in.
	u = NewPath("quux").Remove().
		And(NewPath("foo").Assign(Str("a value"))).
		And(NewPath("count").Add(Num(1))).
		And(NewPath("tags").Delete(StringSet("old")))
	want = `SET foo = "a value" REMOVE quux ADD count 1 DELETE tags ["old"]`
	if got := compile(t, u); got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestCompileEmptyUpdate(t *testing.T) {
	var u Update
	if !u.IsEmpty() {
		t.Fatal("zero update should be empty")
	}
	if got := compile(t, u); got != "" {
		t.Errorf("empty update should render empty, got %q", got)
	}
}

func TestUpdateAndDoesNotMutate(t *testing.T) {
	a := NewPath("foo").Assign(Num(1))
	b := NewPath("bar").Assign(Num(2))
	_ = a.And(b)

	if len(a.Set) != 1 || len(b.Set) != 1 {
		t.Fatal("And must not modify its operands")
	}
}
