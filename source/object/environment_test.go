package object

import "testing"

func TestScopesShadowAndRestore(t *testing.T) {
	env := NewEnvironment()
	env.Insert("x", &Number{1})
	env.PushScope()
	env.Insert("x", &Number{2})
	if v, _ := env.Get("x"); !Equals(v, &Number{2}) {
		t.Fatalf("inner scope should shadow, got %s", v.Inspect(ViewLiteral))
	}
	env.PopScope()
	if v, _ := env.Get("x"); !Equals(v, &Number{1}) {
		t.Fatalf("outer binding should be restored, got %s", v.Inspect(ViewLiteral))
	}
	env.PopScope()
	if env.Depth() != 1 {
		t.Fatalf("the global scope should never be popped")
	}
}

func TestSetMutatesNearestBinding(t *testing.T) {
	env := NewEnvironment()
	env.Insert("x", &Number{1})
	env.PushScope()
	if !env.Set("x", &Number{5}) {
		t.Fatalf("Set should find the outer binding")
	}
	env.PopScope()
	if v, _ := env.Get("x"); !Equals(v, &Number{5}) {
		t.Fatalf("wanted 5, got %s", v.Inspect(ViewLiteral))
	}
	if env.Set("y", &Number{1}) {
		t.Fatalf("Set should not create bindings")
	}
}

func TestWithScopePopsOnEveryPath(t *testing.T) {
	env := NewEnvironment()
	result := env.WithScope(func() Expression {
		env.Insert("tmp", TRUE)
		return NewUndefined("tmp")
	})
	if !IsError(result) || env.Depth() != 1 {
		t.Fatalf("scope leaked: depth %d", env.Depth())
	}
	if _, ok := env.Get("tmp"); ok {
		t.Fatalf("binding leaked out of scope")
	}
}

func TestStructIdsAreDistinct(t *testing.T) {
	env := NewEnvironment()
	a := env.NewStructId()
	env.PushScope()
	b := env.NewStructId()
	env.PopScope()
	c := env.NewStructId()
	if a == b || a == c || b == c {
		t.Fatalf("struct ids should never be reused: %d %d %d", a, b, c)
	}
}
