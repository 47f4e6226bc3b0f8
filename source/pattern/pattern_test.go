package pattern

import (
	"testing"

	"github.com/rlisp-lang/rlisp/source/object"
)

func sym(s string) *object.Symbol { return &object.Symbol{Name: s} }
func num(f float64) *object.Number { return &object.Number{Value: f} }

func TestMatch(t *testing.T) {
	pattern := object.MakeList(sym("swap"), sym("a"), object.MakeList(sym("b"), num(1)))
	input := object.MakeList(sym("swap"), sym("x"), object.MakeList(object.MakeList(sym("+"), num(2), num(3)), num(1)))
	matches, err := Match([]string{"swap"}, pattern, input)
	if err != nil {
		t.Fatalf("unexpected error %s", err.Inspect(object.ViewLiteral))
	}
	if len(matches) != 2 {
		t.Fatalf("wanted 2 matches, got %d", len(matches))
	}
	if got := matches["a"].Inspect(object.ViewLiteral); got != "x" {
		t.Fatalf("a bound to %s", got)
	}
	if got := matches["b"].Inspect(object.ViewLiteral); got != "(+ 2 3)" {
		t.Fatalf("b bound to %s", got)
	}
	if _, ok := matches["swap"]; ok {
		t.Fatalf("keywords should not be bound")
	}
}

func TestMatchFailures(t *testing.T) {
	tests := []struct {
		pattern, input object.Expression
		want           string
	}{
		{object.MakeList(sym("m"), sym("a")), object.MakeList(sym("m"), num(1), num(2)),
			"error[042]: pattern match failure: expected `(m a)`, found `(m 1 2)`"},
		{object.MakeList(sym("m"), num(1)), object.MakeList(sym("m"), num(2)),
			"error[042]: pattern match failure: expected `1`, found `2`"},
		{object.MakeList(sym("m"), object.MakeList(sym("a"))), object.MakeList(sym("m"), num(2)),
			"error[042]: pattern match failure: expected `(a)`, found `2`"},
		{object.MakeList(sym("m"), sym("a")), object.MakeList(sym("n"), num(2)),
			"error[042]: pattern match failure: expected `m`, found `n`"},
	}
	for i, tt := range tests {
		_, err := Match([]string{"m"}, tt.pattern, tt.input)
		if err == nil {
			t.Fatalf("tests[%d] - expected a failure", i)
		}
		if got := err.Inspect(object.ViewLiteral); got != tt.want {
			t.Fatalf("tests[%d] - wanted %s, got %s", i, tt.want, got)
		}
	}
}

func TestReplaceSymbolsIsSinglePass(t *testing.T) {
	body := object.MakeList(sym("list"), sym("a"), sym("b"))
	matches := Matches{"a": sym("b"), "b": num(2)}
	got := ReplaceSymbols(body, matches).Inspect(object.ViewLiteral)
	if got != "(list b 2)" {
		t.Fatalf("wanted (list b 2), got %s", got)
	}
}

func TestExtractSymbols(t *testing.T) {
	body := object.MakeList(sym("+"), sym("x"), object.MakeList(sym("*"), sym("y"), sym("x")), num(3))
	got := ExtractSymbols([]string{"y"}, body)
	want := []string{"+", "x", "*"}
	if len(got) != len(want) {
		t.Fatalf("wanted %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("wanted %v, got %v", want, got)
		}
	}
}
