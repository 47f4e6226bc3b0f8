package parser

import (
	"testing"

	"github.com/rlisp-lang/rlisp/source/object"
)

func TestParser(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(1 2 3)", "<Cons:[<Num:1>, <Num:2>, <Num:3>]>"},
		{"( 1 2 3 )", "<Cons:[<Num:1>, <Num:2>, <Num:3>]>"},
		{"4.73", "<Num:4.73>"},
		{`"Hello, world!"`, `<Str:"Hello, world!">`},
		{"[a #t false nil]", "<Cons:[<Symbol:a>, <Bool:true>, <Bool:false>, <Cons:[]>]>"},
		{"'x", "<Cons:[quote, <Symbol:x>]>"},
		{"`(1 ,x)", "<Cons:[quasiquote, <Cons:[<Num:1>, <Cons:[unquote, <Symbol:x>]>]>]>"},
		{"{1 + 2 + 3}", "<Cons:[<Symbol:+>, <Num:1>, <Num:2>, <Num:3>]>"},
		{"{x}", "<Symbol:x>"},
		{"{}", "<Cons:[]>"},
		{`#"a"`, `<Cons:[<Symbol:format>, <Str:"a">]>`},
		{"1+2i", "<Quat:1+2i>"},
		{"; comment\n  sym ; another", "<Symbol:sym>"},
		{"(define x 1) x", "<Cons:[begin, <Cons:[<Symbol:define>, <Symbol:x>, <Num:1>]>, <Symbol:x>]>"},
		{"(quote x)", "<Cons:[quote, <Symbol:x>]>"},
	}
	for i, tt := range tests {
		got := Parse("test", tt.input).Inspect(object.ViewDebug)
		if got != tt.want {
			t.Fatalf("tests[%d] - input %q: wanted %s, got %s", i, tt.input, tt.want, got)
		}
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{")", "error[005]: syntax error: unexpected list close"},
		{"(1 2", "error[006]: syntax error: unclosed list"},
		{"(1 (2 3)", "error[006]: syntax error: unclosed list"},
		{"{1 + 2 * 3}", "error[006]: syntax error: infix list operators must be equal"},
		{"{1 + 2", "error[007]: syntax error: unclosed infix list"},
		{`(display "abc`, "error[008]: syntax error: unclosed string literal"},
		{"(1 2) )", "error[005]: syntax error: unexpected list close"},
		{"'", "error[006]: syntax error: unclosed list"},
	}
	for i, tt := range tests {
		got := Parse("test", tt.input).Inspect(object.ViewLiteral)
		if got != tt.want {
			t.Fatalf("tests[%d] - input %q: wanted %s, got %s", i, tt.input, tt.want, got)
		}
	}
}

func TestParseExprOneAtATime(t *testing.T) {
	p := New("test", "1 (a) \"s\"")
	want := []string{"1", "(a)", `"s"`}
	for i, w := range want {
		expr, ok := p.ParseExpr()
		if !ok || expr.Inspect(object.ViewLiteral) != w {
			t.Fatalf("tests[%d] - wanted %s, got %v", i, w, expr)
		}
	}
	if _, ok := p.ParseExpr(); ok {
		t.Fatalf("expected end of input")
	}
}

func TestStringLiteralsReadBack(t *testing.T) {
	tests := []string{`"plain"`, `"a\"b"`, `"back\\slash"`, `"two\nlines\tand a tab"`, `("x\"y" "\e[1m")`}
	for i, input := range tests {
		first := Parse("test", input).Inspect(object.ViewLiteral)
		if first != input {
			t.Fatalf("tests[%d] - wanted %s, got %s", i, input, first)
		}
		if again := Parse("test", first).Inspect(object.ViewLiteral); again != first {
			t.Fatalf("tests[%d] - %s read back as %s", i, first, again)
		}
	}
}
