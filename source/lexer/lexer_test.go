package lexer

import (
	"testing"

	"github.com/rlisp-lang/rlisp/source/token"
)

func TestBracketsAndSugar(t *testing.T) {
	input := `(define (square x)
  [* x x]) ; squares things
'(a b) ` + "`" + `(1 ,x) {1 + 2}`
	items := []testItem{
		{token.LPAREN, "(", 1},
		{token.ATOM, "define", 1},
		{token.LPAREN, "(", 1},
		{token.ATOM, "square", 1},
		{token.ATOM, "x", 1},
		{token.RPAREN, ")", 1},
		{token.LBRACK, "[", 2},
		{token.ATOM, "*", 2},
		{token.ATOM, "x", 2},
		{token.ATOM, "x", 2},
		{token.RBRACK, "]", 2}, // 10
		{token.RPAREN, ")", 2},
		{token.COMMENT, " squares things", 2},
		{token.QUOTE, "'", 3},
		{token.LPAREN, "(", 3},
		{token.ATOM, "a", 3},
		{token.ATOM, "b", 3},
		{token.RPAREN, ")", 3},
		{token.QUASIQUOTE, "`", 3},
		{token.LPAREN, "(", 3},
		{token.ATOM, "1", 3}, // 20
		{token.UNQUOTE, ",", 3},
		{token.ATOM, "x", 3},
		{token.RPAREN, ")", 3},
		{token.LBRACE, "{", 3},
		{token.ATOM, "1", 3},
		{token.ATOM, "+", 3},
		{token.ATOM, "2", 3},
		{token.RBRACE, "}", 3},
		{token.EOF, "EOF", 3},
	}
	testLexingString(t, input, items)
}

func TestStringsAndHashes(t *testing.T) {
	input := `"a\tb\"c" #t #f #"x" #foo 1+2i`
	items := []testItem{
		{token.STRING, "a\tb\"c", 1},
		{token.ATOM, "#t", 1},
		{token.ATOM, "#f", 1},
		{token.HASH, "#", 1},
		{token.STRING, "x", 1},
		{token.HASH, "#", 1},
		{token.ATOM, "foo", 1},
		{token.ATOM, "1+2i", 1},
		{token.EOF, "EOF", 1},
	}
	testLexingString(t, input, items)
}

func TestUnclosedString(t *testing.T) {
	items := []testItem{
		{token.LPAREN, "(", 1},
		{token.ILLEGAL, "unclosed string literal", 1},
	}
	testLexingString(t, `("abc`, items)
}

func TestIncomplete(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"(+ 1 2)", false},
		{"(+ 1", true},
		{"(display \"(\")", false},
		{"(display \"abc", true},
		{"; (", false},
		{"[{1 + 2}", true},
	}
	for i, tt := range tests {
		if got := Incomplete(tt.input); got != tt.want {
			t.Fatalf("tests[%d] - Incomplete(%q) wanted %v, got %v", i, tt.input, tt.want, got)
		}
	}
}

type testItem struct {
	expectedType    token.TokenType
	expectedLiteral string
	expectedLine    int
}

func testLexingString(t *testing.T, input string, items []testItem) {
	l := NewLexer("dummy source", input)
	runTest(t, l, items)
}

func runTest(t *testing.T, l *Lexer, items []testItem) {
	for i, tt := range items {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q with literal %q, got=%q with literal %q",
				i, tt.expectedType, tt.expectedLiteral, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
		if tok.Line != tt.expectedLine {
			t.Fatalf("tests[%d] - line wrong. expected=%d, got=%d",
				i, tt.expectedLine, tok.Line)
		}
	}
}
