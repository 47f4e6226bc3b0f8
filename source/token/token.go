package token

type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	ATOM    = "ATOM"    // 42, 1+2i, foo, #t, nil ...
	STRING  = "string"  // "foo"
	COMMENT = "COMMENT" // ; foo bar zort troz

	// Reader sugar. Each of these applies to the expression which follows it.
	QUOTE      = "'"
	QUASIQUOTE = "`"
	UNQUOTE    = ","
	HASH       = "#"

	LPAREN = "("
	RPAREN = ")"
	LBRACE = "{"
	RBRACE = "}"
	LBRACK = "["
	RBRACK = "]"
)

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	ChStart int
	ChEnd   int
	Source  string
}

// Closes gives the closing bracket matching an opening one.
func Closes(t TokenType) TokenType {
	switch t {
	case LPAREN:
		return RPAREN
	case LBRACK:
		return RBRACK
	case LBRACE:
		return RBRACE
	}
	return ILLEGAL
}
