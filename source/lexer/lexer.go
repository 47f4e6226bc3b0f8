package lexer

import (
	"fmt"
	"unicode"

	"github.com/rlisp-lang/rlisp/source/settings"
	"github.com/rlisp-lang/rlisp/source/token"
)

type Lexer struct {
	runes  *RuneSupplier
	source string
	tstart int // the value of char at the start of a token
	lineNo int
}

func NewLexer(source, input string) *Lexer {
	return &Lexer{runes: NewRuneSupplier([]rune(input)), source: source, lineNo: 1}
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()
	l.lineNo, l.tstart = l.runes.Position()
	if l.runes.AtEnd() {
		return l.MakeToken(token.EOF, "EOF")
	}
	switch ch := l.runes.CurrentRune(); ch {
	case '(':
		return l.NewToken(token.LPAREN, "(")
	case ')':
		return l.NewToken(token.RPAREN, ")")
	case '[':
		return l.NewToken(token.LBRACK, "[")
	case ']':
		return l.NewToken(token.RBRACK, "]")
	case '{':
		return l.NewToken(token.LBRACE, "{")
	case '}':
		return l.NewToken(token.RBRACE, "}")
	case '\'':
		return l.NewToken(token.QUOTE, "'")
	case '`':
		return l.NewToken(token.QUASIQUOTE, "`")
	case ',':
		return l.NewToken(token.UNQUOTE, ",")
	case ';':
		return l.NewToken(token.COMMENT, l.runes.ReadComment())
	case '"':
		s, ok := l.runes.ReadString()
		if !ok {
			return l.MakeToken(token.ILLEGAL, "unclosed string literal")
		}
		return l.NewToken(token.STRING, s)
	case '#':
		// #t and #f are atoms; anything else after a '#' is the expression to format.
		if p := l.runes.PeekRune(); p == 't' || p == 'f' {
			save := *l.runes
			if atom := l.runes.ReadAtom(); atom == "#t" || atom == "#f" {
				return l.NewToken(token.ATOM, atom)
			}
			*l.runes = save
		}
		return l.NewToken(token.HASH, "#")
	}
	return l.NewToken(token.ATOM, l.runes.ReadAtom())
}

func (l *Lexer) skipWhitespace() {
	for !l.runes.AtEnd() && unicode.IsSpace(l.runes.CurrentRune()) {
		l.runes.Next()
	}
}

// NewToken moves past the last rune of the token and makes it.
func (l *Lexer) NewToken(tokenType token.TokenType, st string) token.Token {
	l.runes.Next()
	return l.MakeToken(tokenType, st)
}

func (l *Lexer) MakeToken(tokenType token.TokenType, st string) token.Token {
	if settings.SHOW_LEXER {
		fmt.Println(tokenType, st)
	}
	_, chNo := l.runes.Position()
	return token.Token{Type: tokenType, Literal: st, Source: l.source, Line: l.lineNo, ChStart: l.tstart, ChEnd: chNo}
}

func IsDelimiter(ch rune) bool {
	switch ch {
	case 0, '(', ')', '[', ']', '{', '}', '\'', '"', '`', ',', ';':
		return true
	}
	return unicode.IsSpace(ch)
}

// Incomplete says whether the input stops inside a string or with brackets left open, in which case
// the REPL should ask for another line rather than evaluate.
func Incomplete(input string) bool {
	l := NewLexer("REPL input", input)
	depth := 0
	for {
		tok := l.NextToken()
		switch tok.Type {
		case token.EOF:
			return depth > 0
		case token.ILLEGAL:
			return true
		case token.LPAREN, token.LBRACK, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACK, token.RBRACE:
			depth--
		}
	}
}
