package parser

// The parser reads tokens from the lexer and builds expressions directly; the language has no
// separate syntax tree. A syntax error is returned as an ordinary error expression.

import (
	"fmt"
	"strconv"

	"github.com/rlisp-lang/rlisp/source/lexer"
	"github.com/rlisp-lang/rlisp/source/object"
	"github.com/rlisp-lang/rlisp/source/settings"
	"github.com/rlisp-lang/rlisp/source/token"
)

const (
	UNEXPECTED_CLOSE object.ErrorCode = 5
	UNCLOSED_LIST    object.ErrorCode = 6
	UNCLOSED_INFIX   object.ErrorCode = 7
	UNCLOSED_STRING  object.ErrorCode = 8
)

type Parser struct {
	lexer    *lexer.Lexer
	curToken token.Token
}

func New(source, input string) *Parser {
	p := &Parser{lexer: lexer.NewLexer(source, input)}
	p.NextToken()
	return p
}

// NextToken advances to the next token which isn't a comment.
func (p *Parser) NextToken() {
	p.curToken = p.lexer.NextToken()
	for p.curToken.Type == token.COMMENT {
		p.curToken = p.lexer.NextToken()
	}
}

// ParseExpr reads one expression. It reports false if there was nothing left to read.
func (p *Parser) ParseExpr() (object.Expression, bool) {
	if p.curToken.Type == token.EOF {
		return nil, false
	}
	result := p.parseExpr()
	if settings.SHOW_PARSER {
		fmt.Println(result.Inspect(object.ViewDebug))
	}
	return result, true
}

// ParseAll reads every expression in the input, wrapping them in a 'begin' form unless there is
// exactly one. The first syntax error is returned in place of the whole.
func (p *Parser) ParseAll() object.Expression {
	exprs := []object.Expression{}
	for {
		expr, ok := p.ParseExpr()
		if !ok {
			break
		}
		if object.IsError(expr) {
			return expr
		}
		exprs = append(exprs, expr)
	}
	if len(exprs) == 1 {
		return exprs[0]
	}
	return &object.Cons{List: object.FromSlice(exprs).Cons(object.BeginForm)}
}

// Parse reads the whole of the input; see ParseAll.
func Parse(source, input string) object.Expression {
	return New(source, input).ParseAll()
}

// The parse functions are called with the current token being the first token of the expression,
// and leave it on the first token after.
func (p *Parser) parseExpr() object.Expression {
	tok := p.curToken
	switch tok.Type {
	case token.EOF:
		return object.NewSyntax(UNCLOSED_LIST, "unclosed list")
	case token.ILLEGAL:
		p.NextToken()
		return object.NewSyntax(UNCLOSED_STRING, tok.Literal)
	case token.QUOTE:
		return p.parsePrefixed(object.QuoteForm)
	case token.QUASIQUOTE:
		return p.parsePrefixed(object.QuasiquoteForm)
	case token.UNQUOTE:
		return p.parsePrefixed(object.UnquoteForm)
	case token.HASH:
		return p.parsePrefixed(&object.Symbol{Name: "format"})
	case token.LPAREN, token.LBRACK:
		return p.parseList(token.Closes(tok.Type))
	case token.LBRACE:
		return p.parseInfix()
	case token.RPAREN, token.RBRACK, token.RBRACE:
		p.NextToken()
		return object.NewSyntax(UNEXPECTED_CLOSE, "unexpected list close")
	case token.STRING:
		p.NextToken()
		return &object.String{Value: tok.Literal}
	}
	p.NextToken()
	return parseAtom(tok.Literal)
}

func (p *Parser) parsePrefixed(head object.Expression) object.Expression {
	p.NextToken()
	if p.curToken.Type == token.EOF {
		return object.NewSyntax(UNCLOSED_LIST, "unclosed list")
	}
	expr := p.parseExpr()
	if object.IsError(expr) {
		return expr
	}
	return object.MakeList(head, expr)
}

func (p *Parser) parseList(closer token.TokenType) object.Expression {
	p.NextToken()
	items := []object.Expression{}
	for p.curToken.Type != closer {
		if p.curToken.Type == token.EOF {
			return object.NewSyntax(UNCLOSED_LIST, "unclosed list")
		}
		expr := p.parseExpr()
		if object.IsError(expr) {
			return expr
		}
		items = append(items, expr)
	}
	p.NextToken()
	return &object.Cons{List: object.FromSlice(items)}
}

// {a op b op c} reads as (op a b c). Every operator in the list must be the same.
func (p *Parser) parseInfix() object.Expression {
	p.NextToken()
	operands := []object.Expression{}
	var op object.Expression
	isOp := false
	for p.curToken.Type != token.RBRACE {
		if p.curToken.Type == token.EOF {
			return object.NewSyntax(UNCLOSED_INFIX, "unclosed infix list")
		}
		expr := p.parseExpr()
		if object.IsError(expr) {
			return expr
		}
		if isOp {
			if op == nil {
				op = expr
			} else if !object.Equals(op, expr) {
				return object.NewSyntax(UNCLOSED_LIST, "infix list operators must be equal")
			}
		} else {
			operands = append(operands, expr)
		}
		isOp = !isOp
	}
	p.NextToken()
	switch {
	case len(operands) == 0:
		return object.NIL
	case op == nil:
		return operands[0]
	}
	return &object.Cons{List: object.FromSlice(operands).Cons(op)}
}

func parseAtom(s string) object.Expression {
	switch s {
	case "#t", "true":
		return object.TRUE
	case "#f", "false":
		return object.FALSE
	case "nil", "empty":
		return object.NIL
	case "quote":
		return object.QuoteForm
	case "quasiquote":
		return object.QuasiquoteForm
	case "unquote":
		return object.UnquoteForm
	}
	if q, ok := object.ParseQuaternion(s); ok {
		return q
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return &object.Number{Value: f}
	}
	return &object.Symbol{Name: s}
}
