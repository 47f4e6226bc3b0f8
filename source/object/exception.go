package object

import (
	"fmt"
	"strconv"
)

type ErrorCode uint16

const (
	UNDEFINED_CODE ErrorCode = 1
	ARITY_CODE     ErrorCode = 4
	SIGNATURE_CODE ErrorCode = 9
)

// ExceptionData is the payload of an error: one of Arity, Signature, Undefined, Syntax or Custom.
type ExceptionData interface {
	ErrorCode() ErrorCode
	Message() string
}

type Arity struct {
	Expected, Found int
}

func (a Arity) ErrorCode() ErrorCode { return ARITY_CODE }
func (a Arity) Message() string {
	return fmt.Sprintf("arity mismatch: expected %d, found %d", a.Expected, a.Found)
}

type Signature struct {
	Expected, Found string
}

func (s Signature) ErrorCode() ErrorCode { return SIGNATURE_CODE }
func (s Signature) Message() string {
	return "signature mismatch: expected " + s.Expected + ", found " + s.Found
}

type Undefined struct {
	Symbol string
}

func (u Undefined) ErrorCode() ErrorCode { return UNDEFINED_CODE }
func (u Undefined) Message() string      { return "undefined symbol: `" + u.Symbol + "`" }

type Syntax struct {
	Code        ErrorCode
	Description string
}

func (s Syntax) ErrorCode() ErrorCode { return s.Code }
func (s Syntax) Message() string      { return "syntax error: " + s.Description }

type Custom struct {
	Code        ErrorCode
	Description string
}

func (c Custom) ErrorCode() ErrorCode { return c.Code }
func (c Custom) Message() string      { return c.Description }

// An Error is an ordinary value. Stack holds the call sites it has passed through on the way out;
// each one is pushed onto the front, so the outermost call site is first.
type Error struct {
	Data  ExceptionData
	Stack ConsList
}

func NewArity(expected, found int) *Error {
	return &Error{Data: Arity{expected, found}}
}

func NewSignature(expected, found string) *Error {
	return &Error{Data: Signature{expected, found}}
}

func NewUndefined(symbol string) *Error {
	return &Error{Data: Undefined{symbol}}
}

func NewSyntax(code ErrorCode, description string) *Error {
	return &Error{Data: Syntax{code, description}}
}

func NewCustom(code ErrorCode, description string) *Error {
	return &Error{Data: Custom{code, description}}
}

func (e *Error) Code() ErrorCode { return e.Data.ErrorCode() }
func (e *Error) Message() string { return e.Data.Message() }

// Extend returns a copy of the error with expr pushed onto the front of its trace.
func (e *Error) Extend(expr Expression) *Error {
	return &Error{Data: e.Data, Stack: e.Stack.Cons(expr)}
}

// Trace renders the stack one call site per line, innermost first and outermost last.
func (e *Error) Trace() []string {
	sites := e.Stack.Slice()
	result := make([]string, 0, len(sites))
	for i := range sites {
		result = append(result, "at ["+strconv.Itoa(i)+"] "+sites[len(sites)-1-i].Inspect(ViewLiteral))
	}
	return result
}

func (e *Error) Type() ExpressionType { return ERROR_EXP }
func (e *Error) Inspect(view View) string {
	return fmt.Sprintf("error[%03d]: %s", e.Code(), e.Message())
}

func IsError(e Expression) bool {
	return e.Type() == ERROR_EXP
}
