package object

import (
	"math"
	"strconv"
	"strings"

	"src.elv.sh/pkg/persistent/hash"
	"src.elv.sh/pkg/persistent/hashmap"
	"src.elv.sh/pkg/persistent/vector"
)

// The ways an expression can be rendered. ViewStdOut is what 'display' prints, ViewLiteral is what
// the REPL echoes and what appears in error messages, ViewDebug shows the variant of every node.
type View int

const (
	ViewStdOut View = iota
	ViewLiteral
	ViewDebug
)

type ExpressionType string

const (
	BOOL_EXP       = "bool"
	NUM_EXP        = "num"
	STRING_EXP     = "string"
	SYMBOL_EXP     = "symbol"
	CONS_EXP       = "cons"
	PROCEDURE_EXP  = "procedure"
	ERROR_EXP      = "error"
	STRUCT_EXP     = "struct"
	QUATERNION_EXP = "quaternion"
)

type Expression interface {
	Type() ExpressionType
	Inspect(view View) string
}

// TypeOf gives the name the language uses for the type of an expression. For structs this is the
// name of the struct type rather than "struct".
func TypeOf(e Expression) string {
	if s, ok := e.(*Struct); ok {
		return s.Name
	}
	return string(e.Type())
}

type Boolean struct {
	Value bool
}

var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
)

func MakeBool(b bool) *Boolean {
	if b {
		return TRUE
	}
	return FALSE
}

func (b *Boolean) Type() ExpressionType { return BOOL_EXP }
func (b *Boolean) Inspect(view View) string {
	if view == ViewDebug {
		return "<Bool:" + strconv.FormatBool(b.Value) + ">"
	}
	return strconv.FormatBool(b.Value)
}

type Number struct {
	Value float64
}

func (n *Number) Type() ExpressionType { return NUM_EXP }
func (n *Number) Inspect(view View) string {
	if view == ViewDebug {
		return "<Num:" + FormatNumber(n.Value) + ">"
	}
	return FormatNumber(n.Value)
}

// FormatNumber writes a float the shortest way that reads back as the same float, without an
// exponent and without a trailing ".0" on integral values.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

type String struct {
	Value string
}

func (s *String) Type() ExpressionType { return STRING_EXP }
func (s *String) Inspect(view View) string {
	switch view {
	case ViewStdOut:
		return s.Value
	case ViewDebug:
		return "<Str:\"" + s.Value + "\">"
	}
	return "\"" + escaper.Replace(s.Value) + "\""
}

// The escapes the reader understands, so that the literal view reads back as the same string.
var escaper = strings.NewReplacer("\\", "\\\\", "\"", "\\\"", "\n", "\\n", "\r", "\\r", "\t", "\\t", "\033", "\\e")

type Symbol struct {
	Name string
}

func (s *Symbol) Type() ExpressionType { return SYMBOL_EXP }
func (s *Symbol) Inspect(view View) string {
	if view == ViewDebug {
		return "<Symbol:" + s.Name + ">"
	}
	return s.Name
}

// Cons is both the syntax of a call and the runtime list value. The empty list is the language's nil.
type Cons struct {
	List ConsList
}

var NIL = &Cons{}

func MakeList(elements ...Expression) *Cons {
	return &Cons{List: FromSlice(elements)}
}

func (c *Cons) Type() ExpressionType { return CONS_EXP }
func (c *Cons) Inspect(view View) string {
	if view == ViewDebug {
		elements := make([]string, 0, c.List.Len())
		for _, e := range c.List.All() {
			elements = append(elements, e.Inspect(view))
		}
		return "<Cons:[" + strings.Join(elements, ", ") + "]>"
	}
	if c.List.Len() == 2 {
		head, _ := c.List.Head()
		body, _ := c.List.Nth(1)
		if sf, ok := head.(*SpecialForm); ok && sf.Kind.Prefix() != "" {
			return sf.Kind.Prefix() + body.Inspect(ViewLiteral)
		}
	}
	elements := make([]string, 0, c.List.Len())
	for _, e := range c.List.All() {
		elements = append(elements, e.Inspect(ViewLiteral))
	}
	return "(" + strings.Join(elements, " ") + ")"
}

// IsNil says whether an expression is the empty list.
func IsNil(e Expression) bool {
	c, ok := e.(*Cons)
	return ok && c.List.IsEmpty()
}

// Callables. The special forms are markers consumed by the evaluator; the other three carry
// either a body to interpret or a native function.

type Special int

const (
	QUOTE Special = iota
	QUASIQUOTE
	UNQUOTE
	BEGIN
)

func (s Special) String() string {
	return [...]string{"quote", "quasiquote", "unquote", "begin"}[s]
}

// Prefix gives the reader sugar for the form, if it has any.
func (s Special) Prefix() string {
	return [...]string{"'", "`", ",", ""}[s]
}

type SpecialForm struct {
	Kind Special
}

var (
	QuoteForm      = &SpecialForm{Kind: QUOTE}
	QuasiquoteForm = &SpecialForm{Kind: QUASIQUOTE}
	UnquoteForm    = &SpecialForm{Kind: UNQUOTE}
	BeginForm      = &SpecialForm{Kind: BEGIN} // Heads the bodies the reader and 'lambda' wrap up.
)

func (sf *SpecialForm) Type() ExpressionType   { return PROCEDURE_EXP }
func (sf *SpecialForm) Inspect(view View) string { return sf.Kind.String() }

// A Lambda's Capture is the snapshot of the free variables of its body taken when the lambda was
// made, keyed by name. It may be nil.
type Lambda struct {
	Params  []string
	Body    Expression
	Capture hashmap.Map
}

// NewCapture returns an empty capture map.
func NewCapture() hashmap.Map {
	return hashmap.New(
		func(a, b any) bool { return a.(string) == b.(string) },
		func(k any) uint32 { return hash.String(k.(string)) },
	)
}

func (l *Lambda) Type() ExpressionType { return PROCEDURE_EXP }
func (l *Lambda) Inspect(view View) string {
	if view == ViewDebug {
		return "<Lambda:(" + strings.Join(l.Params, " ") + ") " + l.Body.Inspect(ViewLiteral) + ">"
	}
	return "<procedure>"
}

type IntrinsicFn func(args []Expression, env *Environment) Expression

type Intrinsic struct {
	Name string
	Fn   IntrinsicFn
}

func (i *Intrinsic) Type() ExpressionType { return PROCEDURE_EXP }
func (i *Intrinsic) Inspect(view View) string {
	if view == ViewDebug {
		return "<Intrinsic:" + i.Name + ">"
	}
	return "<procedure>"
}

// A MacroFn receives the whole call list, head included, unevaluated.
type MacroFn func(list ConsList, env *Environment) Expression

type Macro struct {
	Name string
	Fn   MacroFn
}

func (m *Macro) Type() ExpressionType { return PROCEDURE_EXP }
func (m *Macro) Inspect(view View) string {
	if view == ViewDebug {
		return "<Macro:" + m.Name + ">"
	}
	return "<procedure>"
}

func IsCallable(e Expression) bool {
	return e.Type() == PROCEDURE_EXP
}

type Struct struct {
	Name   string
	TypeId int
	Fields vector.Vector
}

func MakeStruct(name string, typeId int, fields ...Expression) *Struct {
	v := vector.Empty
	for _, f := range fields {
		v = v.Conj(f)
	}
	return &Struct{Name: name, TypeId: typeId, Fields: v}
}

// Field returns the i-th field of the struct, which must exist.
func (s *Struct) Field(i int) Expression {
	f, _ := s.Fields.Index(i)
	return f.(Expression)
}

func (s *Struct) Type() ExpressionType { return STRUCT_EXP }
func (s *Struct) Inspect(view View) string {
	inner := view
	if inner == ViewStdOut {
		inner = ViewLiteral
	}
	fields := make([]string, 0, s.Fields.Len())
	for it := s.Fields.Iterator(); it.HasElem(); it.Next() {
		fields = append(fields, it.Elem().(Expression).Inspect(inner))
	}
	if view == ViewDebug {
		return "<" + s.Name + ":[" + strings.Join(fields, ", ") + "]>"
	}
	if len(fields) == 0 {
		return "(make-" + s.Name + ")"
	}
	return "(make-" + s.Name + " " + strings.Join(fields, " ") + ")"
}

// Equals is the language's structural equality. Native callables and errors are never equal to
// anything, not even themselves.
func Equals(a, b Expression) bool {
	switch x := a.(type) {
	case *Boolean:
		y, ok := b.(*Boolean)
		return ok && x.Value == y.Value
	case *Number:
		y, ok := b.(*Number)
		return ok && x.Value == y.Value
	case *String:
		y, ok := b.(*String)
		return ok && x.Value == y.Value
	case *Symbol:
		y, ok := b.(*Symbol)
		return ok && x.Name == y.Name
	case *Quaternion:
		y, ok := b.(*Quaternion)
		return ok && *x == *y
	case *Cons:
		y, ok := b.(*Cons)
		if !ok || x.List.Len() != y.List.Len() {
			return false
		}
		for c, d := x.List.head, y.List.head; c != nil; c, d = c.next, d.next {
			if !Equals(c.value, d.value) {
				return false
			}
		}
		return true
	case *SpecialForm:
		y, ok := b.(*SpecialForm)
		return ok && x.Kind == y.Kind
	case *Lambda:
		y, ok := b.(*Lambda)
		if !ok || len(x.Params) != len(y.Params) {
			return false
		}
		for i := range x.Params {
			if x.Params[i] != y.Params[i] {
				return false
			}
		}
		return Equals(x.Body, y.Body) && capturesEqual(x.Capture, y.Capture)
	case *Struct:
		y, ok := b.(*Struct)
		if !ok || x.TypeId != y.TypeId || x.Fields.Len() != y.Fields.Len() {
			return false
		}
		for i := 0; i < x.Fields.Len(); i++ {
			if !Equals(x.Field(i), y.Field(i)) {
				return false
			}
		}
		return true
	}
	return false
}

func capturesEqual(a, b hashmap.Map) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Len() != b.Len() {
		return false
	}
	for it := a.Iterator(); it.HasElem(); it.Next() {
		k, v := it.Elem()
		w, ok := b.Index(k)
		if !ok || !Equals(v.(Expression), w.(Expression)) {
			return false
		}
	}
	return true
}
