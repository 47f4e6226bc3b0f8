package intrinsics

// The special forms. Each receives the whole call list, head included, unevaluated, and is
// responsible for evaluating what it needs to. Any scope a form pushes is popped before it returns,
// error or no error.

import (
	"slices"
	"strconv"

	"github.com/rlisp-lang/rlisp/source/evaluator"
	"github.com/rlisp-lang/rlisp/source/object"
	"github.com/rlisp-lang/rlisp/source/pattern"
)

var macros = map[string]object.MacroFn{
	"define":            define,
	"lambda":            lambda,
	"λ":                 lambda,
	"env":               envLookup,
	"if":                ifExpr,
	"cond":              cond,
	"let":               let,
	"try":               try,
	"define-struct":     defineStructMacro,
	"define-macro-rule": defineMacroRule,
}

var reservedIdentifiers = []string{"define", "cond", "lambda", "if", "let"}

func IsReserved(name string) bool {
	return slices.Contains(reservedIdentifiers, name)
}

// callArgs gives the arguments of a call list, i.e. everything but the head.
func callArgs(list object.ConsList) object.ConsList {
	tail, _ := list.Tail()
	return tail
}

func nth(list object.ConsList, i int) object.Expression {
	e, _ := list.Nth(i)
	return e
}

func symbolNames(list object.ConsList) ([]string, bool) {
	names := make([]string, 0, list.Len())
	for _, e := range list.All() {
		s, ok := e.(*object.Symbol)
		if !ok {
			return nil, false
		}
		names = append(names, s.Name)
	}
	return names, true
}

// (define name value) or (define (name params...) body...)
func define(list object.ConsList, env *object.Environment) object.Expression {
	rest := callArgs(list)
	if rest.IsEmpty() {
		return object.NewArity(2, 0)
	}
	switch target := nth(rest, 0).(type) {
	case *object.Symbol:
		if rest.Len() != 2 {
			return object.NewArity(2, rest.Len())
		}
		if IsReserved(target.Name) {
			return object.NewCustom(RESERVED_IDENTIFIER, "reserved identifier: "+target.Name)
		}
		val := evaluator.Eval(nth(rest, 1), env)
		if object.IsError(val) {
			return val
		}
		env.Insert(target.Name, val)
		return object.NIL
	case *object.Cons:
		if target.List.IsEmpty() {
			return object.NewSyntax(DEFINE_SHAPE, "define must bind either a function or a symbol")
		}
		name, ok := nth(target.List, 0).(*object.Symbol)
		if !ok {
			return object.NewSyntax(DEFINE_TARGET, "value must be bound to a symbol")
		}
		if IsReserved(name.Name) {
			return object.NewCustom(RESERVED_IDENTIFIER, "reserved identifier: "+name.Name)
		}
		params, ok := symbolNames(callArgs(target.List))
		if !ok {
			return object.NewSyntax(DEFINE_PARAMS, "function parameters must be symbols")
		}
		body := callArgs(rest)
		if body.IsEmpty() {
			return object.NewSyntax(DEFINE_SHAPE, "function definition has no body")
		}
		env.Insert(name.Name, evaluator.MakeLambda(params, evaluator.ImplicitBegin(body), env, name.Name))
		return object.NIL
	}
	return object.NewSyntax(DEFINE_SHAPE, "define must bind either a function or a symbol")
}

// (lambda [params...] body...)
func lambda(list object.ConsList, env *object.Environment) object.Expression {
	rest := callArgs(list)
	if rest.Len() < 2 {
		return lambdaSyntax()
	}
	paramList, ok := nth(rest, 0).(*object.Cons)
	if !ok {
		return lambdaSyntax()
	}
	params, ok := symbolNames(paramList.List)
	if !ok {
		return lambdaSyntax()
	}
	return evaluator.MakeLambda(params, evaluator.ImplicitBegin(callArgs(rest)), env)
}

func lambdaSyntax() *object.Error {
	return object.NewSyntax(LAMBDA_SYNTAX, "(lambda [args...] body...)")
}

// (env 'name) gives the value bound to the name, or nil.
func envLookup(list object.ConsList, env *object.Environment) object.Expression {
	rest := callArgs(list)
	if rest.Len() != 1 {
		return object.NewArity(1, rest.Len())
	}
	arg := evaluator.Eval(nth(rest, 0), env)
	if object.IsError(arg) {
		return arg
	}
	s, ok := arg.(*object.Symbol)
	if !ok {
		return object.NewSignature("symbol", object.TypeOf(arg))
	}
	if val, ok := env.Get(s.Name); ok {
		return val
	}
	return object.NIL
}

func ifExpr(list object.ConsList, env *object.Environment) object.Expression {
	rest := callArgs(list)
	if rest.Len() != 3 {
		return object.NewArity(3, rest.Len())
	}
	condition := evaluator.Eval(nth(rest, 0), env)
	if object.IsError(condition) {
		return condition
	}
	b, ok := condition.(*object.Boolean)
	if !ok {
		return object.NewSignature("bool", object.TypeOf(condition))
	}
	if b.Value {
		return evaluator.Eval(nth(rest, 1), env)
	}
	return evaluator.Eval(nth(rest, 2), env)
}

// The tests are evaluated in a scope where 'else' is true. The chosen value is evaluated after that
// scope has gone.
func cond(list object.ConsList, env *object.Environment) object.Expression {
	var chosen object.Expression
	result := env.WithScope(func() object.Expression {
		env.Insert("else", object.TRUE)
		for _, clause := range callArgs(list).All() {
			c, ok := clause.(*object.Cons)
			if !ok {
				return object.NewSyntax(COND_CASE_NOT_LIST, "condition case must be a list")
			}
			if c.List.Len() != 2 {
				return object.NewSyntax(COND_CASE_LENGTH, "condition case must contain 2 elements")
			}
			test := evaluator.Eval(nth(c.List, 0), env)
			if object.IsError(test) {
				return test
			}
			b, ok := test.(*object.Boolean)
			if !ok {
				return object.NewSyntax(COND_NOT_BOOL, "condition must be a boolean value")
			}
			if b.Value {
				chosen = nth(c.List, 1)
				return nil
			}
		}
		return object.NIL
	})
	if chosen != nil {
		return evaluator.Eval(chosen, env)
	}
	return result
}

// (let ([name value] ...) body...)
// The bindings are made in order, each able to see the ones before it. The first binding whose value
// is an error aborts the whole form.
func let(list object.ConsList, env *object.Environment) object.Expression {
	rest := callArgs(list)
	if rest.IsEmpty() {
		return object.NewArity(2, 0)
	}
	bindings, ok := nth(rest, 0).(*object.Cons)
	if !ok {
		return object.NewSyntax(LET_BINDINGS, "binding list must be a list of bindings")
	}
	body := callArgs(rest)
	if body.IsEmpty() {
		return object.NewSyntax(LET_BODY, "let body not found")
	}
	return env.WithScope(func() object.Expression {
		for _, binding := range bindings.List.All() {
			pair, ok := binding.(*object.Cons)
			if !ok {
				return object.NewSyntax(LET_BINDING, "binding must be a list containing a symbol and a value, found "+
					binding.Inspect(object.ViewLiteral))
			}
			if pair.List.Len() != 2 {
				return object.NewArity(2, pair.List.Len())
			}
			name, ok := nth(pair.List, 0).(*object.Symbol)
			if !ok {
				return object.NewSyntax(LET_IDENTIFIER, "identifier in binding must be a symbol, found "+
					nth(pair.List, 0).Inspect(object.ViewLiteral))
			}
			val := evaluator.Eval(nth(pair.List, 1), env)
			if object.IsError(val) {
				return val
			}
			env.Insert(name.Name, val)
		}
		return evaluator.Eval(evaluator.ImplicitBegin(body), env)
	})
}

// (try expr handler)
func try(list object.ConsList, env *object.Environment) object.Expression {
	rest := callArgs(list)
	if rest.Len() != 2 {
		return object.NewArity(2, rest.Len())
	}
	handler := evaluator.Eval(nth(rest, 1), env)
	if object.IsError(handler) {
		return handler
	}
	if !object.IsCallable(handler) {
		return object.NewCustom(HANDLER_NOT_CALLABLE, "not a callable value: `"+handler.Inspect(object.ViewLiteral)+"`")
	}
	result := evaluator.Eval(nth(rest, 0), env)
	err, ok := result.(*object.Error)
	if !ok {
		return result
	}
	env.Log.WithField("code", err.Code()).Debug("try caught an error")
	return evaluator.Apply(handler, []object.Expression{ErrorStruct(err, env)}, env)
}

// ErrorStruct turns an error into an instance of the built-in 'error' struct. Its stack is the list
// of call sites, innermost first.
func ErrorStruct(err *object.Error, env *object.Environment) *object.Struct {
	sites := err.Stack.Slice()
	slices.Reverse(sites)
	return object.MakeStruct("error", env.ErrorId,
		num(float64(err.Code())),
		str(err.Message()),
		&object.Cons{List: object.FromSlice(sites)},
	)
}

// (define-struct name [fields...])
func defineStructMacro(list object.ConsList, env *object.Environment) object.Expression {
	rest := callArgs(list)
	if rest.Len() != 2 {
		return object.NewArity(2, rest.Len())
	}
	name, ok := nth(rest, 0).(*object.Symbol)
	if !ok {
		return object.NewSignature("symbol", object.TypeOf(nth(rest, 0)))
	}
	fieldList, ok := nth(rest, 1).(*object.Cons)
	if !ok {
		return object.NewSignature("cons", object.TypeOf(nth(rest, 1)))
	}
	fields := make([]string, 0, fieldList.List.Len())
	for _, f := range fieldList.List.All() {
		s, ok := f.(*object.Symbol)
		if !ok {
			return object.NewSignature("symbol", object.TypeOf(f))
		}
		if slices.Contains(fields, s.Name) {
			return object.NewCustom(STRUCT_DEFINITION, "could not define struct: field `"+s.Name+"` is repeated")
		}
		fields = append(fields, s.Name)
	}
	if IsReserved(name.Name) {
		return object.NewCustom(STRUCT_DEFINITION, "could not define struct: reserved identifier "+name.Name)
	}
	defineStruct(env, name.Name, fields)
	return object.NIL
}

// defineStruct registers a new struct type and binds its constructor, predicate and accessors. It
// returns the type id.
func defineStruct(env *object.Environment, name string, fields []string) int {
	id := env.NewStructId()
	for i, field := range fields {
		accessor := name + "-" + field
		env.DefineIntrinsic(accessor, func(args []object.Expression, env *object.Environment) object.Expression {
			if err := checkArity(args, 1); err != nil {
				return err
			}
			if s, ok := args[0].(*object.Struct); ok && s.TypeId == id {
				return s.Field(i)
			}
			return object.NewCustom(BAD_ACCESSOR, "`"+accessor+"` can't be applied to a value of type "+
				object.TypeOf(args[0]))
		})
	}
	env.DefineIntrinsic("is-"+name+"?", func(args []object.Expression, env *object.Environment) object.Expression {
		if err := checkArity(args, 1); err != nil {
			return err
		}
		s, ok := args[0].(*object.Struct)
		return object.MakeBool(ok && s.TypeId == id)
	})
	env.DefineMacro("make-"+name, func(list object.ConsList, env *object.Environment) object.Expression {
		vals, err := evaluator.EvalArgs(callArgs(list), env)
		if err != nil {
			return err
		}
		if len(vals) != len(fields) {
			return object.NewArity(len(fields), len(vals))
		}
		return object.MakeStruct(name, id, vals...)
	})
	env.Log.WithField("fields", len(fields)).Debug("defined struct " + name + " with id " + strconv.Itoa(id))
	return id
}

// (define-macro-rule (name pattern...) body)
// The name is the rule's only keyword; every other symbol in the pattern is a variable.
func defineMacroRule(list object.ConsList, env *object.Environment) object.Expression {
	rest := callArgs(list)
	if rest.Len() != 2 {
		return object.NewArity(2, rest.Len())
	}
	pat, ok := nth(rest, 0).(*object.Cons)
	if !ok {
		return object.NewSyntax(MACRO_PATTERN, "syntax rule must be a list")
	}
	if pat.List.IsEmpty() {
		return object.NewSyntax(MACRO_NAME_MISSING, "macro definition must include a name")
	}
	name, ok := nth(pat.List, 0).(*object.Symbol)
	if !ok {
		return object.NewCustom(MACRO_NAME_SYMBOL, "macro name must be a symbol")
	}
	body := nth(rest, 1)
	keywords := []string{name.Name}
	env.DefineMacro(name.Name, func(call object.ConsList, env *object.Environment) object.Expression {
		matches, err := pattern.Match(keywords, pat, &object.Cons{List: call})
		if err != nil {
			return err
		}
		return evaluator.Eval(pattern.ReplaceSymbols(body, matches), env)
	})
	return object.NIL
}
