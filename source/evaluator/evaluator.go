package evaluator

// This is basically your standard tree-walking evaluator. Errors are ordinary values: every
// sub-result is checked, and an error is passed straight back up, extended with the call that was
// being evaluated when it came through.

import (
	"github.com/sirupsen/logrus"

	"github.com/rlisp-lang/rlisp/source/object"
	"github.com/rlisp-lang/rlisp/source/settings"
)

const (
	NOT_CALLABLE  object.ErrorCode = 3
	STRAY_UNQUOTE object.ErrorCode = 33
)

func Eval(expr object.Expression, env *object.Environment) object.Expression {
	switch expr := expr.(type) {
	case *object.Symbol:
		if val, ok := env.Get(expr.Name); ok {
			return val
		}
		return object.NewUndefined(expr.Name)
	case *object.Cons:
		if expr.List.IsEmpty() {
			return expr
		}
		if settings.SHOW_EVAL {
			env.Log.WithFields(logrus.Fields{"depth": env.Depth()}).Debug("eval " + expr.Inspect(object.ViewLiteral))
		}
		head, _ := expr.List.Head()
		fn := Eval(head, env)
		if err, ok := fn.(*object.Error); ok {
			return err.Extend(expr)
		}
		result := Call(fn, expr.List, env)
		if err, ok := result.(*object.Error); ok {
			return err.Extend(expr)
		}
		return result
	}
	return expr
}

// Call applies an evaluated head to the rest of the call list, which is still unevaluated. What
// happens to the arguments depends on the kind of callable.
func Call(fn object.Expression, list object.ConsList, env *object.Environment) object.Expression {
	args, _ := list.Tail()
	switch fn := fn.(type) {
	case *object.SpecialForm:
		switch fn.Kind {
		case object.QUOTE:
			if args.Len() != 1 {
				return object.NewArity(1, args.Len())
			}
			arg, _ := args.Head()
			return arg
		case object.QUASIQUOTE:
			if args.Len() != 1 {
				return object.NewArity(1, args.Len())
			}
			arg, _ := args.Head()
			return quasiquote(arg, env)
		case object.BEGIN:
			var last object.Expression = object.NIL
			for _, expr := range args.All() {
				last = Eval(expr, env)
				if object.IsError(last) {
					return last
				}
			}
			return last
		default:
			return object.NewSyntax(STRAY_UNQUOTE, "unquote expression must be contained in a quasiquote")
		}
	case *object.Macro:
		return fn.Fn(list, env)
	case *object.Intrinsic:
		vals, err := EvalArgs(args, env)
		if err != nil {
			return err
		}
		return fn.Fn(vals, env)
	case *object.Lambda:
		vals, err := EvalArgs(args, env)
		if err != nil {
			return err
		}
		return applyLambda(fn, vals, env)
	case *object.Error:
		return fn
	}
	return object.NewCustom(NOT_CALLABLE, "not a callable value: `"+fn.Inspect(object.ViewLiteral)+"`")
}

// EvalArgs evaluates the arguments left to right, stopping at the first error.
func EvalArgs(args object.ConsList, env *object.Environment) ([]object.Expression, *object.Error) {
	result := make([]object.Expression, 0, args.Len())
	for _, arg := range args.All() {
		val := Eval(arg, env)
		if err, ok := val.(*object.Error); ok {
			return nil, err
		}
		result = append(result, val)
	}
	return result, nil
}

// Apply calls a procedure on arguments which have already been evaluated, as the intrinsics
// need to do with the procedures they are given.
func Apply(fn object.Expression, args []object.Expression, env *object.Environment) object.Expression {
	switch fn := fn.(type) {
	case *object.Lambda:
		return applyLambda(fn, args, env)
	case *object.Intrinsic:
		return fn.Fn(args, env)
	case *object.SpecialForm:
		return Call(fn, object.FromSlice(append([]object.Expression{fn}, args...)), env)
	case *object.Macro:
		items := make([]object.Expression, 0, len(args)+1)
		items = append(items, fn)
		for _, arg := range args {
			items = append(items, Quote(arg))
		}
		return Call(fn, object.FromSlice(items), env)
	case *object.Error:
		return fn
	}
	return object.NewCustom(NOT_CALLABLE, "not a callable value: `"+fn.Inspect(object.ViewLiteral)+"`")
}

// Quote wraps symbols and lists so that evaluating the result gives back the value unchanged.
func Quote(val object.Expression) object.Expression {
	switch val.(type) {
	case *object.Symbol, *object.Cons:
		return object.MakeList(object.QuoteForm, val)
	}
	return val
}

// The captured bindings go into the new scope first so that the parameters shadow them.
func applyLambda(fn *object.Lambda, args []object.Expression, env *object.Environment) object.Expression {
	if len(fn.Params) != len(args) {
		return object.NewArity(len(fn.Params), len(args))
	}
	return env.WithScope(func() object.Expression {
		if fn.Capture != nil {
			for it := fn.Capture.Iterator(); it.HasElem(); it.Next() {
				k, v := it.Elem()
				env.Insert(k.(string), v.(object.Expression))
			}
		}
		for i, param := range fn.Params {
			env.Insert(param, args[i])
		}
		return Eval(fn.Body, env)
	})
}

func quasiquote(expr object.Expression, env *object.Environment) object.Expression {
	c, ok := expr.(*object.Cons)
	if !ok {
		return expr
	}
	if c.List.Len() == 2 {
		head, _ := c.List.Head()
		if sf, ok := head.(*object.SpecialForm); ok && sf.Kind == object.UNQUOTE {
			inner, _ := c.List.Nth(1)
			return Eval(inner, env)
		}
	}
	items := c.List.Slice()
	for i, item := range items {
		items[i] = quasiquote(item, env)
		if object.IsError(items[i]) {
			return items[i]
		}
	}
	return &object.Cons{List: object.FromSlice(items)}
}
