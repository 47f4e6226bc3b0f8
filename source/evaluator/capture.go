package evaluator

import (
	"github.com/rlisp-lang/rlisp/source/object"
	"github.com/rlisp-lang/rlisp/source/pattern"
)

// MakeLambda builds a lambda whose capture holds the present value of every symbol in the body
// which is bound in env, other than the parameters and the excluded names. A function which
// excludes its own name finds itself through the environment when it recurses.
func MakeLambda(params []string, body object.Expression, env *object.Environment, exclude ...string) *object.Lambda {
	capture := object.NewCapture()
	for _, name := range pattern.ExtractSymbols(append(append([]string{}, params...), exclude...), body) {
		if val, ok := env.Get(name); ok {
			capture = capture.Assoc(name, val)
		}
	}
	return &object.Lambda{Params: params, Body: body, Capture: capture}
}

// ImplicitBegin turns a list of body expressions into a single expression, wrapping it in the
// 'begin' form unless there is exactly one. The form is the value itself rather than the symbol, so
// a local binding called 'begin' can't change what a body means.
func ImplicitBegin(body object.ConsList) object.Expression {
	if body.Len() == 1 {
		e, _ := body.Head()
		return e
	}
	return &object.Cons{List: body.Cons(object.BeginForm)}
}
