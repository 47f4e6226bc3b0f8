package intrinsics

import (
	"math"
	"os"
	"time"

	"github.com/rlisp-lang/rlisp/source/evaluator"
	"github.com/rlisp-lang/rlisp/source/object"
	"github.com/rlisp-lang/rlisp/source/parser"
)

var system = map[string]object.IntrinsicFn{
	"eval":         eval,
	"parse":        parse,
	"type-of":      typeOf,
	"set!":         set,
	"repeat":       repeat,
	"raise":        raise,
	"random":       random,
	"current-time": currentTime,
	"args":         scriptArgs,
	"exit":         exit,
	"env-var":      envVar,
}

func eval(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 1); err != nil {
		return err
	}
	return evaluator.Eval(args[0], env)
}

// (parse "...") reads the first expression in the string, or gives nil if there is none.
func parse(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 1); err != nil {
		return err
	}
	s, err := toString(args[0])
	if err != nil {
		return err
	}
	expr, ok := parser.New("parse", s).ParseExpr()
	if !ok {
		return object.NIL
	}
	return expr
}

func typeOf(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 1); err != nil {
		return err
	}
	return sym(object.TypeOf(args[0]))
}

// (set! 'name value) changes the nearest existing binding of the name.
func set(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 2); err != nil {
		return err
	}
	s, ok := args[0].(*object.Symbol)
	if !ok {
		return object.NewSignature("symbol", object.TypeOf(args[0]))
	}
	if !env.Set(s.Name, args[1]) {
		return object.NewUndefined(s.Name)
	}
	return object.NIL
}

// (repeat n f) calls f with no arguments n times, stopping at the first error.
func repeat(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 2); err != nil {
		return err
	}
	n, err := toInt(args[0])
	if err != nil {
		return err
	}
	if !object.IsCallable(args[1]) {
		return object.NewSignature("procedure", object.TypeOf(args[1]))
	}
	for i := 0; i < n; i++ {
		if result := evaluator.Apply(args[1], nil, env); object.IsError(result) {
			return result
		}
	}
	return object.NIL
}

// (raise code description) makes a custom error.
func raise(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 2); err != nil {
		return err
	}
	code, err := toInt(args[0])
	if err != nil {
		return err
	}
	if code < 0 || code > math.MaxUint16 {
		return object.NewSignature("error code from 0 to 65535", object.FormatNumber(float64(code)))
	}
	description, err := toString(args[1])
	if err != nil {
		return err
	}
	return object.NewCustom(object.ErrorCode(code), description)
}

// (random) gives a number in [0, 1); (random n) gives an integer in [0, n).
func random(args []object.Expression, env *object.Environment) object.Expression {
	switch len(args) {
	case 0:
		return num(env.Rng.Float64())
	case 1:
		n, err := toInt(args[0])
		if err != nil {
			return err
		}
		if n <= 0 {
			return object.NewSignature("positive integer", object.FormatNumber(float64(n)))
		}
		return num(float64(env.Rng.IntN(n)))
	}
	return object.NewArity(1, len(args))
}

// Seconds since the Unix epoch.
func currentTime(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 0); err != nil {
		return err
	}
	return num(float64(time.Now().UnixNano()) / 1e9)
}

func scriptArgs(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 0); err != nil {
		return err
	}
	result := make([]object.Expression, 0, len(env.Args))
	for _, a := range env.Args {
		result = append(result, str(a))
	}
	return object.MakeList(result...)
}

// exit ends the process at once. It is the one way out that isn't an error value.
func exit(args []object.Expression, env *object.Environment) object.Expression {
	code := 0
	switch len(args) {
	case 0:
	case 1:
		n, err := toInt(args[0])
		if err != nil {
			return err
		}
		code = n
	default:
		return object.NewArity(1, len(args))
	}
	env.Log.WithField("code", code).Debug("exit")
	env.Exit(code)
	return object.NIL
}

func envVar(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 1); err != nil {
		return err
	}
	name, err := toString(args[0])
	if err != nil {
		return err
	}
	val, ok := os.LookupEnv(name)
	if !ok {
		return object.NewCustom(UNDEFINED_ENV_VAR, "undefined environment variable: \""+name+"\"")
	}
	return str(val)
}
