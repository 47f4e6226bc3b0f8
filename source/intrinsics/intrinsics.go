package intrinsics

// The built-in library. Macros receive their call list unevaluated; intrinsics receive their
// arguments evaluated. Each file holds a table of one family of them, and Load installs them all
// into an environment before any user code runs.

import (
	"math"

	"github.com/rlisp-lang/rlisp/source/loader"
	"github.com/rlisp-lang/rlisp/source/object"
	"github.com/rlisp-lang/rlisp/source/settings"
	"github.com/rlisp-lang/rlisp/source/text"
)

// Codes for the errors raised here. The arity, signature and undefined codes live with the
// error types.
const (
	HANDLER_NOT_CALLABLE object.ErrorCode = 2
	EMPTY_HEAD           object.ErrorCode = 10
	EMPTY_TAIL           object.ErrorCode = 11
	OUTPUT_FAILED        object.ErrorCode = 12
	FILE_UNREADABLE      object.ErrorCode = 14
	STDIN_UNREADABLE     object.ErrorCode = 15
	LAMBDA_SYNTAX        object.ErrorCode = 17
	COND_NOT_BOOL        object.ErrorCode = 18
	COND_CASE_LENGTH     object.ErrorCode = 19
	COND_CASE_NOT_LIST   object.ErrorCode = 20
	LET_BINDINGS         object.ErrorCode = 21
	LET_IDENTIFIER       object.ErrorCode = 22
	LET_BINDING          object.ErrorCode = 23
	LET_BODY             object.ErrorCode = 24
	DEFINE_TARGET        object.ErrorCode = 25
	DEFINE_SHAPE         object.ErrorCode = 26
	DEFINE_PARAMS        object.ErrorCode = 27
	RESERVED_IDENTIFIER  object.ErrorCode = 28
	BAD_ACCESSOR         object.ErrorCode = 30
	STRUCT_DEFINITION    object.ErrorCode = 31
	UNCLOSED_INTERPOLATE object.ErrorCode = 32
	UNKNOWN_COLOR        object.ErrorCode = 34
	UNKNOWN_STYLE        object.ErrorCode = 35
	UNDEFINED_ENV_VAR    object.ErrorCode = 36
	MACRO_NAME_MISSING   object.ErrorCode = 37
	MACRO_NAME_SYMBOL    object.ErrorCode = 38
	MACRO_PATTERN        object.ErrorCode = 40
	REQUEST_FAILED       object.ErrorCode = 43
	HASH_FAILED          object.ErrorCode = 46
	DECRYPTION_FAILED    object.ErrorCode = 47
	NOT_INTEGRAL         object.ErrorCode = 100
)

// A Library is a family of intrinsics and macros to be installed together.
type Library struct {
	Intrinsics map[string]object.IntrinsicFn
	Macros     map[string]object.MacroFn
}

func (lib Library) Install(env *object.Environment) {
	for name, fn := range lib.Macros {
		env.DefineMacro(name, fn)
	}
	for name, fn := range lib.Intrinsics {
		env.DefineIntrinsic(name, fn)
	}
}

// NewEnvironment gives an environment with the whole built-in library installed, importing files
// through the loader.
func NewEnvironment(ld *loader.Loader) *object.Environment {
	env := object.NewEnvironment()
	Load(env, ld)
	return env
}

func Load(env *object.Environment, ld *loader.Loader) {
	for _, lib := range []Library{
		{Macros: macros},
		{Intrinsics: arithmetic},
		{Intrinsics: mathematics},
		{Intrinsics: lists},
		{Intrinsics: stringFunctions},
		{Intrinsics: inputOutput},
		{Intrinsics: system},
		{Intrinsics: cryptography},
		{Intrinsics: network},
		files(ld),
	} {
		lib.Install(env)
	}
	env.Insert("begin", object.BeginForm)
	env.Insert("pi", &object.Number{Value: math.Pi})
	env.Insert("e", &object.Number{Value: math.E})
	env.Insert("version", &object.String{Value: text.VERSION})
	env.ErrorId = defineStruct(env, "error", []string{"code", "description", "stack"})
}

// NewDefaultEnvironment is NewEnvironment with a loader of the default size.
func NewDefaultEnvironment() *object.Environment {
	env := object.NewEnvironment()
	Load(env, loader.New(settings.IMPORT_CACHE_SIZE, env.Log))
	return env
}

// Helpers for checking arguments.

func checkArity(args []object.Expression, n int) *object.Error {
	if len(args) != n {
		return object.NewArity(n, len(args))
	}
	return nil
}

func checkMinArity(args []object.Expression, n int) *object.Error {
	if len(args) < n {
		return object.NewArity(n, len(args))
	}
	return nil
}

func toFloat(e object.Expression) (float64, *object.Error) {
	if n, ok := e.(*object.Number); ok {
		return n.Value, nil
	}
	return 0, object.NewSignature("num", object.TypeOf(e))
}

func toFloats(args []object.Expression) ([]float64, *object.Error) {
	result := make([]float64, len(args))
	for i, arg := range args {
		f, err := toFloat(arg)
		if err != nil {
			return nil, err
		}
		result[i] = f
	}
	return result, nil
}

func toInt(e object.Expression) (int, *object.Error) {
	f, err := toFloat(e)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, object.NewCustom(NOT_INTEGRAL, "expected integral number, found "+object.FormatNumber(f))
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, object.NewCustom(NOT_INTEGRAL, "integer out of range: "+object.FormatNumber(f))
	}
	return int(f), nil
}

func toString(e object.Expression) (string, *object.Error) {
	if s, ok := e.(*object.String); ok {
		return s.Value, nil
	}
	return "", object.NewSignature("string", object.TypeOf(e))
}

func toBool(e object.Expression) (bool, *object.Error) {
	if b, ok := e.(*object.Boolean); ok {
		return b.Value, nil
	}
	return false, object.NewSignature("bool", object.TypeOf(e))
}

func toList(e object.Expression) (object.ConsList, *object.Error) {
	if c, ok := e.(*object.Cons); ok {
		return c.List, nil
	}
	return object.ConsList{}, object.NewSignature("cons", object.TypeOf(e))
}

func num(f float64) *object.Number {
	return &object.Number{Value: f}
}

func str(s string) *object.String {
	return &object.String{Value: s}
}

func sym(s string) *object.Symbol {
	return &object.Symbol{Name: s}
}
