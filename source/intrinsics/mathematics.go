package intrinsics

import (
	"math"

	"github.com/rlisp-lang/rlisp/source/object"
)

var mathematics = map[string]object.IntrinsicFn{
	"sin":        unary(math.Sin),
	"cos":        unary(math.Cos),
	"tan":        unary(math.Tan),
	"csc":        unary(func(x float64) float64 { return 1 / math.Sin(x) }),
	"sec":        unary(func(x float64) float64 { return 1 / math.Cos(x) }),
	"cot":        unary(func(x float64) float64 { return 1 / math.Tan(x) }),
	"asin":       unary(math.Asin),
	"acos":       unary(math.Acos),
	"atan":       unary(math.Atan),
	"atan2":      atan2,
	"floor":      unary(math.Floor),
	"ceil":       unary(math.Ceil),
	"sqrt":       sqrt,
	"pow":        pow,
	"exp":        exp,
	"ln":         ln,
	"quat":       quat,
	"quat-parts": quatParts,
	"norm":       norm,
}

func unary(f func(float64) float64) object.IntrinsicFn {
	return func(args []object.Expression, env *object.Environment) object.Expression {
		if err := checkArity(args, 1); err != nil {
			return err
		}
		x, err := toFloat(args[0])
		if err != nil {
			return err
		}
		return num(f(x))
	}
}

func atan2(args []object.Expression, env *object.Environment) object.Expression {
	return binary(args, math.Atan2)
}

// The square root of a negative number is imaginary.
func sqrt(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 1); err != nil {
		return err
	}
	x, err := toFloat(args[0])
	if err != nil {
		return err
	}
	if x < 0 {
		return &object.Quaternion{B: math.Sqrt(-x)}
	}
	return num(math.Sqrt(x))
}

// transcendental applies f to a number, or q to a quaternion.
func transcendental(args []object.Expression, f func(float64) float64,
	q func(*object.Quaternion) *object.Quaternion) object.Expression {
	if err := checkArity(args, 1); err != nil {
		return err
	}
	switch x := args[0].(type) {
	case *object.Number:
		return num(f(x.Value))
	case *object.Quaternion:
		return q(x)
	}
	return object.NewSignature("num", object.TypeOf(args[0]))
}

func exp(args []object.Expression, env *object.Environment) object.Expression {
	return transcendental(args, math.Exp, (*object.Quaternion).Exp)
}

func ln(args []object.Expression, env *object.Environment) object.Expression {
	return transcendental(args, math.Log, (*object.Quaternion).Ln)
}

func pow(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 2); err != nil {
		return err
	}
	floats, quats, err := numeric(args)
	if err != nil {
		return err
	}
	if quats != nil {
		return quats[0].Pow(quats[1])
	}
	if floats == nil {
		return badQuaternionArgs(args)
	}
	return num(math.Pow(floats[0], floats[1]))
}

// (quat a b c d)
func quat(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 4); err != nil {
		return err
	}
	xs, err := toFloats(args)
	if err != nil {
		return err
	}
	return &object.Quaternion{A: xs[0], B: xs[1], C: xs[2], D: xs[3]}
}

// (quat-parts q) gives the list of the four components. A number counts as a real quaternion.
func quatParts(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 1); err != nil {
		return err
	}
	q, err := toQuaternion(args[0])
	if err != nil {
		return err
	}
	return object.MakeList(num(q.A), num(q.B), num(q.C), num(q.D))
}

func norm(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 1); err != nil {
		return err
	}
	q, err := toQuaternion(args[0])
	if err != nil {
		return err
	}
	return num(q.Norm())
}

func toQuaternion(e object.Expression) (*object.Quaternion, *object.Error) {
	switch e := e.(type) {
	case *object.Quaternion:
		return e, nil
	case *object.Number:
		return object.Real(e.Value), nil
	}
	return nil, object.NewSignature("quaternion", object.TypeOf(e))
}
