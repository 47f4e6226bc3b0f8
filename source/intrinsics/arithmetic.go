package intrinsics

// Arithmetic, comparison and logic. Arithmetic works on plain numbers and promotes to quaternions
// if any argument is one; the other intrinsics here take plain numbers only.

import (
	"math"

	"github.com/rlisp-lang/rlisp/source/object"
)

var arithmetic = map[string]object.IntrinsicFn{
	"+":   add,
	"-":   sub,
	"*":   mul,
	"/":   div,
	"%":   mod,
	"rem": rem,
	"eq?": eq,
	"=":   eq,
	">":   comparison(func(a, b float64) bool { return a > b }),
	">=":  comparison(func(a, b float64) bool { return a >= b }),
	"<":   comparison(func(a, b float64) bool { return a < b }),
	"<=":  comparison(func(a, b float64) bool { return a <= b }),
	"and": and,
	"&&":  and,
	"or":  or,
	"||":  or,
	"not": not,
}

// numeric sorts the arguments of an arithmetic intrinsic. If they are all numbers it returns their
// values; if some are quaternions it returns them all as quaternions.
func numeric(args []object.Expression) ([]float64, []*object.Quaternion, *object.Error) {
	floats := make([]float64, 0, len(args))
	for _, arg := range args {
		switch arg := arg.(type) {
		case *object.Number:
			floats = append(floats, arg.Value)
		case *object.Quaternion:
			return nil, promote(args), nil
		default:
			return nil, nil, object.NewSignature("num", object.TypeOf(arg))
		}
	}
	return floats, nil, nil
}

func promote(args []object.Expression) []*object.Quaternion {
	result := make([]*object.Quaternion, 0, len(args))
	for _, arg := range args {
		switch arg := arg.(type) {
		case *object.Number:
			result = append(result, object.Real(arg.Value))
		case *object.Quaternion:
			result = append(result, arg)
		default:
			return nil
		}
	}
	return result
}

// fold applies the operation left to right across the arguments, in whichever of the two number
// systems they call for.
func fold(args []object.Expression, f func(a, b float64) float64,
	q func(a, b *object.Quaternion) *object.Quaternion) object.Expression {
	floats, quats, err := numeric(args)
	if err != nil {
		return err
	}
	if quats == nil && len(floats) != len(args) {
		return badQuaternionArgs(args)
	}
	if quats != nil {
		acc := quats[0]
		for _, x := range quats[1:] {
			acc = q(acc, x)
		}
		return acc
	}
	acc := floats[0]
	for _, x := range floats[1:] {
		acc = f(acc, x)
	}
	return num(acc)
}

// A list with a quaternion in it and something that is neither a number nor a quaternion.
func badQuaternionArgs(args []object.Expression) *object.Error {
	for _, arg := range args {
		switch arg.(type) {
		case *object.Number, *object.Quaternion:
		default:
			return object.NewSignature("num", object.TypeOf(arg))
		}
	}
	return object.NewSignature("num", "unknown")
}

func add(args []object.Expression, env *object.Environment) object.Expression {
	if len(args) == 0 {
		return num(0)
	}
	return fold(args, func(a, b float64) float64 { return a + b }, (*object.Quaternion).Add)
}

func sub(args []object.Expression, env *object.Environment) object.Expression {
	switch len(args) {
	case 0:
		return object.NewArity(1, 0)
	case 1:
		switch x := args[0].(type) {
		case *object.Number:
			return num(-x.Value)
		case *object.Quaternion:
			return x.Neg()
		}
		return object.NewSignature("num", object.TypeOf(args[0]))
	}
	return fold(args, func(a, b float64) float64 { return a - b }, (*object.Quaternion).Sub)
}

func mul(args []object.Expression, env *object.Environment) object.Expression {
	if len(args) == 0 {
		return num(1)
	}
	return fold(args, func(a, b float64) float64 { return a * b }, (*object.Quaternion).Mul)
}

func div(args []object.Expression, env *object.Environment) object.Expression {
	switch len(args) {
	case 0:
		return object.NewArity(1, 0)
	case 1:
		switch x := args[0].(type) {
		case *object.Number:
			return num(1 / x.Value)
		case *object.Quaternion:
			return x.Inverse()
		}
		return object.NewSignature("num", object.TypeOf(args[0]))
	}
	return fold(args, func(a, b float64) float64 { return a / b }, (*object.Quaternion).Div)
}

func binary(args []object.Expression, f func(a, b float64) float64) object.Expression {
	if err := checkArity(args, 2); err != nil {
		return err
	}
	xs, err := toFloats(args)
	if err != nil {
		return err
	}
	return num(f(xs[0], xs[1]))
}

// The result of % takes the sign of the divisor.
func mod(args []object.Expression, env *object.Environment) object.Expression {
	return binary(args, func(a, b float64) float64 {
		return a - b*math.Floor(a/b)
	})
}

// The result of rem takes the sign of the dividend.
func rem(args []object.Expression, env *object.Environment) object.Expression {
	return binary(args, math.Mod)
}

func eq(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkMinArity(args, 2); err != nil {
		return err
	}
	for i := 1; i < len(args); i++ {
		if !object.Equals(args[i-1], args[i]) {
			return object.FALSE
		}
	}
	return object.TRUE
}

// Comparisons chain, so (< 1 2 3) says that the arguments are increasing.
func comparison(f func(a, b float64) bool) object.IntrinsicFn {
	return func(args []object.Expression, env *object.Environment) object.Expression {
		if err := checkMinArity(args, 2); err != nil {
			return err
		}
		xs, err := toFloats(args)
		if err != nil {
			return err
		}
		for i := 1; i < len(xs); i++ {
			if !f(xs[i-1], xs[i]) {
				return object.FALSE
			}
		}
		return object.TRUE
	}
}

func and(args []object.Expression, env *object.Environment) object.Expression {
	result := true
	for _, arg := range args {
		b, err := toBool(arg)
		if err != nil {
			return err
		}
		result = result && b
	}
	return object.MakeBool(result)
}

func or(args []object.Expression, env *object.Environment) object.Expression {
	result := false
	for _, arg := range args {
		b, err := toBool(arg)
		if err != nil {
			return err
		}
		result = result || b
	}
	return object.MakeBool(result)
}

func not(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 1); err != nil {
		return err
	}
	b, err := toBool(args[0])
	if err != nil {
		return err
	}
	return object.MakeBool(!b)
}
