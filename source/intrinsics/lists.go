package intrinsics

import (
	"unicode/utf8"

	"github.com/rlisp-lang/rlisp/source/object"
)

var lists = map[string]object.IntrinsicFn{
	"cons":   cons,
	":":      cons,
	"head":   head,
	"tail":   tail,
	"list":   list,
	"length": length,
	"chars":  chars,
	"++":     appendLists,
	"append": appendLists,
	"empty?": empty,
}

func cons(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 2); err != nil {
		return err
	}
	l, err := toList(args[1])
	if err != nil {
		return err
	}
	return &object.Cons{List: l.Cons(args[0])}
}

func head(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 1); err != nil {
		return err
	}
	l, err := toList(args[0])
	if err != nil {
		return err
	}
	h, ok := l.Head()
	if !ok {
		return object.NewCustom(EMPTY_HEAD, "cannot get the head of an empty list")
	}
	return h
}

func tail(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 1); err != nil {
		return err
	}
	l, err := toList(args[0])
	if err != nil {
		return err
	}
	t, ok := l.Tail()
	if !ok {
		return object.NewCustom(EMPTY_TAIL, "cannot get the tail of an empty list")
	}
	return &object.Cons{List: t}
}

func list(args []object.Expression, env *object.Environment) object.Expression {
	return object.MakeList(args...)
}

// The length of a string is counted in characters.
func length(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 1); err != nil {
		return err
	}
	switch x := args[0].(type) {
	case *object.Cons:
		return num(float64(x.List.Len()))
	case *object.String:
		return num(float64(utf8.RuneCountInString(x.Value)))
	}
	return object.NewSignature("cons", object.TypeOf(args[0]))
}

func chars(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 1); err != nil {
		return err
	}
	s, err := toString(args[0])
	if err != nil {
		return err
	}
	result := []object.Expression{}
	for _, r := range s {
		result = append(result, str(string(r)))
	}
	return object.MakeList(result...)
}

// Every list but the last is copied; the last is shared with the result.
func appendLists(args []object.Expression, env *object.Environment) object.Expression {
	if len(args) == 0 {
		return object.NIL
	}
	result, err := toList(args[len(args)-1])
	if err != nil {
		return err
	}
	for i := len(args) - 2; i >= 0; i-- {
		l, err := toList(args[i])
		if err != nil {
			return err
		}
		result = l.Append(result)
	}
	return &object.Cons{List: result}
}

func empty(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 1); err != nil {
		return err
	}
	l, err := toList(args[0])
	if err != nil {
		return err
	}
	return object.MakeBool(l.IsEmpty())
}
