package pattern

// Structural matching of expression trees, used by macro rules. A pattern is an expression in
// which every symbol is a variable except the literal keywords.

import (
	"slices"

	"github.com/rlisp-lang/rlisp/source/object"
)

const MATCH_FAILURE object.ErrorCode = 42

type Matches map[string]object.Expression

// Match binds the variables of the pattern to the corresponding parts of the input.
func Match(keywords []string, pattern, input object.Expression) (Matches, *object.Error) {
	matches := Matches{}
	if err := extractMatches(keywords, pattern, input, matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func extractMatches(keywords []string, pattern, input object.Expression, to Matches) *object.Error {
	switch pat := pattern.(type) {
	case *object.Symbol:
		if slices.Contains(keywords, pat.Name) {
			if in, ok := input.(*object.Symbol); ok && in.Name == pat.Name {
				return nil
			}
			return failure(pattern, input)
		}
		to[pat.Name] = input
		return nil
	case *object.Cons:
		in, ok := input.(*object.Cons)
		if !ok || in.List.Len() != pat.List.Len() {
			return failure(pattern, input)
		}
		inputs := in.List.Slice()
		for i, p := range pat.List.All() {
			if err := extractMatches(keywords, p, inputs[i], to); err != nil {
				return err
			}
		}
		return nil
	}
	if object.Equals(pattern, input) {
		return nil
	}
	return failure(pattern, input)
}

func failure(pattern, input object.Expression) *object.Error {
	return object.NewCustom(MATCH_FAILURE, "pattern match failure: expected `"+
		pattern.Inspect(object.ViewLiteral)+"`, found `"+input.Inspect(object.ViewLiteral)+"`")
}

// ReplaceSymbols substitutes matched values for symbols throughout the expression. The values
// themselves are not searched, so substitution happens exactly once.
func ReplaceSymbols(expr object.Expression, matches Matches) object.Expression {
	switch expr := expr.(type) {
	case *object.Symbol:
		if val, ok := matches[expr.Name]; ok {
			return val
		}
		return expr
	case *object.Cons:
		return &object.Cons{List: expr.List.Map(func(e object.Expression) object.Expression {
			return ReplaceSymbols(e, matches)
		})}
	}
	return expr
}

// ExtractSymbols lists, in order of appearance, every symbol in the expression that isn't one of the
// excluded names. A symbol appearing more than once is listed once.
func ExtractSymbols(exclude []string, expr object.Expression) []string {
	result := []string{}
	seen := map[string]bool{}
	var walk func(object.Expression)
	walk = func(e object.Expression) {
		switch e := e.(type) {
		case *object.Symbol:
			if !seen[e.Name] && !slices.Contains(exclude, e.Name) {
				seen[e.Name] = true
				result = append(result, e.Name)
			}
		case *object.Cons:
			for _, child := range e.List.All() {
				walk(child)
			}
		}
	}
	walk(expr)
	return result
}
