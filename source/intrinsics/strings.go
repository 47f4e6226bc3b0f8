package intrinsics

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rlisp-lang/rlisp/source/evaluator"
	"github.com/rlisp-lang/rlisp/source/object"
	"github.com/rlisp-lang/rlisp/source/parser"
)

var stringFunctions = map[string]object.IntrinsicFn{
	"format":          format,
	"string-concat":   stringConcat,
	"string-upcase":   caser(func() cases.Caser { return cases.Upper(language.Und) }),
	"string-downcase": caser(func() cases.Caser { return cases.Lower(language.Und) }),
	"string-title":    caser(func() cases.Caser { return cases.Title(language.Und) }),
}

// (format "1 + 2 = #{(+ 1 2)}") gives "1 + 2 = 3". Anything which isn't a string is formatted as
// 'display' would show it.
func format(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 1); err != nil {
		return err
	}
	s, ok := args[0].(*object.String)
	if !ok {
		return str(args[0].Inspect(object.ViewStdOut))
	}
	sections, err := splitInterpolations(s.Value)
	if err != nil {
		return err
	}
	var buf strings.Builder
	for _, section := range sections {
		if !section.isExpr {
			buf.WriteString(section.text)
			continue
		}
		expr, ok := parser.New("format", section.text).ParseExpr()
		if !ok {
			return object.NewSyntax(UNCLOSED_INTERPOLATE, "format string must contain expression to interpolate")
		}
		if object.IsError(expr) {
			return expr
		}
		val := env.WithScope(func() object.Expression {
			return evaluator.Eval(expr, env)
		})
		if object.IsError(val) {
			return val
		}
		buf.WriteString(val.Inspect(object.ViewStdOut))
	}
	return str(buf.String())
}

type section struct {
	text   string
	isExpr bool
}

// splitInterpolations cuts the string into literal text and the contents of #{...} sections.
// Braces inside a section nest, except inside a string literal.
func splitInterpolations(s string) ([]section, *object.Error) {
	result := []section{}
	runes := []rune(s)
	last := 0
	depth := 0
	inExpr := false
	inString := false
	escaped := false
	for i, r := range runes {
		switch {
		case inString:
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
		case r == '"' && inExpr:
			inString = true
		case r == '{' && !inExpr && i > 0 && runes[i-1] == '#':
			result = append(result, section{text: string(runes[last : i-1])})
			inExpr = true
			last = i + 1
		case r == '{' && inExpr:
			depth++
		case r == '}' && inExpr:
			if depth > 0 {
				depth--
				continue
			}
			result = append(result, section{text: string(runes[last:i]), isExpr: true})
			inExpr = false
			last = i + 1
		}
	}
	if inExpr {
		return nil, object.NewSyntax(UNCLOSED_INTERPOLATE, "unclosed expression while interpolating string")
	}
	if last < len(runes) {
		result = append(result, section{text: string(runes[last:])})
	}
	return result, nil
}

func stringConcat(args []object.Expression, env *object.Environment) object.Expression {
	var buf strings.Builder
	for _, arg := range args {
		buf.WriteString(arg.Inspect(object.ViewStdOut))
	}
	return str(buf.String())
}

// A Caser keeps state between calls, so each call gets a new one.
func caser(makeCaser func() cases.Caser) object.IntrinsicFn {
	return func(args []object.Expression, env *object.Environment) object.Expression {
		if err := checkArity(args, 1); err != nil {
			return err
		}
		s, err := toString(args[0])
		if err != nil {
			return err
		}
		return str(makeCaser().String(s))
	}
}
