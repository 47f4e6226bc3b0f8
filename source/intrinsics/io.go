package intrinsics

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/rlisp-lang/rlisp/source/object"
	"github.com/rlisp-lang/rlisp/source/text"
)

var inputOutput = map[string]object.IntrinsicFn{
	"display":        display(object.ViewStdOut),
	"display-debug":  display(object.ViewDebug),
	"display-pretty": displayPretty,
	"newline":        newline,
	"readline":       readline,
	"print-error":    printError,
}

func write(env *object.Environment, s string) object.Expression {
	if _, err := fmt.Fprint(env.Out, s); err != nil {
		return object.NewCustom(OUTPUT_FAILED, "could not write to output: "+err.Error())
	}
	return object.NIL
}

// The display intrinsics write their arguments one after another, with nothing in between.
func display(view object.View) object.IntrinsicFn {
	return func(args []object.Expression, env *object.Environment) object.Expression {
		var buf strings.Builder
		for _, arg := range args {
			buf.WriteString(arg.Inspect(view))
		}
		return write(env, buf.String())
	}
}

// (display-pretty 'colour 'style value)
func displayPretty(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 3); err != nil {
		return err
	}
	colourName, ok := args[0].(*object.Symbol)
	if !ok {
		return object.NewSignature("symbol", object.TypeOf(args[0]))
	}
	styleName, ok := args[1].(*object.Symbol)
	if !ok {
		return object.NewSignature("symbol", object.TypeOf(args[1]))
	}
	attributes := []color.Attribute{}
	if colourName.Name != "none" {
		c, ok := text.Colors[colourName.Name]
		if !ok {
			return object.NewCustom(UNKNOWN_COLOR, "color not found: "+colourName.Name)
		}
		attributes = append(attributes, c)
	}
	style, ok := text.Styles[styleName.Name]
	if !ok {
		return object.NewCustom(UNKNOWN_STYLE, "style not found: "+styleName.Name)
	}
	attributes = append(attributes, style)
	return write(env, color.New(attributes...).Sprint(args[2].Inspect(object.ViewStdOut)))
}

func newline(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 0); err != nil {
		return err
	}
	return write(env, "\n")
}

// readline gives the next line of input without its line ending.
func readline(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 0); err != nil {
		return err
	}
	line, err := env.In.ReadString('\n')
	if err != nil && line == "" {
		return object.NewCustom(STDIN_UNREADABLE, "failed to read stdin")
	}
	return str(strings.TrimRight(line, "\r\n"))
}

// (print-error e) writes out an 'error' struct, as given to a 'try' handler, with its trace.
func printError(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 1); err != nil {
		return err
	}
	e, ok := args[0].(*object.Struct)
	if !ok || e.TypeId != env.ErrorId {
		return object.NewSignature("error", object.TypeOf(args[0]))
	}
	code, _ := e.Field(0).(*object.Number)
	description, _ := e.Field(1).(*object.String)
	if code == nil || description == nil {
		return object.NewSignature("error", object.TypeOf(args[0]))
	}
	banner := fmt.Sprintf("error[%03d]: %s", int(code.Value), description.Value)
	trace := []string{}
	if stack, ok := e.Field(2).(*object.Cons); ok {
		for i, site := range stack.List.All() {
			trace = append(trace, "at ["+strconv.Itoa(i)+"] "+site.Inspect(object.ViewLiteral))
		}
	}
	return write(env, text.DescribeError(banner, trace))
}
