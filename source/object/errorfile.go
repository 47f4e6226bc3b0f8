package object

// A map from error codes to longer explanations, as shown by the REPL's ':why' command. Codes used
// at more than one site share an explanation, so these are written in terms of the kind of mistake
// rather than the particular form that caught it.

var ErrorExplanations = map[ErrorCode]string{
	1: "A symbol was evaluated but no binding for it exists in any enclosing scope. Bindings made " +
		"inside a lambda, 'let' or 'cond' disappear when that form returns.",
	2: "The second argument of 'try' is the handler. It is evaluated before the guarded expression and " +
		"must evaluate to a procedure, which will be called with an 'error' struct if anything goes wrong.",
	3: "The head of a list being evaluated must evaluate to a procedure. If you meant the list as data, " +
		"quote it: '(1 2 3).",
	4: "Procedures take exactly as many arguments as they have parameters. There are no optional or " +
		"variadic parameters for lambdas.",
	5: "The reader found a closing bracket with no opening bracket to match it.",
	6: "The reader reached the end of the input while a list was still open, or an infix list " +
		"{a op b op c} uses more than one operator. Write {1 + 2 + 3} rather than {1 + 2 * 3}.",
	7: "The reader reached the end of the input while an infix list was still open.",
	8: "The reader reached the end of the input while a string was still open.",
	9: "An argument was of the wrong type. The message names the type that was expected and the type " +
		"that was found.",
	10: "'head' needs a list with at least one element.",
	11: "'tail' needs a list with at least one element.",
	12: "Output could not be written or flushed.",
	14: "A file could not be read. Relative paths given to 'import' are resolved against the directory of " +
		"the file doing the importing.",
	15: "Standard input could not be read.",
	17: "A lambda is written (lambda [params...] body...), where every parameter is a symbol.",
	18: "Each clause of a 'cond' is tested in turn, and the test must evaluate to a boolean.",
	19: "Each clause of a 'cond' is a list of exactly two elements: a test and a value.",
	20: "Each clause of a 'cond' must be a list.",
	21: "The first argument of 'let' is a list of bindings: (let ([x 1] [y 2]) body).",
	22: "The name in a 'let' binding must be a symbol.",
	23: "Each binding in a 'let' is a list of a name and a value.",
	24: "A 'let' needs a body to evaluate after its bindings.",
	25: "A value can only be bound to a symbol.",
	26: "'define' is written either (define name value) or (define (name params...) body...).",
	27: "The parameters of a function defined with 'define' must be symbols.",
	28: "The names define, cond, lambda, if and let are reserved and can't be rebound.",
	30: "A struct accessor was applied to something which isn't a struct of its type.",
	31: "'define-struct' could not register the struct type.",
	32: "An interpolation #{...} in a format string was not closed.",
	33: "'unquote' (or ',') only has a meaning inside a quasiquoted expression.",
	34: "'display-pretty' was given a colour it doesn't know. The colours are black, red, green, yellow, " +
		"blue, magenta, cyan and white, or none.",
	35: "'display-pretty' was given a style it doesn't know. The styles are plain, bold, faint, italic, " +
		"underline, blink and reverse.",
	36: "The named environment variable is not set.",
	37: "A macro rule is written (define-macro-rule (name pattern...) body), so the pattern needs at " +
		"least a name.",
	38: "The first element of a macro rule's pattern is the macro's name and must be a symbol.",
	40: "The pattern of a macro rule must be a list.",
	42: "A macro was called in a shape that doesn't match its pattern. The message shows the first " +
		"place where the call and the pattern differ.",
	43: "An HTTP request failed, even after retrying.",
	44: "The database returned an error.",
	45: "There is no open database connection with that name, or no driver of that name.",
	46: "A password could not be hashed, or something needed for encryption could not be made.",
	47: "'decrypt' needs the password that was given to 'encrypt', and text exactly as 'encrypt' produced it.",
	100: "An integer was needed, but the number given has a fractional part or is too large to be one.",
}

// Explain returns the explanation of the code, if there is one.
func Explain(code ErrorCode) (string, bool) {
	s, ok := ErrorExplanations[code]
	return s, ok
}
