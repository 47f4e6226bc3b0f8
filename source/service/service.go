package service

// A Service is one self-contained interpreter: an environment with the whole built-in library
// loaded, the loader it imports files through, and its database connections. Services share no
// state, so any number can run in one process.

import (
	"bufio"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/rlisp-lang/rlisp/source/database"
	"github.com/rlisp-lang/rlisp/source/evaluator"
	"github.com/rlisp-lang/rlisp/source/intrinsics"
	"github.com/rlisp-lang/rlisp/source/loader"
	"github.com/rlisp-lang/rlisp/source/object"
	"github.com/rlisp-lang/rlisp/source/parser"
	"github.com/rlisp-lang/rlisp/source/settings"
	"github.com/rlisp-lang/rlisp/source/text"
)

type Service struct {
	env         *object.Environment
	loader      *loader.Loader
	connections *database.Connections
	lastError   *object.Error
}

// Returns a new service reading stdin and writing to stdout.
func NewService() *Service {
	env := object.NewEnvironment()
	ld := loader.New(settings.IMPORT_CACHE_SIZE, env.Log)
	intrinsics.Load(env, ld)
	return &Service{env: env, loader: ld, connections: database.Load(env)}
}

func (sv *Service) SetOutput(out io.Writer) {
	sv.env.Out = out
}

func (sv *Service) SetInput(in io.Reader) {
	sv.env.In = bufio.NewReader(in)
}

// SetExit replaces what the 'exit' intrinsic does, which is otherwise to end the process.
func (sv *Service) SetExit(exit func(int)) {
	sv.env.Exit = exit
}

// The arguments given to the script, as returned by the 'args' intrinsic.
func (sv *Service) SetArgs(args []string) {
	sv.env.Args = args
}

func (sv *Service) Logger() *logrus.Logger {
	return sv.env.Log
}

func (sv *Service) SetLogLevel(level logrus.Level) {
	sv.env.Log.SetLevel(level)
}

// Do reads and evaluates the line as though it had been typed into the REPL. A syntax or runtime
// error is returned as the expression.
func (sv *Service) Do(line string) object.Expression {
	expr := parser.Parse("REPL input", line)
	if !object.IsError(expr) {
		expr = evaluator.Eval(expr, sv.env)
	}
	sv.record(expr)
	return expr
}

// Import evaluates the file in the global scope, as the 'import' intrinsic does.
func (sv *Service) Import(path string) object.Expression {
	result := intrinsics.Import(sv.env, sv.loader, path)
	sv.record(result)
	return result
}

func (sv *Service) record(result object.Expression) {
	if err, ok := result.(*object.Error); ok {
		sv.lastError = err
		sv.env.Log.WithField("code", err.Code()).Debug(err.Message())
	}
}

// The most recent error returned by Do or Import, or nil if there hasn't been one.
func (sv *Service) LastError() *object.Error {
	return sv.lastError
}

// ExplainError gives the longer explanation of the last error.
func (sv *Service) ExplainError() (string, bool) {
	if sv.lastError == nil {
		return "", false
	}
	return object.Explain(sv.lastError.Code())
}

// GetTraceReport gives the error with the call sites it passed through, innermost first.
func GetTraceReport(e *object.Error) string {
	return text.DescribeError(e.Inspect(object.ViewLiteral), e.Trace())
}

// Names lists everything bound in the global scope.
func (sv *Service) Names() []string {
	return sv.env.Names()
}

// Close closes any database connections the service has open.
func (sv *Service) Close() {
	sv.connections.Close()
}

// Converts an expression to the string the REPL echoes.
func (sv *Service) ToLiteral(e object.Expression) string {
	return e.Inspect(object.ViewLiteral)
}

// Converts an expression to the string 'display' writes.
func (sv *Service) ToString(e object.Expression) string {
	return e.Inspect(object.ViewStdOut)
}
