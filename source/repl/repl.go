package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/shlex"
	"github.com/lmorg/readline"
	"golang.org/x/term"

	"github.com/rlisp-lang/rlisp/source/database"
	"github.com/rlisp-lang/rlisp/source/lexer"
	"github.com/rlisp-lang/rlisp/source/object"
	"github.com/rlisp-lang/rlisp/source/service"
	"github.com/rlisp-lang/rlisp/source/text"
)

// A LineReader is where the REPL gets its input: a line-editing terminal, or a plain stream when
// the input is piped in.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

type scannerReader struct {
	scanner *bufio.Scanner
}

func (s *scannerReader) SetPrompt(prompt string) {}

func (s *scannerReader) Readline() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

// NewLineReader uses line editing if the input is a terminal.
func NewLineReader(in io.Reader) LineReader {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return readline.NewInstance()
	}
	return &scannerReader{scanner: bufio.NewScanner(in)}
}

type Repl struct {
	sv     *service.Service
	reader LineReader
	out    io.Writer
}

func New(sv *service.Service, reader LineReader, out io.Writer) *Repl {
	return &Repl{sv: sv, reader: reader, out: out}
}

func Start(sv *service.Service, in io.Reader, out io.Writer) {
	fmt.Fprint(out, text.Logo())
	New(sv, NewLineReader(in), out).Run()
}

// Run reads and evaluates until the input runs out or the user quits. A line which leaves a list or
// string open is continued on the next.
func (r *Repl) Run() {
	var buffer strings.Builder
	for {
		if buffer.Len() == 0 {
			r.reader.SetPrompt(text.PROMPT)
		} else {
			r.reader.SetPrompt(text.CONTINUATION_PROMPT)
		}
		line, err := r.reader.Readline()
		if err != nil {
			if errors.Is(err, readline.CtrlC) {
				buffer.Reset()
				continue
			}
			return
		}
		if buffer.Len() == 0 {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if strings.HasPrefix(trimmed, ":") {
				if quit := r.meta(trimmed); quit {
					return
				}
				continue
			}
		}
		buffer.WriteString(line)
		buffer.WriteString("\n")
		if lexer.Incomplete(buffer.String()) {
			continue
		}
		r.evaluate(buffer.String())
		buffer.Reset()
	}
}

func (r *Repl) evaluate(input string) {
	r.show(r.sv.Do(input))
}

// show echoes a result. Nil isn't echoed.
func (r *Repl) show(result object.Expression) {
	if err, ok := result.(*object.Error); ok {
		fmt.Fprint(r.out, text.DescribeError(err.Inspect(object.ViewLiteral), nil))
		return
	}
	if object.IsNil(result) {
		return
	}
	fmt.Fprintln(r.out, r.sv.ToLiteral(result))
}

// meta carries out a REPL command, reporting whether it was ':quit'.
func (r *Repl) meta(line string) bool {
	words, err := shlex.Split(line)
	if err != nil || len(words) == 0 {
		fmt.Fprintln(r.out, text.Red("can't read that command: "+line))
		return false
	}
	switch words[0] {
	case ":help":
		fmt.Fprint(r.out, text.REPL_HELP)
	case ":why":
		explanation, ok := r.sv.ExplainError()
		if !ok {
			fmt.Fprintln(r.out, "There's no error to explain.")
			return false
		}
		fmt.Fprint(r.out, "\n"+text.Pretty(explanation, 2, 92)+"\n")
	case ":trace":
		if e := r.sv.LastError(); e != nil {
			fmt.Fprint(r.out, service.GetTraceReport(e))
		} else {
			fmt.Fprintln(r.out, "There's no error to trace.")
		}
	case ":drivers":
		fmt.Fprint(r.out, database.GetDriverOptions())
	case ":env":
		for _, name := range r.sv.Names() {
			fmt.Fprintln(r.out, text.BULLET+name)
		}
	case ":import":
		if len(words) != 2 {
			fmt.Fprintln(r.out, text.Red("':import' takes one file name"))
			return false
		}
		r.show(r.sv.Import(words[1]))
	case ":quit":
		return true
	default:
		fmt.Fprintln(r.out, text.Red("unknown command "+text.Emph(words[0])+"; try ':help'"))
	}
	return false
}
