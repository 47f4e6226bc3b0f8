package text

// This consists of a bunch of text utilities to help in generating pretty and meaningful
// help messages, error messages, etc.

import (
	"strings"

	"github.com/fatih/color"
)

const (
	VERSION             = "0.5.0"
	BULLET              = "  ▪ "
	BULLET_SPACING      = "    " // I.e. whitespace the same width as BULLET.
	PROMPT              = "λ "
	CONTINUATION_PROMPT = "… "
)

var (
	red    = color.New(color.FgRed).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

func Red(s string) string {
	return red(s)
}

func Green(s string) string {
	return green(s)
}

func Yellow(s string) string {
	return yellow(s)
}

func Cyan(s string) string {
	return cyan(s)
}

func Emph(s string) string {
	return "'" + s + "'"
}

var Colors = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

var Styles = map[string]color.Attribute{
	"plain":     color.Reset,
	"bold":      color.Bold,
	"faint":     color.Faint,
	"italic":    color.Italic,
	"underline": color.Underline,
	"blink":     color.BlinkSlow,
	"reverse":   color.ReverseVideo,
}

func Logo() string {
	titleText := " rlisp version " + VERSION + " "
	lambda := Red("λ")
	leftMargin := "  "
	bar := strings.Repeat("═", len(titleText)/2)
	return "\n" +
		leftMargin + "╔" + bar + lambda + bar + "╗\n" +
		leftMargin + "║" + titleText + " ║\n" +
		leftMargin + "╚" + bar + lambda + bar + "╝\n\n"
}

const HELP = "\nUsage: rlisp [-L <file> | --lib <file>] [-i | --interactive] [-v | --verbose]\n" +
	"             [--version] [-h | --help] [INPUT [ARGS...]]\n\n" +
	"Runs the file INPUT if one is given, and starts the REPL if none is or if -i is set.\n" +
	"The library given by --lib, or else $RLISP_HOME/loader.rl, is imported first.\n\n"

const REPL_HELP = "\nMeta-commands are:\n\n" +
	BULLET + "':help'            shows this message\n" +
	BULLET + "':why'             explains the last error\n" +
	BULLET + "':trace'           shows where the last error came from\n" +
	BULLET + "':env'             lists the names that are bound\n" +
	BULLET + "':drivers'         lists the SQL drivers 'sql-open' accepts\n" +
	BULLET + "':import <file>'   imports a file\n" +
	BULLET + "':quit'            quits\n\n" +
	"Anything else is evaluated.\n\n"

// DescribeError gives the banner for an error followed by its trace lines, if wanted.
func DescribeError(banner string, trace []string) string {
	var out strings.Builder
	out.WriteString(Red(banner))
	out.WriteString("\n")
	for _, line := range trace {
		out.WriteString(BULLET_SPACING + line + "\n")
	}
	return out.String()
}

// Pretty word-wraps s between the margins, highlighting anything enclosed in single quotes as code.
func Pretty(s string, lMargin, rMargin int) string {
	width := rMargin - lMargin
	var out strings.Builder
	line := ""
	flush := func() {
		out.WriteString(strings.Repeat(" ", lMargin) + HighlightLine(line) + "\n")
		line = ""
	}
	for _, word := range strings.Fields(s) {
		if line != "" && len([]rune(line))+1+len([]rune(word)) > width {
			flush()
		}
		if line == "" {
			line = word
		} else {
			line = line + " " + word
		}
	}
	if line != "" {
		flush()
	}
	return out.String()
}

// HighlightLine colours anything enclosed in '...'. A quote only opens a highlight at the start
// of a word, since otherwise it might be an apostrophe.
func HighlightLine(plainLine string) string {
	var out strings.Builder
	var code strings.Builder
	inCode := false
	prevCh := ' '
	for _, ch := range plainLine {
		switch {
		case !inCode && ch == '\'' && prevCh == ' ':
			inCode = true
			code.Reset()
			code.WriteRune(ch)
		case inCode && ch == '\'':
			code.WriteRune(ch)
			out.WriteString(Cyan(code.String()))
			inCode = false
		case inCode:
			code.WriteRune(ch)
		default:
			out.WriteRune(ch)
		}
		prevCh = ch
	}
	if inCode {
		out.WriteString(code.String())
	}
	return out.String()
}
