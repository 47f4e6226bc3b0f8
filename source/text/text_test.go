package text

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestPretty(t *testing.T) {
	color.NoColor = true
	got := Pretty("A lambda is written (lambda [params...] body...), where every parameter is a symbol.", 2, 30)
	for i, line := range strings.Split(strings.TrimRight(got, "\n"), "\n") {
		if !strings.HasPrefix(line, "  ") {
			t.Fatalf("line %d is not indented: %q", i, line)
		}
		if len([]rune(line)) > 30 {
			t.Fatalf("line %d is too long: %q", i, line)
		}
	}
}

func TestHighlightLine(t *testing.T) {
	color.NoColor = false
	defer func() { color.NoColor = true }()
	got := HighlightLine("use 'head' on a list, don't")
	if !strings.Contains(got, Cyan("'head'")) {
		t.Fatalf("code was not highlighted: %q", got)
	}
	if !strings.HasSuffix(got, "don't") {
		t.Fatalf("apostrophe should not start a highlight: %q", got)
	}
}
