package intrinsics_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rlisp-lang/rlisp/source/service"
	"github.com/rlisp-lang/rlisp/source/test_helper"
)

func TestImport(t *testing.T) {
	tests := []test_helper.TestItem{
		{`(double 2)`, `4`},
		{`(triple 2)`, `6`},
		{`greeting`, `"hello"`},
		{`__FILE__`, "error[001]: undefined symbol: `__FILE__`"},
		{`(import "test-files/missing.rl")`, `error[014]: could not read file test-files/missing.rl`},
		{`(import "test-files/unclosed.rl")`, `error[006]: syntax error: unclosed list`},
		{`(import 1)`, `error[009]: signature mismatch: expected string, found num`},
	}
	test_helper.RunTest(t, "main.rl", tests, test_helper.TestValues)
}

func TestImportHappensOnce(t *testing.T) {
	tests := []test_helper.TestItem{
		{`(import "test-files/greet.rl")`, ` => ()`},
		{`(begin (import "test-files/sub/helper.rl") (import "test-files/main.rl"))`, ` => ()`},
	}
	test_helper.RunTest(t, "main.rl", tests, test_helper.TestOutput)
	tests = []test_helper.TestItem{
		{`(begin (import "test-files/greet.rl") (import "test-files/greet.rl"))`, `greetings => ()`},
	}
	test_helper.RunTest(t, "", tests, test_helper.TestOutput)
}

func TestReadfile(t *testing.T) {
	tests := []test_helper.TestItem{
		{`(readfile "test-files/data.txt")`, `"some data"`},
		{`(readfile "test-files/missing.txt")`, `error[014]: could not read file test-files/missing.txt`},
	}
	test_helper.RunTest(t, "", tests, test_helper.TestValues)
}

func TestFailedImportCanBeRetried(t *testing.T) {
	path := filepath.Join(t.TempDir(), "retry.rl")
	write := func(src string) {
		if err := os.WriteFile(path, []byte(src), 0644); err != nil {
			t.Fatal(err)
		}
	}
	sv := service.NewService()
	defer sv.Close()
	steps := []struct {
		src, input, want string
	}{
		{"(define a 1) (nope)", `(import "` + path + `")`, "error[001]: undefined symbol: `nope`"},
		{"(define a 1) (define b 2)", `(import "` + path + `")`, `()`},
		{"", `b`, `2`},
		{"(define b 3)", `(begin (import "` + path + `") b)`, `2`},
	}
	for i, step := range steps {
		if step.src != "" {
			write(step.src)
		}
		if got := sv.ToLiteral(sv.Do(step.input)); got != step.want {
			t.Fatalf("steps[%d] - Test failed with input %s | Wanted : %s | Got : %s.", i, step.input, step.want, got)
		}
	}
}
