package service_test

import (
	"bytes"
	"slices"
	"testing"

	"github.com/fatih/color"

	"github.com/rlisp-lang/rlisp/source/object"
	"github.com/rlisp-lang/rlisp/source/service"
	"github.com/rlisp-lang/rlisp/source/test_helper"
)

func TestLibrary(t *testing.T) {
	tests := []test_helper.TestItem{
		{`(fact 5)`, `120`},
		{`(pair-left (swap (make-pair 1 2)))`, `2`},
		{`(is-pair? (make-pair 1 2))`, `true`},
		{`(broken 1)`, "error[001]: undefined symbol: `undefined-thing`"},
	}
	test_helper.RunTest(t, "library.rl", tests, test_helper.TestValues)
}

func TestErrorCodes(t *testing.T) {
	tests := []test_helper.TestItem{
		{`(`, `6`},
		{`)`, `5`},
		{`{1 + 2`, `7`},
		{`"abc`, `8`},
		{`(1 2)`, `3`},
		{`((lambda (x) x))`, `4`},
		{`(+ "a")`, `9`},
		{`,a`, `33`},
		{`(+ 1 2)`, "unexpected successful evaluation returned '3'"},
	}
	test_helper.RunTest(t, "", tests, test_helper.TestErrorCodes)
}

func TestServicesAreIndependent(t *testing.T) {
	first := service.NewService()
	second := service.NewService()
	defer first.Close()
	defer second.Close()
	first.Do(`(define x 1)`)
	if got := second.ToLiteral(second.Do(`x`)); got != "error[001]: undefined symbol: `x`" {
		t.Fatalf("definition leaked between services: got %s", got)
	}
	if got := first.ToLiteral(first.Do(`x`)); got != "1" {
		t.Fatalf("wanted 1, got %s", got)
	}
}

func TestLastError(t *testing.T) {
	sv := service.NewService()
	defer sv.Close()
	if sv.LastError() != nil {
		t.Fatalf("new service has an error")
	}
	if _, ok := sv.ExplainError(); ok {
		t.Fatalf("explanation given with no error")
	}
	sv.Do(`(head '())`)
	sv.Do(`(+ 1 2)`)
	err := sv.LastError()
	if err == nil || err.Code() != 10 {
		t.Fatalf("wanted the error from head, got %v", err)
	}
	explanation, ok := sv.ExplainError()
	if !ok || explanation != object.ErrorExplanations[10] {
		t.Fatalf("wrong explanation %q", explanation)
	}
}

func TestGetTraceReport(t *testing.T) {
	color.NoColor = true
	sv := service.NewService()
	defer sv.Close()
	sv.Do(`(define (f x) (g x))`)
	sv.Do(`(define (g x) (head x))`)
	result, ok := sv.Do(`(f '())`).(*object.Error)
	if !ok {
		t.Fatalf("wanted an error")
	}
	want := "error[010]: cannot get the head of an empty list\n" +
		"    at [0] (head x)\n" +
		"    at [1] (g x)\n" +
		"    at [2] (f '())\n"
	if got := service.GetTraceReport(result); got != want {
		t.Fatalf("Wanted : %q | Got : %q", want, got)
	}
}

func TestNames(t *testing.T) {
	sv := service.NewService()
	defer sv.Close()
	sv.Do(`(define my-name 1)`)
	names := sv.Names()
	for _, want := range []string{"my-name", "define", "+", "sql-open", "error-code", "pi"} {
		if !slices.Contains(names, want) {
			t.Fatalf("%s is not among the names", want)
		}
	}
}

func TestOutputAndViews(t *testing.T) {
	sv := service.NewService()
	defer sv.Close()
	var out bytes.Buffer
	sv.SetOutput(&out)
	result := sv.Do(`(begin (display "hello" " " 'world) "done")`)
	if out.String() != "hello world" {
		t.Fatalf("wrong output %q", out.String())
	}
	if sv.ToLiteral(result) != `"done"` || sv.ToString(result) != "done" {
		t.Fatalf("wrong views of %s", sv.ToLiteral(result))
	}
}
