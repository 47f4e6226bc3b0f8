package test_helper

import (
	"bytes"
	"os"
	"strconv"
	"testing"

	"github.com/rlisp-lang/rlisp/source/object"
	"github.com/rlisp-lang/rlisp/source/service"
	"github.com/rlisp-lang/rlisp/source/settings"
	"github.com/rlisp-lang/rlisp/source/text"
)

// Auxiliary types and functions for testing the interpreter.

type TestItem struct {
	Input string
	Want  string
}

// RunTest runs each test in a fresh service. If a filename is given, the file of that name in the
// package's test-files directory is imported first.
func RunTest(t *testing.T, filename string, tests []TestItem, F func(sv *service.Service, s string) string) {
	wd, _ := os.Getwd() // The working directory is the directory containing the package being tested.
	for _, test := range tests {
		if settings.SHOW_TESTS {
			println(text.BULLET + "Running test " + text.Emph(test.Input))
		}
		sv := service.NewService()
		sv.SetOutput(&bytes.Buffer{})
		sv.SetExit(func(int) {})
		if filename != "" {
			if result := sv.Import(wd + "/test-files/" + filename); object.IsError(result) {
				t.Fatalf("There were errors initializing the service : \n%s", service.GetTraceReport(result.(*object.Error)))
			}
		}
		got := F(sv, test.Input)
		sv.Close()
		if !(test.Want == got) {
			t.Fatalf(`Test failed with input %s | Wanted : %s | Got : %s.`, test.Input, test.Want, got)
		}
	}
}

// TestValues gives the value of the input as the REPL would echo it.
func TestValues(sv *service.Service, s string) string {
	return sv.ToLiteral(sv.Do(s))
}

// TestOutput gives what the input writes to the output, followed by its value.
func TestOutput(sv *service.Service, s string) string {
	var out bytes.Buffer
	sv.SetOutput(&out)
	result := sv.Do(s)
	return out.String() + " => " + sv.ToLiteral(result)
}

// TestErrorCodes gives the code of the error the input evaluates to.
func TestErrorCodes(sv *service.Service, s string) string {
	result := sv.Do(s)
	if err, ok := result.(*object.Error); ok {
		return strconv.Itoa(int(err.Code()))
	}
	return "unexpected successful evaluation returned " + text.Emph(sv.ToLiteral(result))
}
