package intrinsics_test

import (
	"testing"

	"github.com/rlisp-lang/rlisp/source/test_helper"
)

func TestLists(t *testing.T) {
	tests := []test_helper.TestItem{
		{`(cons 1 '(2 3))`, `(1 2 3)`},
		{`(: 1 ())`, `(1)`},
		{`(cons 1 2)`, `error[009]: signature mismatch: expected cons, found num`},
		{`(head '(1 2))`, `1`},
		{`(head '())`, `error[010]: cannot get the head of an empty list`},
		{`(tail '(1 2 3))`, `(2 3)`},
		{`(tail '(1))`, `()`},
		{`(tail '())`, `error[011]: cannot get the tail of an empty list`},
		{`(list 1 "a" 'b)`, `(1 "a" b)`},
		{`(list)`, `()`},
		{`(length '(1 2 3))`, `3`},
		{`(length "héllo")`, `5`},
		{`(length 1)`, `error[009]: signature mismatch: expected cons, found num`},
		{`(chars "ab")`, `("a" "b")`},
		{`(chars "")`, `()`},
		{`(++ '(1) '(2 3) '())`, `(1 2 3)`},
		{`(append '(1 2) '(3))`, `(1 2 3)`},
		{`(append)`, `()`},
		{`(append '(1) 2)`, `error[009]: signature mismatch: expected cons, found num`},
		{`(empty? '())`, `true`},
		{`(empty? nil)`, `true`},
		{`(empty? '(1))`, `false`},
	}
	test_helper.RunTest(t, "", tests, test_helper.TestValues)
}

func TestAppendLeavesArgumentsAlone(t *testing.T) {
	tests := []test_helper.TestItem{
		{`(define a '(1 2)) (define b (append a '(3))) (list a b)`, `((1 2) (1 2 3))`},
		{`(define a '(1 2)) (define b (cons 0 a)) (list a b)`, `((1 2) (0 1 2))`},
	}
	test_helper.RunTest(t, "", tests, test_helper.TestValues)
}
