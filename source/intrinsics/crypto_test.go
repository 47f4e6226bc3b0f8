package intrinsics_test

import (
	"testing"

	"github.com/rlisp-lang/rlisp/source/test_helper"
)

func TestPasswords(t *testing.T) {
	tests := []test_helper.TestItem{
		{`(check-password "hunter2" (hash-password "hunter2"))`, `true`},
		{`(check-password "hunter3" (hash-password "hunter2"))`, `false`},
		{`(check-password "hunter2" "not a hash")`, `false`},
		{`(eq? (hash-password "a") (hash-password "a"))`, `false`},
		{`(hash-password 1)`, `error[009]: signature mismatch: expected string, found num`},
	}
	test_helper.RunTest(t, "", tests, test_helper.TestValues)
}

func TestDeriveKey(t *testing.T) {
	tests := []test_helper.TestItem{
		{`(length (chars (derive-key "password" "salt")))`, `64`},
		{`(eq? (derive-key "password" "salt") (derive-key "password" "salt"))`, `true`},
		{`(eq? (derive-key "password" "salt") (derive-key "password" "pepper"))`, `false`},
	}
	test_helper.RunTest(t, "", tests, test_helper.TestValues)
}

func TestEncryption(t *testing.T) {
	tests := []test_helper.TestItem{
		{`(decrypt "secret" (encrypt "secret" "attack at dawn"))`, `"attack at dawn"`},
		{`(decrypt "secret" (encrypt "secret" ""))`, `""`},
		{`(decrypt "secret" (encrypt "secret" "exactly sixteen!"))`, `"exactly sixteen!"`},
		{`(eq? (encrypt "secret" "a") (encrypt "secret" "a"))`, `false`},
		{`(let ([c (encrypt "secret" "attack at dawn")]) (eq? (try (decrypt "guess" c) (lambda (e) "failed")) "attack at dawn"))`, `false`},
	}
	test_helper.RunTest(t, "", tests, test_helper.TestValues)
}

func TestDecryptionErrors(t *testing.T) {
	tests := []test_helper.TestItem{
		{`(decrypt "secret" "zz")`, `47`},
		{`(decrypt "secret" "00ff")`, `47`},
		{`(decrypt "secret" 1)`, `9`},
	}
	test_helper.RunTest(t, "", tests, test_helper.TestErrorCodes)
}
