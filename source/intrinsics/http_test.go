package intrinsics_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rlisp-lang/rlisp/source/test_helper"
)

func TestRequest(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/hello", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "hello world")
	})
	mux.HandleFunc("/expr", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "(+ 1 2)")
	})
	server := httptest.NewServer(mux)
	defer server.Close()
	tests := []test_helper.TestItem{
		{`(request "` + server.URL + `/hello")`, `"hello world"`},
		{`(eval (parse (request "` + server.URL + `/expr")))`, `3`},
		{`(request "` + server.URL + `/missing")`, `error[043]: request to ` + server.URL + `/missing failed with status 404`},
		{`(request 1)`, `error[009]: signature mismatch: expected string, found num`},
	}
	test_helper.RunTest(t, "", tests, test_helper.TestValues)
}
