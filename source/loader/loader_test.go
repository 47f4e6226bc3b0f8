package loader

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rlisp-lang/rlisp/source/object"
)

func writeFile(t *testing.T, path, contents string) {
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("could not write %s: %v", path, err)
	}
}

func TestLoadCachesUntilFileChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lib.rl")
	writeFile(t, path, "#!/usr/bin/env rlisp\n(define x 1)\n(define y 2)")
	ld := New(4, logrus.New())
	expr, err := ld.Load(path)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got := expr.Inspect(object.ViewLiteral); got != "(begin (define x 1) (define y 2))" {
		t.Fatalf("unexpected parse %s", got)
	}
	if !ld.Cached(path) {
		t.Fatalf("file should be cached")
	}
	again, _ := ld.Load(path)
	if again != expr {
		t.Fatalf("second load should come from the cache")
	}
	writeFile(t, path, "(define x 3)")
	later := time.Now().Add(time.Minute)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatalf("could not touch file: %v", err)
	}
	changed, _ := ld.Load(path)
	if got := changed.Inspect(object.ViewLiteral); got != "(define x 3)" {
		t.Fatalf("changed file was not re-read, got %s", got)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	ld := New(4, logrus.New())
	if _, err := ld.Load(filepath.Join(dir, "missing.rl")); err == nil {
		t.Fatalf("missing file should be an error")
	}
	path := filepath.Join(dir, "bad.rl")
	writeFile(t, path, "(define x")
	expr, err := ld.Load(path)
	if err != nil || !object.IsError(expr) {
		t.Fatalf("wanted a syntax error expression, got %v, %v", expr, err)
	}
	if ld.Cached(path) {
		t.Fatalf("syntax errors should not be cached")
	}
}
