package loader

// The loader reads and parses source files. Parsed files are cached by path and thrown away when
// the file on disk changes, so a REPL user can re-import a file they are editing.

import (
	"os"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/rlisp-lang/rlisp/source/object"
	"github.com/rlisp-lang/rlisp/source/parser"
)

type Loader struct {
	cache *lru.Cache[string, entry]
	log   *logrus.Logger
}

type entry struct {
	modTime time.Time
	size    int64
	expr    object.Expression
}

func New(size int, log *logrus.Logger) *Loader {
	cache, err := lru.New[string, entry](size)
	if err != nil { // Only happens if the size isn't positive.
		cache, _ = lru.New[string, entry](1)
	}
	return &Loader{cache: cache, log: log}
}

// Load gives the parsed contents of the file, all wrapped in a single 'begin'. Failing to read the
// file is a Go error; a syntax error in the file is returned as the expression.
func (ld *Loader) Load(path string) (object.Expression, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if e, ok := ld.cache.Get(path); ok && e.modTime.Equal(info.ModTime()) && e.size == info.Size() {
		ld.log.WithField("path", path).Debug("loader cache hit")
		return e.expr, nil
	}
	src, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	ld.log.WithFields(logrus.Fields{"path": path, "bytes": len(src)}).Debug("parsing file")
	expr := parser.Parse(path, StripShebang(src))
	if !object.IsError(expr) {
		ld.cache.Add(path, entry{modTime: info.ModTime(), size: info.Size(), expr: expr})
	}
	return expr, nil
}

// Cached says whether the loader holds a parse of the path.
func (ld *Loader) Cached(path string) bool {
	return ld.cache.Contains(path)
}

func ReadFile(path string) (string, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// StripShebang blanks out a '#!' first line so that scripts can be made executable. The newline is
// kept so that line numbers don't move.
func StripShebang(src string) string {
	if !strings.HasPrefix(src, "#!") {
		return src
	}
	if i := strings.IndexByte(src, '\n'); i >= 0 {
		return src[i:]
	}
	return ""
}
