package intrinsics

import (
	"path/filepath"

	"github.com/rlisp-lang/rlisp/source/evaluator"
	"github.com/rlisp-lang/rlisp/source/loader"
	"github.com/rlisp-lang/rlisp/source/object"
)

// The name bound to the path of the file being imported.
const FILE_VAR = "__FILE__"

func files(ld *loader.Loader) Library {
	return Library{Intrinsics: map[string]object.IntrinsicFn{
		"import": func(args []object.Expression, env *object.Environment) object.Expression {
			if err := checkArity(args, 1); err != nil {
				return err
			}
			path, err := toString(args[0])
			if err != nil {
				return err
			}
			return Import(env, ld, path)
		},
		"readfile": readfile,
	}}
}

// Import evaluates a file in the current scope. A relative path is taken relative to the file doing
// the importing, if there is one. A file is only ever imported once into an environment; importing
// it again does nothing. A file whose evaluation fails doesn't count as imported.
func Import(env *object.Environment, ld *loader.Loader, path string) object.Expression {
	if !filepath.IsAbs(path) {
		if current, ok := env.Get(FILE_VAR); ok {
			if s, ok := current.(*object.String); ok {
				path = filepath.Join(filepath.Dir(s.Value), path)
			}
		}
	}
	abs, e := filepath.Abs(path)
	if e != nil {
		abs = filepath.Clean(path)
	}
	log := env.Log.WithField("path", abs)
	if env.Imported[abs] {
		log.Debug("already imported")
		return object.NIL
	}
	expr, e := ld.Load(abs)
	if e != nil {
		log.WithError(e).Debug("import failed")
		return object.NewCustom(FILE_UNREADABLE, "could not read file "+path)
	}
	if object.IsError(expr) {
		return expr
	}
	env.Imported[abs] = true
	log.Debug("importing")
	previous, hadPrevious := env.Get(FILE_VAR)
	env.Insert(FILE_VAR, str(abs))
	result := evaluator.Eval(expr, env)
	if hadPrevious {
		env.Insert(FILE_VAR, previous)
	} else {
		env.Delete(FILE_VAR)
	}
	if object.IsError(result) {
		delete(env.Imported, abs) // So that the file can be fixed and imported again.
		return result
	}
	return object.NIL
}

func readfile(args []object.Expression, env *object.Environment) object.Expression {
	if err := checkArity(args, 1); err != nil {
		return err
	}
	path, err := toString(args[0])
	if err != nil {
		return err
	}
	contents, e := loader.ReadFile(path)
	if e != nil {
		return object.NewCustom(FILE_UNREADABLE, "could not read file "+path)
	}
	return str(contents)
}
