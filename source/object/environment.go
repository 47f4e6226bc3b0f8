package object

import (
	"bufio"
	"io"
	"math/rand/v2"
	"os"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

type scope struct {
	bindings map[string]Expression
}

func newScope() *scope {
	return &scope{bindings: map[string]Expression{}}
}

// The Environment is a stack of scopes, innermost last, together with the few bits of state an
// evaluation needs besides its bindings. The global scope is never popped.
type Environment struct {
	scopes      []*scope
	structCount int

	Rng      *rand.Rand
	Imported map[string]bool
	Args     []string
	Out      io.Writer
	In       *bufio.Reader
	Exit     func(code int)
	Log      *logrus.Logger
	ErrorId  int // The type id of the built-in 'error' struct, which a user struct may shadow.
}

func NewEnvironment() *Environment {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	seed := uint64(time.Now().UnixNano())
	return &Environment{
		scopes:   []*scope{newScope()},
		Rng:      rand.New(rand.NewPCG(seed, seed>>32)),
		Imported: map[string]bool{},
		Out:      os.Stdout,
		In:       bufio.NewReader(os.Stdin),
		Exit:     os.Exit,
		Log:      log,
	}
}

func (env *Environment) PushScope() {
	env.scopes = append(env.scopes, newScope())
}

func (env *Environment) PopScope() {
	if len(env.scopes) > 1 {
		env.scopes = env.scopes[:len(env.scopes)-1]
	}
}

// Depth is the number of scopes on the stack, one when only the global scope is present.
func (env *Environment) Depth() int {
	return len(env.scopes)
}

// WithScope runs f in a fresh scope which is popped however f returns.
func (env *Environment) WithScope(f func() Expression) Expression {
	env.PushScope()
	defer env.PopScope()
	return f()
}

func (env *Environment) Get(name string) (Expression, bool) {
	for i := len(env.scopes) - 1; i >= 0; i-- {
		if val, ok := env.scopes[i].bindings[name]; ok {
			return val, true
		}
	}
	return nil, false
}

// Insert binds the name in the innermost scope, shadowing any outer binding.
func (env *Environment) Insert(name string, val Expression) {
	env.scopes[len(env.scopes)-1].bindings[name] = val
}

// Set changes the nearest existing binding of the name and reports whether there was one.
func (env *Environment) Set(name string, val Expression) bool {
	for i := len(env.scopes) - 1; i >= 0; i-- {
		if _, ok := env.scopes[i].bindings[name]; ok {
			env.scopes[i].bindings[name] = val
			return true
		}
	}
	return false
}

// Delete removes the name from the innermost scope only.
func (env *Environment) Delete(name string) {
	delete(env.scopes[len(env.scopes)-1].bindings, name)
}

// NewStructId gives a fresh struct type id. Ids are never reused, so two struct types are only the
// same type if they came from the same definition.
func (env *Environment) NewStructId() int {
	env.structCount++
	return env.structCount
}

func (env *Environment) DefineIntrinsic(name string, fn IntrinsicFn) {
	env.Insert(name, &Intrinsic{Name: name, Fn: fn})
}

func (env *Environment) DefineMacro(name string, fn MacroFn) {
	env.Insert(name, &Macro{Name: name, Fn: fn})
}

// Names lists every bound name visible from the innermost scope, sorted.
func (env *Environment) Names() []string {
	seen := map[string]bool{}
	result := []string{}
	for _, s := range env.scopes {
		for k := range s.bindings {
			if !seen[k] {
				seen[k] = true
				result = append(result, k)
			}
		}
	}
	sort.Strings(result)
	return result
}
