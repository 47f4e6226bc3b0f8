//
// rlisp
//
// A small Lisp with first-class errors, structs, pattern-matching macros and quaternions.
//

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dnephin/pflag"
	"github.com/sirupsen/logrus"

	"github.com/rlisp-lang/rlisp/source/object"
	"github.com/rlisp-lang/rlisp/source/repl"
	"github.com/rlisp-lang/rlisp/source/service"
	"github.com/rlisp-lang/rlisp/source/settings"
	"github.com/rlisp-lang/rlisp/source/text"
)

type options struct {
	lib         string
	interactive bool
	verbose     bool
	version     bool
	help        bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts := options{}
	flags := pflag.NewFlagSet("rlisp", pflag.ContinueOnError)
	flags.SetInterspersed(false) // Everything after INPUT belongs to the script.
	flags.StringVarP(&opts.lib, "lib", "L", "", "library file to import before anything else")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "start the REPL after running INPUT")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debugging information")
	flags.BoolVar(&opts.version, "version", false, "print the version and exit")
	flags.BoolVarP(&opts.help, "help", "h", false, "print this message and exit")
	flags.Usage = func() { fmt.Fprint(os.Stderr, text.HELP) }
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if opts.help {
		fmt.Print(text.HELP)
		return 0
	}
	if opts.version {
		fmt.Println("rlisp " + text.VERSION)
		return 0
	}

	sv := service.NewService()
	defer sv.Close()
	if opts.verbose {
		sv.SetLogLevel(logrus.DebugLevel)
	}
	log := sv.Logger()

	lib := opts.lib
	if lib == "" {
		if home, ok := os.LookupEnv(settings.HOME_VAR); ok {
			lib = filepath.Join(home, settings.LIBRARY_FILE)
			if _, err := os.Stat(lib); err != nil {
				log.WithField("path", lib).Debug("no library found")
				lib = ""
			}
		}
	}
	if lib != "" {
		if result := sv.Import(lib); object.IsError(result) {
			fmt.Fprint(os.Stderr, service.GetTraceReport(result.(*object.Error)))
			return 1
		}
	}

	positional := flags.Args()
	if len(positional) == 0 {
		repl.Start(sv, os.Stdin, os.Stdout)
		return 0
	}
	sv.SetArgs(positional[1:])
	log.WithField("args", positional[1:]).Debug("running " + positional[0])
	result := sv.Import(positional[0])
	status := 0
	if err, ok := result.(*object.Error); ok {
		fmt.Fprint(os.Stderr, service.GetTraceReport(err))
		status = 1
	}
	if opts.interactive {
		repl.Start(sv, os.Stdin, os.Stdout)
	}
	return status
}
