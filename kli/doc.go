// Package kli parses command-line arguments against an explicitly declared,
// ordered set of options.
//
// Options are flags (presence only) or typed values converted by a
// ValueParser:
//
//	verbose := kli.NewFlag('v', "verbose", "Print more.")
//	port := kli.NewInt('p', "port", "Port to listen on.").Required()
//	help := kli.NewHelp().Usage("serve [OPTIONS] DIR")
//
//	set := kli.New(help, verbose, port).Validate(true)
//	res, _ := set.Parse(os.Args[1:])
//	if help.Defined() {
//		help.WriteLong(os.Stdout, set.Options())
//		return
//	}
//	if !res.Valid {
//		os.Exit(2)
//	}
//
// The scanner accepts -x, -xVALUE, -x VALUE, clusters such as -abc,
// --long, --long=VALUE, --long VALUE and the -- terminator. Everything else
// is collected, in order, as positional values on the Result.
//
// By default problems are reported and parsing continues. Validate adds the
// mandatory check and reports rejected values, Strict turns unknown options
// into errors, and FailFast makes Parse stop at the first error and return it.
package kli
