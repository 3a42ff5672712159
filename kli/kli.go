package kli

import (
	"os"

	"github.com/google/shlex"

	kliio "github.com/dzonerzy/go-kli/io"
)

// Set is an ordered collection of options together with the parse modes
// applied to them.
//
// A Set is not safe for concurrent use: options are mutated in place by
// Parse, so callers must serialise parses and read option state in between.
type Set struct {
	options []Option

	validate bool
	strict   bool
	failFast bool
	reporter Reporter
	lookup   EnvLookup
	defaults Defaults
}

// New creates a set over the given options. Options sharing a short or long
// id make New panic with a *DefinitionError.
func New(options ...Option) *Set {
	s := &Set{
		reporter: kliio.NewLogger(kliio.New()).WithFormat(kliio.LogFormatTagged),
		lookup:   os.LookupEnv,
	}
	return s.Add(options...)
}

// Add appends options, keeping declaration order
func (s *Set) Add(options ...Option) *Set {
	for _, opt := range options {
		if opt == nil {
			panic(&DefinitionError{Type: ErrorTypeInvalidDefinition, Message: "nil option"})
		}
	}
	combined := append(append(make([]Option, 0, len(s.options)+len(options)), s.options...), options...)
	if _, err := newRegistry(combined); err != nil {
		panic(err)
	}
	s.options = combined
	return s
}

// Options returns the declared options in order
func (s *Set) Options() []Option {
	out := make([]Option, len(s.options))
	copy(out, s.options)
	return out
}

// Validate enables the mandatory check and reporting of rejected values
func (s *Set) Validate(enabled bool) *Set {
	s.validate = enabled
	return s
}

// Strict makes unknown options errors that invalidate the result
func (s *Set) Strict(enabled bool) *Set {
	s.strict = enabled
	return s
}

// FailFast stops the parse at the first error, which Parse then returns
func (s *Set) FailFast(enabled bool) *Set {
	s.failFast = enabled
	return s
}

// WithReporter sets the diagnostics sink; nil discards diagnostics.
func (s *Set) WithReporter(r Reporter) *Set {
	if r == nil {
		r = NopReporter{}
	}
	s.reporter = r
	return s
}

// WithEnv replaces the environment lookup used for FromEnv fallbacks
func (s *Set) WithEnv(lookup EnvLookup) *Set {
	s.lookup = lookup
	return s
}

// WithDefaults sets the defaults consulted, by long id, for options that
// neither the command line nor the environment defined.
func (s *Set) WithDefaults(d Defaults) *Set {
	s.defaults = d
	return s
}

// Parse scans tokens (the argument vector without the program name) and binds
// the options. Diagnostics go to the reporter; the error is non-nil only in
// fail-fast mode.
func (s *Set) Parse(tokens []string) (*Result, error) {
	reg, err := newRegistry(s.options)
	if err != nil {
		return nil, err
	}

	for _, opt := range s.options {
		opt.reset()
	}

	sess := acquireSession(reg, s, tokens)
	defer sessions.Put(sess)

	sess.scan()
	if !sess.aborted() {
		sess.applyFallbacks(s.options, s.lookup, s.defaults)
	}
	if s.validate && !sess.aborted() {
		sess.checkMandatory(s.options)
	}

	result := &Result{
		Values:   sess.values,
		Valid:    sess.valid,
		reporter: s.reporter,
		failFast: s.failFast,
	}
	if err := sess.err; err != nil {
		return result, err
	}
	return result, nil
}

// ParseLine splits a shell-style command line and parses the resulting tokens
func (s *Set) ParseLine(line string) (*Result, error) {
	tokens, err := shlex.Split(line)
	if err != nil {
		return nil, err
	}
	return s.Parse(tokens)
}
