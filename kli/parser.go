package kli

import (
	"fmt"
	"strings"

	"github.com/dzonerzy/go-kli/internal/fuzzy"
	"github.com/dzonerzy/go-kli/internal/pool"
)

// suggestDistance is the edit distance within which an unknown long id gets a
// "did you mean" hint.
const suggestDistance = 2

// Result holds what a parse call produced besides the option state: the
// positional values in encounter order and the aggregate validity.
type Result struct {
	Values []string
	Valid  bool

	reporter Reporter
	failFast bool
}

// Len returns the number of positional values
func (r *Result) Len() int { return len(r.Values) }

// First returns the first positional value
func (r *Result) First() (string, bool) {
	if len(r.Values) == 0 {
		return "", false
	}
	return r.Values[0], true
}

// Last returns the last positional value
func (r *Result) Last() (string, bool) {
	if len(r.Values) == 0 {
		return "", false
	}
	return r.Values[len(r.Values)-1], true
}

// session is the state of one scan over a token slice
type session struct {
	reg      *registry
	reporter Reporter
	validate bool
	strict   bool
	failFast bool

	tokens []string
	values []string
	valid  bool
	err    *ParseError
}

var sessions = pool.New(
	func() *session { return &session{} },
	func(s *session) { *s = session{} },
)

// acquireSession takes a session from the pool; release it with
// sessions.Put once the Result has been built.
func acquireSession(reg *registry, set *Set, tokens []string) *session {
	s := sessions.Get()
	s.reg = reg
	s.reporter = set.reporter
	s.validate = set.validate
	s.strict = set.strict
	s.failFast = set.failFast
	s.tokens = tokens
	s.values = make([]string, 0, len(tokens))
	s.valid = true
	return s
}

// aborted reports whether fail-fast mode already stopped the parse
func (s *session) aborted() bool {
	return s.err != nil
}

// fail reports an error, invalidates the result and, in fail-fast mode,
// records the first one so the scan stops.
func (s *session) fail(errType ErrorType, name, msg string) {
	s.reporter.Error("%s", msg)
	s.valid = false
	if s.failFast && s.err == nil {
		s.err = &ParseError{Type: errType, Message: msg, Option: name}
	}
}

func (s *session) unknown(msg string) {
	if s.strict {
		s.fail(ErrorTypeUnknownOption, "", msg)
		return
	}
	s.reporter.Warning("%s", msg)
}

// scan walks the tokens once, left to right
func (s *session) scan() {
	i := 0
	for i < len(s.tokens) && !s.aborted() {
		token := s.tokens[i]

		switch {
		case token == "" || token == "-" || token[0] != '-':
			s.values = append(s.values, token)
			i++
		case token == "--":
			s.values = append(s.values, s.tokens[i+1:]...)
			return
		case token[1] == '-':
			i = s.parseLong(i)
		default:
			i = s.parseShort(i)
		}
	}
}

// parseLong handles --key and --key=value and returns the next cursor position
func (s *session) parseLong(i int) int {
	token := s.tokens[i]
	key, inline, hasInline := strings.Cut(token[2:], "=")

	opt := s.reg.long(key)
	if opt == nil {
		msg := fmt.Sprintf("Unknown option '%s' ignored.", token)
		if suggestion := fuzzy.Suggest(key, s.reg.longIDs(), suggestDistance); suggestion != "" {
			msg += fmt.Sprintf(" Did you mean '--%s'?", suggestion)
		}
		s.unknown(msg)
		return i + 1
	}

	if !opt.takesValue() {
		opt.bindPresence(SourceArgs)
		return i + 1
	}

	next := i + 1
	raw := inline
	if !hasInline {
		if next < len(s.tokens) {
			raw = s.tokens[next]
			next++
		}
	}
	s.bind(opt, raw)
	return next
}

// parseShort walks a cluster such as -abc or -ovalue and returns the next
// cursor position.
func (s *session) parseShort(i int) int {
	token := s.tokens[i]
	chars := []rune(token[1:])

	for j, c := range chars {
		opt := s.reg.short(c)
		if opt == nil {
			s.unknown(fmt.Sprintf("Unknown option character '%c' in '%s' ignored.", c, token))
			if s.aborted() {
				return i + 1
			}
			continue
		}

		if !opt.takesValue() {
			opt.bindPresence(SourceArgs)
			continue
		}

		// a value-bearing option claims the rest of the token or the next token
		if rest := chars[j+1:]; len(rest) > 0 {
			s.bind(opt, string(rest))
			return i + 1
		}
		if i+1 < len(s.tokens) {
			s.bind(opt, s.tokens[i+1])
			return i + 2
		}
		s.bind(opt, "")
		return i + 1
	}
	return i + 1
}

// bind applies a raw command-line value to a value-bearing option
func (s *session) bind(opt Option, raw string) {
	if strings.TrimSpace(raw) == "" {
		s.fail(ErrorTypeMissingValue, opt.Name(),
			fmt.Sprintf("Unable to find value string for option '%s'. Ignored.", opt.Name()))
		return
	}
	if strings.HasPrefix(raw, "-") {
		s.reporter.Info("Value '%s' for option '%s' looks like an option. Using it anyway.", raw, opt.Name())
	}
	s.apply(opt, raw, SourceArgs)
}

// apply binds raw from src and reports it when validation rejects it
func (s *session) apply(opt Option, raw string, src Source) {
	opt.bindValue(raw, src)
	if s.validate && !opt.Valid() {
		s.fail(ErrorTypeInvalidValue, opt.Name(), invalidValueMessage(opt))
	}
}

func invalidValueMessage(opt Option) string {
	if hint := opt.InvalidityHint(); hint != "" {
		return fmt.Sprintf("Invalid value for option '%s': %s", opt.Name(), hint)
	}
	return fmt.Sprintf("Invalid value for option '%s'.", opt.Name())
}
