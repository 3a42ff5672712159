package kli

import "fmt"

// CheckArguments verifies that a positional value exists for every name, in
// order. Each missing one is reported and invalidates the result; in
// fail-fast mode the first is returned as a *ParseError.
func (r *Result) CheckArguments(names ...string) error {
	for i, name := range names {
		if i < len(r.Values) {
			continue
		}
		msg := fmt.Sprintf("Argument '%s' is missing and must be provided.", name)
		if err := r.fail(ErrorTypeMissingArgument, name, msg); err != nil {
			return err
		}
	}
	return nil
}

func (r *Result) fail(errType ErrorType, name, msg string) error {
	if r.reporter != nil {
		r.reporter.Error("%s", msg)
	}
	r.Valid = false
	if r.failFast {
		return &ParseError{Type: errType, Message: msg, Option: name}
	}
	return nil
}

// parseAll runs parser over raws and stops at the first rejected value
func parseAll[T any](r *Result, raws []string, parser ValueParser[T]) ([]T, bool, error) {
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		p := parser(raw)
		v, ok := p.Value()
		if !ok {
			msg := fmt.Sprintf("Invalid argument '%s'.", raw)
			if hint := p.Hint(); hint != "" {
				msg = fmt.Sprintf("Invalid argument '%s': %s", raw, hint)
			}
			return nil, false, r.fail(ErrorTypeInvalidArgument, "", msg)
		}
		out = append(out, v)
	}
	return out, true, nil
}

func parseOne[T any](r *Result, raw string, present bool, parser ValueParser[T]) (T, bool, error) {
	var zero T
	if !present {
		return zero, false, nil
	}
	vs, ok, err := parseAll(r, []string{raw}, parser)
	if !ok {
		return zero, false, err
	}
	return vs[0], true, nil
}

// ParseArguments converts every positional value
func ParseArguments[T any](r *Result, parser ValueParser[T]) ([]T, bool, error) {
	return parseAll(r, r.Values, parser)
}

// ParseFirstArgument converts the first positional value. ok is false when
// there is none or it was rejected.
func ParseFirstArgument[T any](r *Result, parser ValueParser[T]) (T, bool, error) {
	raw, present := r.First()
	return parseOne(r, raw, present, parser)
}

// ParseLastArgument converts the last positional value
func ParseLastArgument[T any](r *Result, parser ValueParser[T]) (T, bool, error) {
	raw, present := r.Last()
	return parseOne(r, raw, present, parser)
}

// ParseHeadArguments converts all positional values but the last
func ParseHeadArguments[T any](r *Result, parser ValueParser[T]) ([]T, bool, error) {
	if len(r.Values) == 0 {
		return []T{}, true, nil
	}
	return parseAll(r, r.Values[:len(r.Values)-1], parser)
}

// ParseTailArguments converts all positional values but the first
func ParseTailArguments[T any](r *Result, parser ValueParser[T]) ([]T, bool, error) {
	if len(r.Values) == 0 {
		return []T{}, true, nil
	}
	return parseAll(r, r.Values[1:], parser)
}
