package kli

import (
	"strconv"
	"strings"
	"time"
)

// Hint texts shared by the built-in parsers
const (
	HintInvalidFormat   = "Invalid format."
	HintNoSuchFile      = "No such file."
	HintNoSuchDirectory = "No such directory."
	HintNotReadable     = "Not readable."
	HintNotWritable     = "Not writable."
)

// Parsed is the outcome of a ValueParser: either a value or a hint describing
// why the raw string was rejected.
type Parsed[T any] struct {
	value T
	hint  string
	ok    bool
}

// Ok wraps a successfully parsed value
func Ok[T any](value T) Parsed[T] {
	return Parsed[T]{value: value, ok: true}
}

// Fail reports a parse failure with a user-facing hint
func Fail[T any](hint string) Parsed[T] {
	return Parsed[T]{hint: hint}
}

// Value returns the parsed value and whether parsing succeeded
func (p Parsed[T]) Value() (T, bool) {
	return p.value, p.ok
}

// OK reports whether parsing succeeded
func (p Parsed[T]) OK() bool {
	return p.ok
}

// Hint returns the failure hint; empty on success
func (p Parsed[T]) Hint() string {
	if p.ok {
		return ""
	}
	return p.hint
}

// ValueParser converts a raw argument string into a typed value. Parsers are
// pure and must not panic: every failure is expressed through Fail.
type ValueParser[T any] func(raw string) Parsed[T]

// StringParser accepts any string as-is
func StringParser(raw string) Parsed[string] {
	return Ok(raw)
}

// IntParser parses decimal integers and transparently accepts 0x-prefixed hex.
func IntParser(raw string) Parsed[int] {
	s := strings.TrimSpace(raw)
	negative := false
	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	base := 10
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}
	// reject a second sign after the one we stripped
	if s == "" || s[0] == '-' || s[0] == '+' {
		return Fail[int](HintInvalidFormat)
	}

	n, err := strconv.ParseInt(s, base, strconv.IntSize)
	if err != nil {
		return Fail[int](HintInvalidFormat)
	}
	if negative {
		n = -n
	}
	return Ok(int(n))
}

// FloatParser parses a float64 ("double") value
func FloatParser(raw string) Parsed[float64] {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return Fail[float64](HintInvalidFormat)
	}
	return Ok(f)
}

// DurationParser parses Go duration strings such as "1h30m" or "250ms"
func DurationParser(raw string) Parsed[time.Duration] {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return Fail[time.Duration](HintInvalidFormat)
	}
	return Ok(d)
}

// EnumParser returns a parser accepting only the given values
func EnumParser(values ...string) ValueParser[string] {
	hint := "Must be one of: " + strings.Join(values, ", ") + "."
	return func(raw string) Parsed[string] {
		for _, v := range values {
			if raw == v {
				return Ok(raw)
			}
		}
		return Fail[string](hint)
	}
}

// BoolParser accepts the truthy and falsy spellings used for fallback sources.
func BoolParser(raw string) Parsed[bool] {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "t", "true", "y", "yes", "on":
		return Ok(true)
	case "0", "f", "false", "n", "no", "off":
		return Ok(false)
	default:
		return Fail[bool](HintInvalidFormat)
	}
}
