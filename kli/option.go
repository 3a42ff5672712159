package kli

import (
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Source records where an option's binding came from
type Source int

const (
	SourceNone Source = iota // not bound during the last parse
	SourceArgs               // bound from the command line
	SourceEnv                // bound from an environment variable
	SourceFile               // bound from a defaults file
)

// String returns a human-readable source name
func (s Source) String() string {
	switch s {
	case SourceNone:
		return "none"
	case SourceArgs:
		return "args"
	case SourceEnv:
		return "env"
	case SourceFile:
		return "file"
	default:
		return "unknown"
	}
}

// Option is a declared command-line option. The set of implementations is
// closed: *Flag, *Value[T] and *Help. New value kinds are added by supplying
// a ValueParser to NewValue, not by implementing Option.
type Option interface {
	ShortID() rune
	LongID() string
	Name() string
	Description() string
	TypeName() string
	Mandatory() bool
	Defined() bool
	Valid() bool
	InvalidityHint() string
	Source() Source
	EnvVars() []string

	takesValue() bool
	bindPresence(src Source)
	bindValue(raw string, src Source)
	reset()
}

// option holds the identity and defined-state shared by every variant
type option struct {
	short       rune
	long        string
	description string
	typeName    string
	mandatory   bool
	defined     bool
	source      Source
	envVars     []string
}

func newOption(short rune, long, description, typeName string) option {
	if short == 0 && long == "" {
		panic(&DefinitionError{
			Type:    ErrorTypeInvalidDefinition,
			Message: "option '" + description + "' needs a short or a long id",
		})
	}
	if short != 0 && (short == '-' || short == '=' || unicode.IsSpace(short) || !unicode.IsPrint(short)) {
		panic(&DefinitionError{
			Type:    ErrorTypeInvalidDefinition,
			Message: "invalid short id " + strconv.QuoteRune(short),
		})
	}
	if long != "" && (strings.HasPrefix(long, "-") || strings.ContainsAny(long, "= \t\n")) {
		panic(&DefinitionError{
			Type:    ErrorTypeInvalidDefinition,
			Message: "invalid long id '" + long + "'",
		})
	}
	return option{short: short, long: long, description: description, typeName: typeName}
}

// ShortID returns the single-character id, or 0 when the option has none
func (o *option) ShortID() rune { return o.short }

// LongID returns the long id, or "" when the option has none
func (o *option) LongID() string { return o.long }

// Description returns the help description
func (o *option) Description() string { return o.description }

// TypeName returns the value placeholder used by help rendering
func (o *option) TypeName() string { return o.typeName }

// Mandatory reports whether validation requires this option to be defined
func (o *option) Mandatory() bool { return o.mandatory }

// Defined reports whether the last parse bound this option
func (o *option) Defined() bool { return o.defined }

// Source reports where the last binding came from. A binding the parser
// rejected still records its source.
func (o *option) Source() Source { return o.source }

// EnvVars returns the fallback environment variables in precedence order
func (o *option) EnvVars() []string { return o.envVars }

// Name is the long id if present, otherwise the short id.
func (o *option) Name() string {
	if o.long != "" {
		return o.long
	}
	return string(o.short)
}

func (o *option) resetOption() {
	o.defined = false
	o.source = SourceNone
}

// Flag is a presence-only option
type Flag struct {
	option
}

// NewFlag declares a flag. Flags carry no value and are never mandatory.
func NewFlag(short rune, long, description string) *Flag {
	return &Flag{option: newOption(short, long, description, "")}
}

// FromEnv binds the flag to environment variables (checked in precedence order)
func (f *Flag) FromEnv(envVars ...string) *Flag {
	f.envVars = envVars
	return f
}

// Valid is always true for flags
func (f *Flag) Valid() bool { return true }

// InvalidityHint is always empty for flags
func (f *Flag) InvalidityHint() string { return "" }

func (f *Flag) takesValue() bool { return false }

func (f *Flag) bindPresence(src Source) {
	f.defined = true
	f.source = src
}

// bindValue is only reached from fallback sources: a truthy string sets the
// flag, anything else leaves it unset but still claims the source.
func (f *Flag) bindValue(raw string, src Source) {
	f.source = src
	if v, ok := BoolParser(raw).Value(); ok && v {
		f.defined = true
	}
}

func (f *Flag) reset() { f.resetOption() }

// Value is a value-bearing option whose raw string is converted by a ValueParser.
type Value[T any] struct {
	option
	parser ValueParser[T]
	result Parsed[T]
	raw    string
	bound  bool
}

// NewValue declares a value-bearing option using a custom parser. typeName is
// the placeholder shown in help output (e.g. "PORT").
func NewValue[T any](typeName string, parser ValueParser[T], short rune, long, description string) *Value[T] {
	if parser == nil {
		panic(&DefinitionError{
			Type:    ErrorTypeInvalidDefinition,
			Message: "option '" + description + "' has no value parser",
		})
	}
	return &Value[T]{
		option: newOption(short, long, description, typeName),
		parser: parser,
	}
}

// Required marks the option as mandatory
func (v *Value[T]) Required() *Value[T] {
	v.mandatory = true
	return v
}

// FromEnv binds the option to environment variables (checked in precedence order)
func (v *Value[T]) FromEnv(envVars ...string) *Value[T] {
	v.envVars = envVars
	return v
}

// Value returns the parsed value; the zero value when undefined or invalid.
func (v *Value[T]) Value() T {
	return v.result.value
}

// Raw returns the raw string of the last binding
func (v *Value[T]) Raw() string {
	return v.raw
}

// Valid reports whether the last binding parsed successfully. An option that
// was not bound during the last parse is valid.
func (v *Value[T]) Valid() bool {
	return !v.bound || v.result.ok
}

// InvalidityHint explains why the last binding failed; empty when valid.
func (v *Value[T]) InvalidityHint() string {
	if v.Valid() {
		return ""
	}
	return v.result.hint
}

func (v *Value[T]) takesValue() bool { return true }

func (v *Value[T]) bindPresence(Source) {}

func (v *Value[T]) bindValue(raw string, src Source) {
	v.raw = raw
	v.bound = true
	v.result = v.parser(raw)
	v.defined = v.result.ok
	v.source = src
}

func (v *Value[T]) reset() {
	v.resetOption()
	v.result = Parsed[T]{}
	v.raw = ""
	v.bound = false
}

// Typed constructors for the built-in parsers

// NewString declares a string option
func NewString(short rune, long, description string) *Value[string] {
	return NewValue("STRING", StringParser, short, long, description)
}

// NewInt declares an integer option
func NewInt(short rune, long, description string) *Value[int] {
	return NewValue("INT", IntParser, short, long, description)
}

// NewFloat declares a floating point (double) option
func NewFloat(short rune, long, description string) *Value[float64] {
	return NewValue("NUMBER", FloatParser, short, long, description)
}

// NewDuration declares a duration option
func NewDuration(short rune, long, description string) *Value[time.Duration] {
	return NewValue("DURATION", DurationParser, short, long, description)
}

// NewEnum declares a string option restricted to values
func NewEnum(short rune, long, description string, values ...string) *Value[string] {
	return NewValue(strings.Join(values, "|"), EnumParser(values...), short, long, description)
}

// NewFile declares an option naming an existing file
func NewFile(short rune, long, description string) *Value[string] {
	return NewValue("FILE", FileParser, short, long, description)
}

// NewReadableFile declares an option naming an existing readable file
func NewReadableFile(short rune, long, description string) *Value[string] {
	return NewValue("FILE", ReadableFileParser, short, long, description)
}

// NewWritableFile declares an option naming an existing writable file
func NewWritableFile(short rune, long, description string) *Value[string] {
	return NewValue("FILE", WritableFileParser, short, long, description)
}

// NewDirectory declares an option naming an existing directory
func NewDirectory(short rune, long, description string) *Value[string] {
	return NewValue("DIR", DirectoryParser, short, long, description)
}

// NewReadableDirectory declares an option naming an existing readable directory
func NewReadableDirectory(short rune, long, description string) *Value[string] {
	return NewValue("DIR", ReadableDirectoryParser, short, long, description)
}

// NewWritableDirectory declares an option naming an existing writable directory
func NewWritableDirectory(short rune, long, description string) *Value[string] {
	return NewValue("DIR", WritableDirectoryParser, short, long, description)
}

// NewRandomAccessFile declares an option that opens a file for read-write
// access while parsing. Closing the handle is the caller's job.
func NewRandomAccessFile(short rune, long, description string) *Value[*os.File] {
	return NewValue("FILE", RandomAccessFileParser, short, long, description)
}
