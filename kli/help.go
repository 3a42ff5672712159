package kli

import (
	"io"
	"strings"
)

const (
	helpIndent = 3
	helpGap    = 3
)

type example struct {
	command     string
	description string
}

// Help is the -h/--help flag together with the text it renders. Parse never
// prints help by itself: check Defined() afterwards and call WriteShort or
// WriteLong.
type Help struct {
	Flag

	title    string
	footer   string
	usages   []string
	examples []example
}

// NewHelp declares the standard help flag
func NewHelp() *Help {
	return &Help{Flag: Flag{option: newOption('h', "help", "Display this help screen.", "")}}
}

// Title sets the first line of the long help
func (h *Help) Title(title string) *Help {
	h.title = title
	return h
}

// Usage adds a usage line (e.g. "cp [OPTIONS] SOURCE DEST")
func (h *Help) Usage(usage string) *Help {
	h.usages = append(h.usages, usage)
	return h
}

// Example adds an example command with its explanation
func (h *Help) Example(command, description string) *Help {
	h.examples = append(h.examples, example{command: command, description: description})
	return h
}

// Footer sets the text printed after the option table
func (h *Help) Footer(footer string) *Help {
	h.footer = footer
	return h
}

// WriteShort writes the usages and a pointer to the long help
func (h *Help) WriteShort(w io.Writer) error {
	var b strings.Builder
	h.writeUsages(&b)
	b.WriteString("Try option '-h' or '--help' for more information.\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteLong writes the title, usages, examples, the option table and the
// footer. Empty sections are left out.
func (h *Help) WriteLong(w io.Writer, options []Option) error {
	var b strings.Builder
	if h.title != "" {
		b.WriteString(h.title + "\n\n")
	}
	if len(h.usages) > 0 {
		h.writeUsages(&b)
		b.WriteString("\n")
	}
	if len(h.examples) > 0 {
		h.writeExamples(&b)
		b.WriteString("\n")
	}
	writeOptions(&b, options)
	if h.footer != "" {
		b.WriteString("\n" + h.footer + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (h *Help) writeUsages(b *strings.Builder) {
	switch len(h.usages) {
	case 0:
	case 1:
		b.WriteString("Usage: " + h.usages[0] + "\n")
	default:
		b.WriteString("Usages:\n")
		for _, u := range h.usages {
			b.WriteString(spaces(helpIndent) + u + "\n")
		}
	}
}

func (h *Help) writeExamples(b *strings.Builder) {
	width := 0
	for _, e := range h.examples {
		width = max(width, len(e.command))
	}
	b.WriteString("Examples:\n")
	for _, e := range h.examples {
		b.WriteString(spaces(helpIndent) + padRight(e.command, width+helpGap) + e.description + "\n")
	}
}

// writeOptions renders the option table:
//
//	-x, --long=TYPE   Description
func writeOptions(b *strings.Builder, options []Option) {
	if len(options) == 0 {
		return
	}

	width := 0
	for _, opt := range options {
		width = max(width, len(longColumn(opt)))
	}

	b.WriteString("Options:\n")
	for _, opt := range options {
		b.WriteString(spaces(helpIndent))
		switch {
		case opt.ShortID() != 0 && opt.LongID() != "":
			b.WriteString("-" + string(opt.ShortID()) + ", ")
		case opt.ShortID() != 0:
			b.WriteString("-" + string(opt.ShortID()) + "  ")
		default:
			b.WriteString(spaces(4))
		}
		b.WriteString(padRight(longColumn(opt), width+helpGap))
		b.WriteString(opt.Description() + "\n")
	}
}

func longColumn(opt Option) string {
	if opt.LongID() == "" {
		return ""
	}
	col := "--" + opt.LongID()
	if opt.TypeName() != "" {
		col += "=" + opt.TypeName()
	}
	return col
}

func spaces(n int) string {
	return strings.Repeat(" ", n)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + spaces(width-len(s))
}
