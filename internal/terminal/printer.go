// Package terminal writes human-readable progress lines.
package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

const (
	verbWidth = 12
	bold      = "\x1b[1;32m"
	reset     = "\x1b[0m"
)

// Printer emits step lines such as "    Cleaning component api with `make clean`".
type Printer struct {
	out   io.Writer
	color bool
}

// New returns a Printer on f, colouring verbs only when f is a terminal.
func New(f *os.File, noColor bool) *Printer {
	fd := f.Fd()
	color := !noColor && (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
	if !color {
		return &Printer{out: f}
	}
	return &Printer{out: colorable.NewColorable(f), color: true}
}

// NewPlain returns a Printer that never colours its output.
func NewPlain(w io.Writer) *Printer {
	return &Printer{out: w}
}

// Step writes the verb right-aligned followed by the formatted message.
func (p *Printer) Step(verb string, format string, args ...any) {
	label := fmt.Sprintf("%*s", verbWidth, verb)
	if p.color {
		label = bold + label + reset
	}
	fmt.Fprintf(p.out, "%s %s\n", label, fmt.Sprintf(format, args...))
}

// Info writes a plain line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}
