package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Printer writes human-readable status lines. Colors are dropped
// automatically when the process is not attached to a terminal.
type Printer struct {
	out io.Writer

	success *color.Color
	warn    *color.Color
	fail    *color.Color
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		out:     w,
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
	}
}

// IsTerminal checks if f is attached to a terminal (TTY).
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Infof prints a plain status line.
func (p *Printer) Infof(format string, a ...any) {
	fmt.Fprintf(p.out, format+"\n", a...)
}

// Successf prints a green checkmark line.
func (p *Printer) Successf(format string, a ...any) {
	fmt.Fprintf(p.out, "%s %s\n", p.success.Sprint("✓"), fmt.Sprintf(format, a...))
}

// Warnf prints a warning line.
func (p *Printer) Warnf(format string, a ...any) {
	fmt.Fprintf(p.out, "%s %s\n", p.warn.Sprint("WARNING:"), fmt.Sprintf(format, a...))
}

// Errorf prints an error line.
func (p *Printer) Errorf(format string, a ...any) {
	fmt.Fprintf(p.out, "%s %s\n", p.fail.Sprint("ERROR:"), fmt.Sprintf(format, a...))
}
