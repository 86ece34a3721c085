package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer writes one line per outcome and a closing summary line.
// File lines are indented under their directory line.
type Printer struct {
	w     io.Writer
	msg   *message.Printer
	ok    *color.Color
	skip  *color.Color
	fail  *color.Color
	write *color.Color
}

// NewPrinter returns a Printer writing to w. Colour codes are emitted only
// when useColor is true.
func NewPrinter(w io.Writer, useColor bool) *Printer {
	p := &Printer{
		w:     w,
		msg:   message.NewPrinter(language.English),
		ok:    color.New(color.FgGreen, color.Bold),
		skip:  color.New(color.FgYellow),
		fail:  color.New(color.FgRed, color.Bold),
		write: color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.ok, p.skip, p.fail, p.write} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Discard returns a Printer that drops everything.
func Discard() *Printer {
	return NewPrinter(io.Discard, false)
}

// Outcome prints the progress line for o.
func (p *Printer) Outcome(o Outcome) {
	indent := ""
	noun := "folder"
	if o.Kind == KindFile {
		indent = "  "
		noun = "file"
	}

	switch o.Status {
	case StatusCreated:
		fmt.Fprintf(p.w, "%s%s Created %s: %s\n", indent, p.ok.Sprint("[ OK ]"), noun, o.Path)
	case StatusSkipped:
		fmt.Fprintf(p.w, "%s%s Skipped (already exists): %s\n", indent, p.skip.Sprint("[SKIP]"), o.Path)
	case StatusWritten:
		fmt.Fprintf(p.w, "%s%s Generated/Updated: %s\n", indent, p.write.Sprint("[ UP ]"), o.Path)
	case StatusFailed:
		fmt.Fprintf(p.w, "%s%s %v\n", indent, p.fail.Sprint("[FAIL]"), o.Err)
	}
}

// Summaryf prints a closing line preceded by a blank line. Numeric arguments
// are formatted with English digit grouping.
func (p *Printer) Summaryf(format string, args ...any) {
	fmt.Fprintln(p.w)
	p.msg.Fprintf(p.w, format, args...)
	fmt.Fprintln(p.w)
}
