package sessions

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/reusee/flop/flop"
)

// Printer renders errors as source-anchored diagnostics.
type Printer struct {
	w        io.Writer
	headline *color.Color
	location *color.Color
	caret    *color.Color
}

func NewPrinter(w io.Writer, colored bool) *Printer {
	p := &Printer{
		w:        w,
		headline: color.New(color.FgRed, color.Bold),
		location: color.New(color.FgCyan),
		caret:    color.New(color.FgRed, color.Bold),
	}
	if !colored {
		p.headline.DisableColor()
		p.location.DisableColor()
		p.caret.DisableColor()
	}
	return p
}

func (p *Printer) Report(err error) {
	var tokErr *flop.TokenError
	if !errors.As(err, &tokErr) {
		p.headline.Fprintf(p.w, "error: %v\n", err)
		return
	}

	p.headline.Fprintf(p.w, "%s\n", tokErr.Message())
	if tokErr.Token == nil {
		return
	}
	p.location.Fprintf(p.w, "  --> %s\n", tokErr.Token.Pos)

	snippet := tokErr.Snippet()
	if snippet == "" {
		return
	}
	line, underline, _ := strings.Cut(strings.TrimSuffix(snippet, "\n"), "\n")
	fmt.Fprintf(p.w, "   | %s\n", line)
	fmt.Fprint(p.w, "   | ")
	p.caret.Fprintf(p.w, "%s\n", underline)
}
