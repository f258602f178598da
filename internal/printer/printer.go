// Package printer renders colored terminal output for the CLI.
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Printer writes colored output. Errors go to a separate stream so results
// stay pipeable.
type Printer struct {
	out    io.Writer
	errOut io.Writer

	green  *color.Color
	yellow *color.Color
	red    *color.Color
	cyan   *color.Color
	bold   *color.Color
	faint  *color.Color
}

// New creates a Printer. Colors are disabled when colored is false.
func New(out, errOut io.Writer, colored bool) *Printer {
	p := &Printer{
		out:    out,
		errOut: errOut,
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed, color.Bold),
		cyan:   color.New(color.FgCyan),
		bold:   color.New(color.Bold),
		faint:  color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.green, p.yellow, p.red, p.cyan, p.bold, p.faint} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Stdout creates a Printer on the process streams. Color follows the
// NO_COLOR environment variable.
func Stdout() *Printer {
	return New(os.Stdout, os.Stderr, os.Getenv("NO_COLOR") == "")
}

// Header prints a section title.
func (p *Printer) Header(format string, a ...any) {
	p.bold.Fprintf(p.out, format+"\n", a...)
}

// Section prints a sub-section title.
func (p *Printer) Section(title string) {
	p.cyan.Fprintf(p.out, "%s:\n", title)
}

// Result prints an answer line.
func (p *Printer) Result(name, value string) {
	fmt.Fprintf(p.out, "  %s: ", name)
	p.green.Fprintln(p.out, value)
}

// Field prints an indented key/value line. Multi-line values are moved to
// their own indented block.
func (p *Printer) Field(key, value string) {
	if strings.Contains(value, "\n") {
		value = strings.ReplaceAll(strings.TrimRight(value, "\n"), "\n", "\n    ")
		fmt.Fprintf(p.out, "  %s:\n    %s\n", key, value)
		return
	}
	fmt.Fprintf(p.out, "  %s: %s\n", key, value)
}

// Timing prints a faint duration line.
func (p *Printer) Timing(name, value string) {
	fmt.Fprintf(p.out, "  %s: ", name)
	p.faint.Fprintln(p.out, value)
}

// Total prints the emphasized total line.
func (p *Printer) Total(value string) {
	fmt.Fprint(p.out, "Total: ")
	p.bold.Fprintln(p.out, value)
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.out)
}

// Success prints a success message in green with a checkmark prefix.
func (p *Printer) Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		msg = "✓ " + msg
	}
	p.green.Fprintln(p.out, msg)
}

// Warning prints a warning message in yellow to the error stream.
func (p *Printer) Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠️") {
		msg = "⚠️  " + msg
	}
	p.yellow.Fprintln(p.errOut, msg)
}

// Error prints a formatted error with title, explanation and suggestions to
// the error stream and returns a plain error carrying the title for Cobra.
func (p *Printer) Error(title, explanation string, suggestions []string) error {
	p.red.Fprintf(p.errOut, "%s\n\n", title)

	if explanation != "" {
		fmt.Fprintf(p.errOut, "%s\n", explanation)
	}

	if len(suggestions) > 0 {
		fmt.Fprintf(p.errOut, "\n")
		if len(suggestions) == 1 {
			fmt.Fprintf(p.errOut, "%s\n", suggestions[0])
		} else {
			fmt.Fprintf(p.errOut, "Either:\n")
			for i, suggestion := range suggestions {
				fmt.Fprintf(p.errOut, "  %d. %s\n", i+1, suggestion)
			}
		}
	}

	// Returned error is not printed again due to SilenceErrors.
	return fmt.Errorf("%s", title)
}
