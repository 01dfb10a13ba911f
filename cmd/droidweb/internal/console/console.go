// Package console prints the human-readable status lines of the CLI.
package console

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	hintStyle    = lipgloss.NewStyle().Faint(true)
)

// Printer writes status lines. Out receives progress and success lines,
// Err receives errors and warnings.
type Printer struct {
	Out   io.Writer
	Err   io.Writer
	Color bool
}

// New returns a Printer on stdout/stderr, colored when stdout is a terminal.
func New() *Printer {
	return &Printer{Out: os.Stdout, Err: os.Stderr, Color: IsTerminal(os.Stdout)}
}

// Discard returns a Printer that drops everything.
func Discard() *Printer {
	return &Printer{Out: io.Discard, Err: io.Discard}
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.Color {
		return s
	}
	return style.Render(s)
}

// Step announces an action, e.g. "🚀 Creating Android project: app".
func (p *Printer) Step(icon, format string, args ...any) {
	fmt.Fprintf(p.Out, "%s %s\n", icon, p.render(stepStyle, fmt.Sprintf(format, args...)))
}

// Exec announces an external command.
func (p *Printer) Exec(command string) {
	p.Step("🔹", "Executing: %s", command)
}

// Success reports a completed action.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintf(p.Out, "✅ %s\n", p.render(successStyle, fmt.Sprintf(format, args...)))
}

// Info prints an indented detail line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.Out, "  %s\n", fmt.Sprintf(format, args...))
}

// Warn prints a warning to Err.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.Err, "⚠️  %s\n", p.render(warnStyle, fmt.Sprintf(format, args...)))
}

// Error prints an error to Err.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintf(p.Err, "❌ %s\n", p.render(errorStyle, fmt.Sprintf(format, args...)))
}

// Hint prints remediation text to Err.
func (p *Printer) Hint(text string) {
	fmt.Fprintln(p.Err, p.render(hintStyle, text))
}

// Markdown renders md for the terminal, or prints it as-is when color is off.
func (p *Printer) Markdown(md string) {
	if !p.Color {
		fmt.Fprint(p.Out, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err != nil {
		fmt.Fprint(p.Out, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(p.Out, md)
		return
	}
	fmt.Fprint(p.Out, out)
}

// Spin shows a spinner on stderr with the given suffix until the returned
// function is called. It is a no-op when stderr is not a terminal.
func Spin(suffix string) (stop func()) {
	if !IsTerminal(os.Stderr) {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + suffix
	s.Start()
	return s.Stop
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
