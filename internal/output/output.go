// Package output handles styled terminal output for the CLI.
//
// Styles are only applied when the destination is a terminal; piped output
// stays plain so it can be pasted straight back into a note.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes human-readable output to a writer.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	isTTY  bool
	styles *Styles
}

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Header  lipgloss.Style
	Time    lipgloss.Style
	Muted   lipgloss.Style
}

// NewPrinter creates a Printer. Colors are enabled only when isTTY is true.
func NewPrinter(writer io.Writer, isTTY bool) *Printer {
	styles := &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // Red
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),           // Green
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Time:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // Cyan
		Muted:   lipgloss.NewStyle().Faint(true),
	}

	if !isTTY {
		styles.Error = lipgloss.NewStyle()
		styles.Success = lipgloss.NewStyle()
		styles.Header = lipgloss.NewStyle()
		styles.Time = lipgloss.NewStyle()
		styles.Muted = lipgloss.NewStyle()
	}

	return &Printer{
		w:      writer,
		errW:   writer,
		isTTY:  isTTY,
		styles: styles,
	}
}

// WithStderr sets a separate writer for errors. Returns the printer for
// chaining.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// IsTTY reports whether the printer output is a terminal.
func (p *Printer) IsTTY() bool {
	return p.isTTY
}

// Styles exposes the active style set.
func (p *Printer) Styles() *Styles {
	return p.styles
}

// Success writes a styled confirmation line.
func (p *Printer) Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.w, p.styles.Success.Render(msg))
}

// Error writes a styled error line to the error writer.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), err)
}

// Muted writes a de-emphasized line, used for hints and empty states.
func (p *Printer) Muted(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.w, p.styles.Muted.Render(msg))
}

// Print formats and writes to the output without a newline.
func (p *Printer) Print(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// Println writes a line to the output.
func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.w, args...)
}

// IsTTY checks if a writer is a terminal. Returns true only for an os.File
// that is a character device.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
