package cli

import (
	"fmt"
	"io"

	"github.com/spindlewrit/spindlewrit/internal/project"
)

// Printer writes styled command output.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Success prints a green message.
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.w, StyleSuccess.Render(msg))
}

// Error prints a red message.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.w, StyleError.Render(msg))
}

// Notice prints a yellow message.
func (p *Printer) Notice(msg string) {
	fmt.Fprintln(p.w, StyleWarning.Render(msg))
}

// Detail prints a muted message.
func (p *Printer) Detail(msg string) {
	fmt.Fprintln(p.w, StyleMuted.Render(msg))
}

// Result reports a generation outcome and returns whether it succeeded.
func (p *Printer) Result(result project.Result) bool {
	if result.Success {
		p.Success(result.Message)
		p.Detail("Project created at: " + result.ProjectPath)
		return true
	}
	p.Error(result.Message)
	for _, e := range result.Errors {
		p.Detail("- " + e)
	}
	return false
}
