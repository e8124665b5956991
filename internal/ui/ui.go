// Package ui renders the generator's terminal output.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	boldStyle = lipgloss.NewStyle().Bold(true)
)

// DisableColor forces plain output regardless of terminal detection.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Printer writes status lines, honoring quiet mode for everything
// except errors.
type Printer struct {
	Quiet bool
	Out   io.Writer
	Err   io.Writer
}

func (p *Printer) Infof(format string, args ...any) {
	if p.Quiet {
		return
	}
	fmt.Fprintf(p.Out, format+"\n", args...)
}

func (p *Printer) Successf(format string, args ...any) {
	if p.Quiet {
		return
	}
	fmt.Fprintln(p.Out, okStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

func (p *Printer) Warnf(format string, args ...any) {
	if p.Quiet {
		return
	}
	fmt.Fprintln(p.Out, warnStyle.Render("! "+fmt.Sprintf(format, args...)))
}

func (p *Printer) Errorf(format string, args ...any) {
	fmt.Fprintln(p.Err, errStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

func (p *Printer) Headerf(format string, args ...any) {
	if p.Quiet {
		return
	}
	fmt.Fprintln(p.Out, boldStyle.Render(fmt.Sprintf(format, args...)))
}

// Confirm prompts on out and reads a yes/no answer from in. Anything
// other than "y" or "yes" declines.
func Confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
