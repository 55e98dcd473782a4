// Package output provides console output for Templar. It renders styled
// text when the terminal supports it and falls back to plain text with
// semantic prefixes otherwise.
package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
)

// Mode defines the output modes the printer can operate in.
type Mode int

const (
	// ModeAuto detects styling support from the terminal's color profile.
	ModeAuto Mode = iota

	// ModeStyled forces styled output.
	ModeStyled

	// ModePlain forces plain text output.
	ModePlain
)

// Option is a functional option for configuring Printer instances.
type Option func(*Printer)

// WithWriter directs output to the given writer instead of os.Stdout.
func WithWriter(writer io.Writer) Option {
	return func(p *Printer) {
		if writer != nil {
			p.writer = writer
		}
	}
}

// WithMode forces a specific output mode.
func WithMode(mode Mode) Option {
	return func(p *Printer) {
		p.mode = mode
	}
}

// PlainText forces plain text output regardless of terminal capabilities.
func PlainText() Option {
	return func(p *Printer) {
		p.mode = ModePlain
	}
}

// TestMode configures the printer for deterministic output in tests.
func TestMode() Option {
	return func(p *Printer) {
		p.mode = ModePlain
		p.testMode = true
	}
}

// Printer writes terminal output with optional semantic styling.
type Printer struct {
	writer   io.Writer
	mode     Mode
	testMode bool
	styles   *Styles

	mu sync.Mutex
}

// NewPrinter creates a new Printer. By default it writes to os.Stdout and
// auto-detects styling support.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
		mode:   ModeAuto,
	}
	for _, opt := range options {
		opt(p)
	}
	p.styles = DefaultStyles()
	return p
}

// styled reports whether styled rendering is active.
func (p *Printer) styled() bool {
	switch p.mode {
	case ModeStyled:
		return true
	case ModePlain:
		return false
	default:
		return termenv.ColorProfile() != termenv.Ascii
	}
}

// Println writes a line without semantic styling.
func (p *Printer) Println(text string) {
	p.write(text + "\n")
}

// Printf writes formatted text without semantic styling.
func (p *Printer) Printf(format string, args ...interface{}) {
	p.write(fmt.Sprintf(format, args...))
}

// Info writes an informational line.
func (p *Printer) Info(text string) {
	if p.styled() {
		p.write(p.styles.Info.Render(text) + "\n")
		return
	}
	p.write("ℹ " + text + "\n")
}

// Success writes a success line.
func (p *Printer) Success(text string) {
	if p.styled() {
		p.write(p.styles.Success.Render(text) + "\n")
		return
	}
	p.write("✓ " + text + "\n")
}

// Warning writes a warning line.
func (p *Printer) Warning(text string) {
	if p.styled() {
		p.write(p.styles.Warning.Render(text) + "\n")
		return
	}
	p.write("⚠ " + text + "\n")
}

// Error writes an error line.
func (p *Printer) Error(text string) {
	if p.styled() {
		p.write(p.styles.Error.Render(text) + "\n")
		return
	}
	p.write("✗ " + text + "\n")
}

func (p *Printer) write(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = io.WriteString(p.writer, text)
}
