package console

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Printer renders command output on a Writer, coloring it only when the
// writer is a terminal and colors were not turned off.
type Printer struct {
	w       *Writer
	noColor bool

	location, failure, success *color.Color
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w *Writer, noColor bool) *Printer {
	p := &Printer{
		w:        w,
		noColor:  noColor || !w.IsTTY,
		location: color.New(color.Bold),
		failure:  color.New(color.FgRed),
		success:  color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.location, p.failure, p.success} {
		if p.noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}
	return p
}

// Printf writes to the underlying writer.
func (p *Printer) Printf(format string, a ...interface{}) error {
	_, err := fmt.Fprintf(p.w, format, a...)
	return err
}

// Diagnostic prints a `file:line:col: message` line.
func (p *Printer) Diagnostic(filename string, line, column int, message string) error {
	loc := p.location.Sprintf("%s:%d:%d:", filename, line, column)
	return p.Printf("%s %s\n", loc, p.failure.Sprint(message))
}

// Summary prints a separator and the checked and failed file counts.
func (p *Printer) Summary(checked, failed int) error {
	width := p.w.TermWidth()
	if width > defaultTermWidth {
		width = defaultTermWidth
	}
	rule := strings.Repeat("-", width)
	if failed > 0 {
		return p.Printf("%s\n%s\n", rule, p.failure.Sprintf("%d of %d files failed", failed, checked))
	}
	return p.Printf("%s\n%s\n", rule, p.success.Sprintf("%d files ok", checked))
}

// PrintYAML marshals v to YAML and writes it.
func (p *Printer) PrintYAML(v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not marshal YAML: %w", err)
	}
	_, err = p.w.Write(data)
	return err
}

// PrintJSON writes v as indented JSON.
func (p *Printer) PrintJSON(v interface{}) error {
	return writeJSON(p.w, v)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("could not marshal JSON: %w", err)
	}
	return nil
}
