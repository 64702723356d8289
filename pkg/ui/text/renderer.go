// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/splice/pkg/compiler"
	"github.com/arthur-debert/splice/pkg/errors"
	"github.com/arthur-debert/splice/pkg/ui/summary"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders a compilation result as plain lines
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *compiler.Result:
		return r.renderSummary(summary.FromResult(v))
	case summary.Summary:
		return r.renderSummary(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderSummary(s summary.Summary) error {
	lines := []string{fmt.Sprintf("%s: %d written, %d included, %d compiled (%s -> %s)",
		s.Status(), len(s.Written), len(s.Included), s.Compiled, s.Source, s.Dest)}

	prefix := "write"
	if s.DryRun {
		prefix = "would write"
	}
	for _, p := range s.Written {
		lines = append(lines, prefix+" "+p)
	}
	for _, p := range s.Included {
		lines = append(lines, "included "+p)
	}
	for _, name := range s.Unresolved {
		lines = append(lines, "warning: undefined variable "+name)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error [%s]: %v\n", errors.GetErrorCode(err), err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
