// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arthur-debert/splice/pkg/compiler"
	"github.com/arthur-debert/splice/pkg/errors"
	"github.com/arthur-debert/splice/pkg/ui/styles"
	"github.com/arthur-debert/splice/pkg/ui/summary"
)

// Renderer writes lipgloss styled output
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders a compilation result
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
	var b strings.Builder

	verb := "wrote"
	if s.DryRun {
		verb = "would write"
	}
	mark := styles.Render("Success", "✓")
	if len(s.Unresolved) > 0 {
		mark = styles.Render("Warning", "!")
	}

	fmt.Fprintf(&b, "%s %s %d of %d files %s %s %s\n",
		mark,
		styles.Render("Header", verb),
		len(s.Written), s.Compiled,
		styles.Render("Path", s.Source),
		styles.Render("Muted", "→"),
		styles.Render("Path", s.Dest),
	)
	for _, p := range s.Written {
		b.WriteString(styles.Render("Detail", p) + "\n")
	}

	if len(s.Included) > 0 {
		fmt.Fprintf(&b, "%s\n", styles.Render("Muted", fmt.Sprintf("  %d included, not written", len(s.Included))))
		for _, p := range s.Included {
			b.WriteString(styles.Render("Detail", p) + "\n")
		}
	}

	if len(s.Unresolved) > 0 {
		fmt.Fprintf(&b, "%s %s\n",
			styles.Render("Warning", "undefined variables:"),
			strings.Join(s.Unresolved, ", "))
	}

	fmt.Fprintf(&b, "%s\n", styles.Render("Muted", "  in "+s.Duration.String()))

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error with its code and details
func (r *Renderer) RenderError(err error) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n",
		styles.Render("Error", fmt.Sprintf("✗ %s", errors.GetErrorCode(err))),
		err.Error())

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(styles.Render("Detail", fmt.Sprintf("%s: %v", k, details[k])) + "\n")
	}

	_, werr := io.WriteString(r.output, b.String())
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.Render("Muted", msg))
	return err
}
