// Package ui prints build summaries and coded errors. A summary is
// rendered styled for terminals, as plain lines for logs and pipes, or as
// one JSON document for scripts.
package ui

import (
	"io"

	"github.com/arthur-debert/splice/pkg/errors"
	"github.com/arthur-debert/splice/pkg/ui/json"
	"github.com/arthur-debert/splice/pkg/ui/terminal"
	"github.com/arthur-debert/splice/pkg/ui/text"
)

// Renderer prints the outcome of a build in one format
type Renderer interface {
	// RenderResult prints a *compiler.Result or a summary.Summary
	RenderResult(result interface{}) error

	// RenderError prints err with its code and details
	RenderError(err error) error

	// RenderMessage prints a single line of status
	RenderMessage(msg string) error
}

// NewRenderer returns the renderer for format writing to w. FormatAuto is
// resolved against w by DetectFormat.
func NewRenderer(format Format, w io.Writer) (Renderer, error) {
	if format == FormatAuto {
		format = DetectFormat(w)
	}

	switch format {
	case FormatTerminal:
		return terminal.New(w)
	case FormatText:
		return text.New(w)
	case FormatJSON:
		return json.New(w)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}

// ForName parses a --format value and returns its renderer along with the
// resolved format, so callers can tell whether output is machine readable
func ForName(name string, w io.Writer) (Renderer, Format, error) {
	format, err := ParseFormat(name)
	if err != nil {
		return nil, FormatAuto, err
	}
	if format == FormatAuto {
		format = DetectFormat(w)
	}

	renderer, err := NewRenderer(format, w)
	if err != nil {
		return nil, FormatAuto, err
	}
	return renderer, format, nil
}
