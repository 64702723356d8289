package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/splice/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how build summaries and failures are printed
type Format int

const (
	// FormatAuto resolves to FormatTerminal or FormatText for the writer
	FormatAuto Format = iota
	// FormatTerminal is lipgloss styled output
	FormatTerminal
	// FormatText is one plain line per fact, suitable for logs
	FormatText
	// FormatJSON is a single document per run
	FormatJSON
)

var formatNames = map[Format]string{
	FormatAuto:     "auto",
	FormatTerminal: "term",
	FormatText:     "text",
	FormatJSON:     "json",
}

// formatAliases are the accepted --format spellings
var formatAliases = map[string]Format{
	"":         FormatAuto,
	"auto":     FormatAuto,
	"term":     FormatTerminal,
	"terminal": FormatTerminal,
	"text":     FormatText,
	"plain":    FormatText,
	"json":     FormatJSON,
}

// String returns the canonical --format name
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat maps a --format value to a Format, case insensitively
func ParseFormat(s string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format %q, want auto, term, text or json", s).
		WithDetail("format", s)
}

// fdWriter is implemented by *os.File and other descriptor backed writers
type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// DetectFormat resolves FormatAuto for w. Only a color capable terminal
// gets styled output; buffers, pipes and regular files get plain text.
func DetectFormat(w io.Writer) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	f, ok := w.(fdWriter)
	if !ok {
		return FormatText
	}
	if fd := f.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return FormatText
	}

	if termenv.NewOutput(w).EnvColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
