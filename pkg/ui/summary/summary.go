// Package summary turns a compilation result into the view every renderer
// shares.
package summary

import (
	"path/filepath"
	"time"

	"github.com/arthur-debert/splice/pkg/compiler"
)

// Summary is a display oriented view of a compilation pass. Paths are
// relative to Source or Dest where possible.
type Summary struct {
	Source     string        `json:"source"`
	Dest       string        `json:"dest"`
	Compiled   int           `json:"compiled"`
	Written    []string      `json:"written"`
	Included   []string      `json:"included"`
	Unresolved []string      `json:"unresolved"`
	DryRun     bool          `json:"dry_run"`
	Duration   time.Duration `json:"duration_ns"`
}

// FromResult builds the summary of r
func FromResult(r *compiler.Result) Summary {
	// a single file source is relative to its directory
	base := r.Source
	if len(r.Files) == 1 && r.Files[0].Input == base {
		base = filepath.Dir(base)
	}

	return Summary{
		Source:     r.Source,
		Dest:       r.Dest,
		Compiled:   len(r.Files),
		Written:    relativeAll(r.Dest, r.Written),
		Included:   relativeAll(base, r.Included),
		Unresolved: nonNil(r.Unresolved),
		DryRun:     r.DryRun,
		Duration:   r.Duration,
	}
}

// Status is a one word description of the pass
func (s Summary) Status() string {
	switch {
	case s.DryRun:
		return "planned"
	case len(s.Unresolved) > 0:
		return "warnings"
	default:
		return "ok"
	}
}

func relativeAll(base string, paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, Relative(base, p))
	}
	return out
}

// Relative returns p relative to base, or p itself when it is outside base
func Relative(base, p string) string {
	rel, err := filepath.Rel(base, p)
	if err != nil || rel == ".." || filepath.IsAbs(rel) || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator) {
		return p
	}
	return rel
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
