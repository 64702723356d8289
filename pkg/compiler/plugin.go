package compiler

import (
	"context"
	"path/filepath"
	"time"

	"github.com/arthur-debert/splice/pkg/errors"
	"github.com/arthur-debert/splice/pkg/filesystem"
	"github.com/arthur-debert/splice/pkg/logging"
	"github.com/arthur-debert/splice/pkg/registry"
	"github.com/arthur-debert/splice/pkg/types"
)

const (
	// DefaultSource is the source location used when none is configured
	DefaultSource = "./src"
	// DefaultDest places output directly in the output root
	DefaultDest = "."
)

// Options configures a Plugin
type Options struct {
	// Source is a file or directory. Relative paths are made absolute
	// against the working directory.
	Source string
	// Dest is resolved against the output root given to Run
	Dest string
	// Data is the base context of every top-level file
	Data types.Context
	// DryRun plans writes without performing them
	DryRun bool
	// FS defaults to the OS filesystem
	FS types.FS
	// Directives defaults to the built-in handlers
	Directives registry.Registry[types.Directive]
}

// Result summarises one Run
type Result struct {
	Source     string
	Dest       string
	Files      []*types.CompiledFile
	Included   []string
	Written    []string
	Skipped    []string
	Unresolved []string
	DryRun     bool
	Duration   time.Duration
}

// Plugin is the entry point a build host calls once per run
type Plugin struct {
	opts     Options
	compiler *Compiler
}

// NewPlugin applies defaults to opts and builds the compiler
func NewPlugin(opts Options) *Plugin {
	if opts.Source == "" {
		opts.Source = DefaultSource
	}
	if opts.Dest == "" {
		opts.Dest = DefaultDest
	}
	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}

	return &Plugin{
		opts: opts,
		compiler: New(opts.FS, Config{
			Directives: opts.Directives,
			Context:    opts.Data,
			DryRun:     opts.DryRun,
		}),
	}
}

// Source returns the absolute source location
func (p *Plugin) Source() (string, error) {
	if filepath.IsAbs(p.opts.Source) {
		return filepath.Clean(p.opts.Source), nil
	}
	abs, err := filepath.Abs(p.opts.Source)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrIO, "cannot resolve source %s", p.opts.Source)
	}
	return abs, nil
}

// Dest returns the output location for the given output root
func (p *Plugin) Dest(outputRoot string) string {
	if filepath.IsAbs(p.opts.Dest) {
		return filepath.Clean(p.opts.Dest)
	}
	return filepath.Join(outputRoot, p.opts.Dest)
}

// Run compiles the source tree and writes its top-level files under
// outputRoot joined with Dest
func (p *Plugin) Run(ctx context.Context, outputRoot string) (*Result, error) {
	logger := logging.GetLogger("compiler.plugin")
	start := time.Now()

	source, err := p.Source()
	if err != nil {
		return nil, err
	}
	dest := p.Dest(outputRoot)

	done := logging.LogOperationStart(logger, "compile")
	defer done()

	files, err := p.compiler.CompileTree(ctx, source)
	if err != nil {
		return nil, err
	}

	report, err := p.compiler.Write(ctx, files, source, dest)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Source:     source,
		Dest:       dest,
		Files:      files,
		Included:   sortedKeys(IncludeSet(files)),
		Written:    report.Written,
		Skipped:    report.Skipped,
		Unresolved: Unresolved(files),
		DryRun:     report.DryRun,
		Duration:   time.Since(start),
	}

	logger.Info().
		Str("source", source).
		Str("dest", dest).
		Int("files", len(files)).
		Int("written", len(result.Written)).
		Int("skipped", len(result.Skipped)).
		Strs("unresolved", result.Unresolved).
		Msg("compilation pass finished")

	return result, nil
}
