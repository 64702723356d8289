package compiler

import (
	"context"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/splice/pkg/errors"
	"github.com/arthur-debert/splice/pkg/expander"
	"github.com/arthur-debert/splice/pkg/logging"
	"github.com/arthur-debert/splice/pkg/registry"
	"github.com/arthur-debert/splice/pkg/types"
	"github.com/rs/zerolog"
)

// Config holds the settings fixed at construction time
type Config struct {
	// Directives selects the handlers. Nil means the built-in set.
	Directives registry.Registry[types.Directive]
	// Context is the base context of every top-level file
	Context types.Context
	// DryRun computes the write plan without touching the filesystem
	DryRun bool
}

// Compiler compiles source trees and writes the top-level results
type Compiler struct {
	fs       types.FS
	expander *expander.Expander
	base     types.Context
	dryRun   bool
	logger   zerolog.Logger
}

// WriteReport describes what the write phase did, or would do on a dry run
type WriteReport struct {
	// Written holds output paths in write order
	Written []string
	// Skipped holds inputs left out because they were included elsewhere
	Skipped []string
	DryRun  bool
}

// New creates a Compiler working through fsys
func New(fsys types.FS, cfg Config) *Compiler {
	return &Compiler{
		fs:       fsys,
		expander: expander.New(fsys, cfg.Directives),
		base:     cfg.Context,
		dryRun:   cfg.DryRun,
		logger:   logging.GetLogger("compiler"),
	}
}

// CompileTree compiles sourceRoot. A regular file yields a single result.
// A directory is walked in listing order, one entry at a time. Anything
// else, including paths that cannot be stat'ed and symlinks, yields
// nothing.
func (c *Compiler) CompileTree(ctx context.Context, sourceRoot string) ([]*types.CompiledFile, error) {
	info, err := c.fs.Lstat(sourceRoot)
	if err != nil {
		c.logger.Debug().Err(err).Str("path", sourceRoot).Msg("cannot stat, skipping")
		return nil, nil
	}

	switch {
	case info.Mode().IsRegular():
		file, err := c.expander.CompileFile(ctx, sourceRoot, c.base)
		if err != nil {
			return nil, err
		}
		return []*types.CompiledFile{file}, nil

	case info.IsDir():
		entries, err := c.fs.ReadDir(sourceRoot)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrIO, "cannot list %s", sourceRoot).
				WithDetail("path", sourceRoot)
		}

		var files []*types.CompiledFile
		for _, entry := range entries {
			compiled, err := c.CompileTree(ctx, filepath.Join(sourceRoot, entry.Name()))
			if err != nil {
				return nil, err
			}
			files = append(files, compiled...)
		}
		return files, nil

	default:
		c.logger.Debug().
			Str("path", sourceRoot).
			Str("mode", info.Mode().String()).
			Msg("not a regular file or directory, skipping")
		return nil, nil
	}
}

// IncludeSet collects every path pulled in by include across files
func IncludeSet(files []*types.CompiledFile) map[string]struct{} {
	set := make(map[string]struct{})
	for _, f := range files {
		for _, inc := range f.Includes {
			set[inc] = struct{}{}
		}
	}
	return set
}

// Write stores every compiled file that is not in the include set under
// outputRoot, mirroring its position relative to sourceRoot. When
// sourceRoot is a file its parent directory is the base. The first failure
// stops the phase; files already written stay on disk.
func (c *Compiler) Write(ctx context.Context, files []*types.CompiledFile, sourceRoot, outputRoot string) (*WriteReport, error) {
	info, err := c.fs.Stat(sourceRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot stat source %s", sourceRoot).
			WithDetail("path", sourceRoot)
	}

	base := sourceRoot
	if !info.IsDir() {
		base = filepath.Dir(sourceRoot)
	}

	included := IncludeSet(files)
	report := &WriteReport{DryRun: c.dryRun}

	for _, file := range files {
		if _, ok := included[file.Input]; ok {
			c.logger.Debug().Str("input", file.Input).Msg("included elsewhere, not writing")
			report.Skipped = append(report.Skipped, file.Input)
			continue
		}

		rel, err := filepath.Rel(base, file.Input)
		if err != nil {
			return report, errors.Wrapf(err, errors.ErrInternal, "%s is outside %s", file.Input, base)
		}
		target := filepath.Join(outputRoot, rel)

		if !c.dryRun {
			if err := c.writeFile(target, file.Content); err != nil {
				return report, err
			}
		}

		c.logger.Info().
			Str("input", file.Input).
			Str("output", target).
			Bool("dry_run", c.dryRun).
			Msg("wrote file")
		report.Written = append(report.Written, target)
	}

	return report, nil
}

func (c *Compiler) writeFile(target, content string) error {
	dir := filepath.Dir(target)
	if !c.fs.Exists(dir) {
		if err := c.fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrIO, "cannot create %s", dir).
				WithDetail("path", dir)
		}
	}
	if err := c.fs.WriteFile(target, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot write %s", target).
			WithDetail("path", target)
	}
	return nil
}

// Unresolved returns the distinct unresolved show variables across files
func Unresolved(files []*types.CompiledFile) []string {
	seen := make(map[string]struct{})
	for _, f := range files {
		for _, name := range f.Unresolved {
			seen[name] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
