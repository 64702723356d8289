package splice

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/arthur-debert/splice/internal/version"
	"github.com/arthur-debert/splice/pkg/compiler"
	"github.com/arthur-debert/splice/pkg/config"
	"github.com/arthur-debert/splice/pkg/errors"
	"github.com/arthur-debert/splice/pkg/ui"
	"github.com/arthur-debert/splice/pkg/watch"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// buildFlags are the per-command overrides shared by build and watch
type buildFlags struct {
	src  string
	out  string
	dest string
	data []string
}

func (f *buildFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.src, "src", "s", "", MsgFlagSrc)
	cmd.Flags().StringVarP(&f.out, "out", "o", "", MsgFlagOut)
	cmd.Flags().StringVarP(&f.dest, "dest", "d", "", MsgFlagDest)
	cmd.Flags().StringArrayVar(&f.data, "data", nil, MsgFlagData)
}

// overrides turns the flags that were set into config overrides
func (f *buildFlags) overrides(cmd *cobra.Command) (map[string]interface{}, error) {
	overrides, err := config.ParseAssignments("data", f.data)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("src") {
		overrides["source"] = f.src
	}
	if cmd.Flags().Changed("out") {
		overrides["output"] = f.out
	}
	if cmd.Flags().Changed("dest") {
		overrides["dest"] = f.dest
	}
	return overrides, nil
}

func loadConfig(cmd *cobra.Command, opts *globalOptions, flags *buildFlags) (*config.Config, error) {
	overrides, err := flags.overrides(cmd)
	if err != nil {
		return nil, err
	}

	return config.Load(config.LoadOptions{
		File:      opts.configFile,
		Overrides: overrides,
	})
}

// reportError puts err in the JSON document when one is being produced.
// Other formats leave printing to main.
func reportError(renderer ui.Renderer, format ui.Format, err error) error {
	if format == ui.FormatJSON {
		_ = renderer.RenderError(err)
	}
	return err
}

// runBuild compiles cfg.Source into cfg.Output joined with cfg.Dest
func runBuild(ctx context.Context, cfg *config.Config, dryRun bool) (*compiler.Result, error) {
	scope, err := cfg.Context()
	if err != nil {
		return nil, err
	}

	outputRoot, err := filepath.Abs(cfg.Output)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid output %q", cfg.Output)
	}

	plugin := compiler.NewPlugin(compiler.Options{
		Source: cfg.Source,
		Dest:   cfg.Dest,
		Data:   scope,
		DryRun: dryRun,
	})
	return plugin.Run(ctx, outputRoot)
}

// watchPaths resolves the watched directory and the build destination. A
// single file source is watched through its directory. A destination that
// contains the watched directory would rewrite it on every build, so it is
// refused.
func watchPaths(cfg *config.Config) (source, dest string, err error) {
	outputRoot, err := filepath.Abs(cfg.Output)
	if err != nil {
		return "", "", errors.Wrapf(err, errors.ErrInvalidInput, "invalid output %q", cfg.Output)
	}

	plugin := compiler.NewPlugin(compiler.Options{Source: cfg.Source, Dest: cfg.Dest})
	source, err = plugin.Source()
	if err != nil {
		return "", "", err
	}
	dest = plugin.Dest(outputRoot)
	if info, statErr := os.Stat(source); statErr == nil && !info.IsDir() {
		source = filepath.Dir(source)
	}

	if watch.Within(dest, source) {
		return "", "", errors.Newf(errors.ErrInvalidInput, MsgErrDestHoldsSource, dest, source).
			WithDetail("dest", dest).
			WithDetail("source", source)
	}
	return source, dest, nil
}

func newBuildCmd(opts *globalOptions) *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:     "build",
		Short:   MsgBuildShort,
		Long:    MsgBuildLong,
		Example: MsgBuildExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, format, err := ui.ForName(opts.format, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd, opts, flags)
			if err != nil {
				return reportError(renderer, format, err)
			}

			result, err := runBuild(cmd.Context(), cfg, opts.dryRun)
			if err != nil {
				return reportError(renderer, format, err)
			}

			return renderer.RenderResult(result)
		},
	}

	flags.register(cmd)
	return cmd
}

func newWatchCmd(opts *globalOptions) *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:     "watch",
		Short:   MsgWatchShort,
		Long:    MsgWatchLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts, flags)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			info := pterm.Info.WithWriter(out)
			success := pterm.Success.WithWriter(out)
			warning := pterm.Warning.WithWriter(out)
			failure := pterm.Error.WithWriter(out)

			rebuild := func(ctx context.Context) {
				result, err := runBuild(ctx, cfg, opts.dryRun)
				if err != nil {
					failure.Println(err.Error())
					return
				}
				success.Printfln(MsgRebuilt, len(result.Written), result.Duration.Round(time.Millisecond))
				if len(result.Unresolved) > 0 {
					warning.Printfln(MsgUnresolvedNames, strings.Join(result.Unresolved, ", "))
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			source, dest, err := watchPaths(cfg)
			if err != nil {
				return err
			}
			var ignore []string
			if watch.Within(source, dest) {
				warning.Printfln(MsgDestInSource, dest)
				ignore = append(ignore, dest)
			}
			w, err := watch.New(source, watch.DefaultDebounce, ignore...)
			if err != nil {
				return err
			}
			defer func() {
				if err := w.Close(); err != nil {
					log.Debug().Err(err).Msg("Failed to close watcher")
				}
			}()

			rebuild(ctx)
			info.Printfln(MsgWatching, w.Root())
			err = w.Run(ctx, func(ctx context.Context, changed []string) {
				info.Printfln(MsgChanged, len(changed))
				rebuild(ctx)
			})
			info.Println(MsgWatchStopped)
			return err
		},
	}

	flags.register(cmd)
	return cmd
}

func newGenconfigCmd() *cobra.Command {
	var (
		syntax string
		write  bool
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenconfigShort,
		Long:    MsgGenconfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.Generate(syntax)
			if err != nil {
				return err
			}

			if !write {
				_, err = cmd.OutOrStdout().Write(content)
				return err
			}

			name := config.FileName(syntax)
			if _, err := os.Stat(name); err == nil {
				return errors.Newf(errors.ErrAlreadyExists, MsgErrConfigExist, name).
					WithDetail("path", name)
			}
			if err := os.WriteFile(name, content, 0644); err != nil {
				return errors.Wrapf(err, errors.ErrIO, "failed to write %s", name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, name)
			return nil
		},
	}

	cmd.Flags().StringVar(&syntax, "syntax", "toml", MsgFlagSyntax)
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "splice version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
