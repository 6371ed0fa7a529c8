// efskip turns an ef-tests harness log into a skip file.
//
// Usage:
//
//	efskip test.out skip.yml
//	efskip resources test_v0.out resources.csv
//	KAKAROT_VERSION=v0,v1 efskip resources
//	efskip check skip.yml
//
// The skip file lists every test that panicked, grouped by category. Tests
// that failed because RunResources ran out of steps carry a
// "#RunResources error" comment.
//
// Output modes for the run summary (auto-detected):
//
//	terminal  styled output (default when stdout is a TTY)
//	llm       terse plain text (default when piped)
//	json      structured JSON for automation
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkoosis/efskip/internal/config"
	"github.com/dkoosis/efskip/internal/logging"
	"github.com/dkoosis/efskip/pkg/pattern"
	"github.com/dkoosis/efskip/pkg/render"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, afero.NewOsFs()))
}

// usageError marks bad arguments or flags.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usage(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// app carries what every command needs.
type app struct {
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer
	cfg    *config.Config

	format   string
	theme    string
	logLevel string
}

func run(args []string, stdout, stderr io.Writer, fs afero.Fs) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{fs: fs, stdout: stdout, stderr: stderr}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	fmt.Fprintf(stderr, "efskip: %v\n", err)

	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintf(stderr, "Run 'efskip --help' for usage.\n")
		return exitUsage
	}
	return exitError
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "efskip <input_file> <output_file>",
		Short: "Generate a skip file from an ef-tests log",
		Long: `Reads the output of an ef-tests run, collects every test that panicked,
checks the count against the harness summary line, and writes a YAML skip
file grouping the failed tests by category. Tests that failed because
RunResources ran out of steps are annotated with "#RunResources error".

Nothing is written when the summary line is missing or the counts disagree.

An input file named like a subcommand (check, resources, version, help) is
taken as that subcommand. Put "--" before the file names to force the skip
pipeline:

  efskip -- check skip.yml`,
		Args:              exactArgs(2),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSkip(cmd.Context(), args[0], args[1])
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.format, "format", config.DefaultFormat, "Output format: auto, terminal, llm, json")
	pf.StringVar(&a.theme, "theme", config.DefaultTheme, "Theme: default, orca, mono")
	pf.StringVar(&a.logLevel, "log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")

	root.AddCommand(a.resourcesCmd(), a.checkCmd(), a.versionCmd())
	return root
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return usage("expected %d arguments, got %d", n, len(args))
		}
		return nil
	}
}

// setup loads the config, overlays flags the user set, and installs the
// logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.fs)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("theme") {
		cfg.Theme = a.theme
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return &usageError{err: err}
	}
	a.cfg = cfg

	logging.Init(a.stderr, logging.ParseLevel(cfg.LogLevel), cfg.Format == "json")
	if cfg.Source != "" {
		logging.Debug("loaded config", "path", cfg.Source)
	}
	return nil
}

// emit renders patterns to stdout in the configured format.
func (a *app) emit(patterns []pattern.Pattern) {
	out := a.renderer().Render(patterns)
	fmt.Fprint(a.stdout, out)
}

func (a *app) renderer() render.Renderer {
	switch resolveFormat(a.cfg.Format, a.stdout) {
	case "json":
		return render.NewJSON()
	case "llm":
		return render.NewLLM()
	default:
		theme := render.ThemeByName(a.cfg.Theme, a.cfg.NoColor)
		return render.NewTerminal(theme, termWidth(a.stdout))
	}
}

func resolveFormat(format string, w io.Writer) string {
	if format != "auto" {
		return format
	}
	// Auto-detect: TTY = terminal, piped = llm
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "terminal"
	}
	return "llm"
}

// termWidth returns the terminal width for w, defaulting to 80.
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return 80
}
