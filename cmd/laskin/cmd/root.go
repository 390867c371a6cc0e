package cmd

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/laskin-lang/laskin/cmd/laskin/config"
	"github.com/laskin-lang/laskin/cmd/laskin/tui"
	"github.com/laskin-lang/laskin/engine"
)

var scripts []string

var rootCmd = &cobra.Command{
	Use:     "laskin [switches] [programfile]",
	Short:   "Laskin - an interactive, stack-based calculator language",
	Long: `Laskin is an interactive, stack-based calculator/programming language.
A program is a sequence of whitespace-separated words that manipulate a
shared data stack; values carry dimensional units that participate in
arithmetic and comparison.

Examples:
  laskin                    Start the interactive REPL
  laskin program.lk         Execute a program file
  laskin -e "1 2 + ."       Evaluate an inline script
  laskin < program.lk       Execute from stdin
  laskin --tui              Launch the stack/dictionary viewer`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run(args)
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.Flags().StringArrayVarP(&scripts, "eval", "e", nil, "evaluate an inline script (repeatable)")
	rootCmd.Flags().Bool("version", false, "print version information to stderr and exit")
	rootCmd.Flags().Bool("trace", false, "print a trace of every word executed, including included files")
	rootCmd.Flags().Bool("tui", false, "launch the stack/dictionary viewer instead of the line REPL")
}

// Execute runs the root command and translates any unhandled error into
// a non-zero exit status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if v, _ := rootCmd.Flags().GetBool("version"); v {
		fmt.Fprintf(os.Stderr, "laskin %s\n", Version)
		if BuildTime != "unknown" {
			fmt.Fprintf(os.Stderr, "  built: %s\n", BuildTime)
		}
		return nil
	}

	// Honor NO_COLOR and non-color terminals before any styled output.
	if termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	ctx := engine.NewContext()
	ctx.SetStackPreview(cfg.REPL.StackPreview)
	if trace, _ := rootCmd.Flags().GetBool("trace"); trace {
		ctx.EnableTrace(os.Stdout)
	}

	if len(scripts) > 0 {
		for i, s := range scripts {
			if err := ctx.ExecuteSource(s, 1, os.Stdout); err != nil {
				return fmt.Errorf("script %d: %w", i+1, err)
			}
		}
		return nil
	}

	if len(args) == 1 {
		return runFile(ctx, args[0])
	}

	if tuiMode, _ := rootCmd.Flags().GetBool("tui"); tuiMode {
		return tui.Run(ctx)
	}

	if isatty.IsTerminal(os.Stdin.Fd()) {
		return NewREPL(ctx).Run()
	}
	return runStdin(ctx)
}

func runFile(ctx *engine.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("%s is not valid UTF-8", path)
	}
	return ctx.ExecuteSource(string(data), 1, os.Stdout)
}

func runStdin(ctx *engine.Context) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("stdin is not valid UTF-8")
	}
	return ctx.ExecuteSource(string(data), 1, os.Stdout)
}
