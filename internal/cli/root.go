// Package cli implements the reqt command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/reqt-tools/reqt/internal/config"
	clierrors "github.com/reqt-tools/reqt/internal/errors"
	"github.com/reqt-tools/reqt/internal/progress"
	"github.com/reqt-tools/reqt/internal/workspace"
)

// globalOptions holds persistent flag values and the loaded configuration
// shared by every subcommand.
type globalOptions struct {
	root  string
	yes   bool
	debug bool

	cfg     *config.Configuration
	cfgErr  error
	symbols progress.Symbols
}

// NewRootCmd builds the reqt command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "reqt",
		Short: "Requirements workspace tooling",
		Long: `reqt keeps a project's requirements as JSON records in a .reqt workspace.

Configuration precedence (highest to lowest):
  1. Environment variables (REQT_*)
  2. User config (~/.config/reqt/config.yml)
  3. Built-in defaults`,
		Example: `  # Create the workspace for a project in the current directory
  reqt init My Project

  # Inspect it
  reqt status`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.load,
	}

	rootCmd.PersistentFlags().StringVar(&opts.root, "root", "", "Project root (default: current directory)")
	rootCmd.PersistentFlags().BoolVarP(&opts.yes, "yes", "y", false, "Answer yes to confirmation prompts")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Print debug traces to stderr")

	rootCmd.AddCommand(newInitCmd(opts))
	rootCmd.AddCommand(newStatusCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the reqt CLI and prints any error to stderr.
func Execute() error {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// load resolves the project root, loads configuration and applies output
// settings before any subcommand runs. A config failure is kept in cfgErr
// and reported by the commands that need the configuration, so output
// falls back to zero-value settings until then.
func (o *globalOptions) load(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		o.cfgErr = clierrors.ConfigLoadFailure(err)
		cfg = &config.Configuration{}
	}
	o.cfg = cfg

	if o.root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return clierrors.WrapWithMessage(err, clierrors.Filesystem, "getting current directory")
		}
		o.root = wd
	}

	caps := progress.DetectTerminalCapabilities()
	if cfg.NoColor || !caps.SupportsColor {
		color.NoColor = true
	}

	if cfg.ASCII {
		o.symbols = progress.ASCIISymbols()
	} else {
		o.symbols = progress.SelectSymbols(caps)
	}

	if o.debug {
		workspace.SetDebugOutput(cmd.ErrOrStderr())
	}
	return nil
}

// config returns the loaded configuration or the deferred load failure.
func (o *globalOptions) config() (*config.Configuration, error) {
	if o.cfgErr != nil {
		return nil, o.cfgErr
	}
	return o.cfg, nil
}

// skipConfirmations reports whether prompts are answered "yes" without asking.
func (o *globalOptions) skipConfirmations() bool {
	return o.yes || (o.cfg != nil && o.cfg.SkipConfirmations)
}

func printError(w io.Writer, err error) {
	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		clierrors.FprintError(w, cliErr)
		return
	}
	// cobra argument and flag errors
	clierrors.FprintError(w, clierrors.New(clierrors.Argument, err.Error(),
		"Run 'reqt --help' for usage"))
}
