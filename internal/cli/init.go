package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	clierrors "github.com/reqt-tools/reqt/internal/errors"
	"github.com/reqt-tools/reqt/internal/ident"
	"github.com/reqt-tools/reqt/internal/workspace"
)

func newInitCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init <project name>",
		Short: "Create the .reqt workspace for a project",
		Long: `Create the .reqt workspace in the project root.

This command writes, in order:
  1. .reqt/config.reqt.json        project title and artifact paths
  2. .reqt/itemTemplate.reqt.json  the record template
  3. .reqt/<Project_Name>.reqt.json  the source of truth, seeded with one
     record for the project itself

The project name may span several arguments; they are joined with spaces.
Characters outside [A-Za-z0-9-_] become "_" in file names.

If .reqt already exists you are asked before it is deleted and recreated.
Declining leaves it untouched.`,
		Example: `  reqt init My Project
  reqt init --root ~/src/app "App Server"
  reqt init --yes Foo       # overwrite an existing workspace without asking`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts, args)
		},
	}
}

func runInit(cmd *cobra.Command, opts *globalOptions, args []string) error {
	// Usage guidance needs no configuration.
	var ids workspace.IDGenerator
	if workspace.HasTitle(args) {
		cfg, err := opts.config()
		if err != nil {
			return err
		}
		gen, err := ident.New(cfg.IDScheme)
		if err != nil {
			return clierrors.ConfigLoadFailure(err)
		}
		ids = gen
	}

	out := cmd.OutOrStdout()
	confirm := func(message string, defaultAnswer bool) bool {
		question := opts.symbols.Warning + " " + message
		if opts.skipConfirmations() {
			fmt.Fprintf(out, "%s yes (confirmation skipped)\n", question)
			return true
		}
		return promptYesNo(cmd.InOrStdin(), out, question, defaultAnswer)
	}

	in := workspace.NewInitializer(opts.root, confirm, ids, out)
	in.Symbols = opts.symbols

	res, err := in.Initialize(args)
	if err != nil {
		var idErr *workspace.IdentityError
		if errors.As(err, &idErr) {
			return clierrors.IdentityFailure(res.Dir, err)
		}
		return clierrors.WorkspaceIOFailure(res.Dir, err)
	}
	return nil
}
