package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	clierrors "github.com/reqt-tools/reqt/internal/errors"
	"github.com/reqt-tools/reqt/internal/workspace"
)

func newStatusCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the project's .reqt workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := opts.config(); err != nil {
				return err
			}
			ws, err := workspace.Load(opts.root)
			if err != nil {
				if errors.Is(err, workspace.ErrNoWorkspace) {
					return clierrors.NoWorkspace(opts.root)
				}
				return clierrors.WorkspaceUnreadable(workspace.DirName, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Project:   %s\n", ws.Config.ProjectTitle)
			fmt.Fprintf(out, "Workspace: %s\n", ws.Dir)
			fmt.Fprintf(out, "SOT:       %s (%d records)\n", ws.Config.SotPath, len(ws.Records))
			fmt.Fprintf(out, "SOT file:  %s\n", ws.SOTPath())
			fmt.Fprintf(out, "Template:  %s\n", ws.Config.TemplatePath)
			if seed, ok := ws.Seed(); ok {
				fmt.Fprintf(out, "Seed:      %s [%s]\n", seed.ReqtID, seed.Status)
			} else {
				fmt.Fprintf(out, "%s no seed record (outline 0) found\n", opts.symbols.Warning)
			}
			return nil
		},
	}
}
