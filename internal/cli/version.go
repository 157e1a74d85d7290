package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reqt-tools/reqt/internal/build"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Display version information",
		Args:    cobra.NoArgs,
		// Skip config loading: version must work with a broken config.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), build.Info())
		},
	}
}
