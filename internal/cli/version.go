package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/parlor/pkg/parlor"
)

const modulePath = "github.com/mesh-intelligence/parlor"

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the parlor version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "parlor v%s\nmodule: %s\n", parlor.Version, modulePath)
			return nil
		},
	}
}
