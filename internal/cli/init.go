package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize parlor storage",
		Long:  "Create the configuration directory and the database file with all tables.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}

			tables, err := store.Tables(cmd.Context())
			if err != nil {
				return sysError(err)
			}

			if a.flags.jsonMode {
				return a.printJSON(cmd, map[string]any{
					"config": a.configDir,
					"db":     store.Path(),
					"tables": tables,
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Parlor initialized successfully")
			fmt.Fprintln(out, "  config:", a.configDir)
			fmt.Fprintln(out, "  db:    ", store.Path())
			return nil
		},
	}
}
