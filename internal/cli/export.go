package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <dir>",
		Short: "Write every table to JSONL files in a directory",
		Long: `Export writes flavors.jsonl, ingredients.jsonl, allergens.jsonl and
cart.jsonl into dir, one JSON object per line. Existing files are replaced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}

			res, err := store.Export(cmd.Context(), args[0])
			if err != nil {
				return sysError(fmt.Errorf("export: %w", err))
			}

			if a.flags.jsonMode {
				return a.printJSON(cmd, res)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d flavors, %d ingredients, %d allergens, %d cart lines to %s\n",
				res.Flavors, res.Ingredients, res.Allergens, res.CartLines, args[0])
			return nil
		},
	}
}
