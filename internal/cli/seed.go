package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the starter catalog into empty tables",
		Long: `Seed writes the default flavors, ingredients and allergens. A table that
already holds rows is left untouched, so seed can be run repeatedly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}

			res, err := store.Seed(cmd.Context())
			if err != nil {
				return sysError(fmt.Errorf("seed: %w", err))
			}

			if a.flags.jsonMode {
				return a.printJSON(cmd, res)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d flavors, %d ingredients, %d allergens\n",
				res.Flavors, res.Ingredients, res.Allergens)
			return nil
		},
	}
}
