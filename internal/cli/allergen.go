package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/parlor/pkg/types"
)

func (a *app) newAllergenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allergen",
		Short: "Add and list allergens",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Add an allergen",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}

			al := &types.Allergen{Name: args[0]}
			msg, err := store.AddAllergen(cmd.Context(), al)
			if err != nil {
				return sysError(fmt.Errorf("add allergen: %w", err))
			}
			return a.printStatus(cmd, msg, al.ID)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List allergens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}

			allergens, err := store.ListAllergens(cmd.Context())
			if err != nil {
				return sysError(fmt.Errorf("list allergens: %w", err))
			}

			if a.flags.jsonMode {
				return a.printJSON(cmd, allergens)
			}
			out := cmd.OutOrStdout()
			if len(allergens) == 0 {
				fmt.Fprintln(out, "No Allergens found.")
				return nil
			}
			for _, al := range allergens {
				fmt.Fprintf(out, "ID: %d, Name: %s\n", al.ID, al.Name)
			}
			return nil
		},
	})
	return cmd
}
