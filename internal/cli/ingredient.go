package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/parlor/pkg/types"
)

func (a *app) newIngredientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingredient",
		Short: "Add and list ingredients",
	}
	cmd.AddCommand(a.newIngredientAddCmd())
	cmd.AddCommand(a.newIngredientListCmd())
	return cmd
}

func (a *app) newIngredientAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <quantity> <unit>",
		Short: "Add an ingredient",
		Long: `Add an ingredient with a non-negative integer quantity.

Example:
  parlor ingredient add Sugar 50 Kg`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := strconv.Atoi(args[1])
			if err != nil || quantity < 0 {
				return userError(fmt.Errorf("invalid quantity %q: must be a non-negative integer", args[1]))
			}

			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}

			in := &types.Ingredient{Name: args[0], Quantity: quantity, Unit: args[2]}
			msg, err := store.AddIngredient(cmd.Context(), in)
			if err != nil {
				return sysError(fmt.Errorf("add ingredient: %w", err))
			}
			return a.printStatus(cmd, msg, in.ID)
		},
	}
}

func (a *app) newIngredientListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List ingredients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}

			ingredients, err := store.ListIngredients(cmd.Context())
			if err != nil {
				return sysError(fmt.Errorf("list ingredients: %w", err))
			}

			if a.flags.jsonMode {
				return a.printJSON(cmd, ingredients)
			}
			out := cmd.OutOrStdout()
			if len(ingredients) == 0 {
				fmt.Fprintln(out, "No Ingredients found.")
				return nil
			}
			for _, in := range ingredients {
				fmt.Fprintf(out, "ID: %d, Name: %s, Quantity: %d %s\n", in.ID, in.Name, in.Quantity, in.Unit)
			}
			return nil
		},
	}
}
