package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/parlor/internal/menu"
)

func (a *app) newCartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Add, view and remove cart lines",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <flavor-id>",
		Short: "Add one line for a flavor to the cart",
		Long:  "Add one cart line for the flavor. The flavor id is not checked.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseFlavorID(args[0])
			if err != nil {
				return err
			}
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}

			msg, err := store.AddToCart(cmd.Context(), id)
			if err != nil {
				return sysError(fmt.Errorf("add to cart: %w", err))
			}
			return a.printStatus(cmd, msg, 0)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "view",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}

			items, err := store.ViewCart(cmd.Context())
			if err != nil {
				return sysError(fmt.Errorf("view cart: %w", err))
			}

			if a.flags.jsonMode {
				return a.printJSON(cmd, items)
			}
			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "Cart is empty!")
				return nil
			}
			for _, item := range items {
				fmt.Fprintln(out, menu.FormatCartItem(item))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <flavor-id>",
		Short: "Remove every cart line for a flavor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseFlavorID(args[0])
			if err != nil {
				return err
			}
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}

			msg, err := store.RemoveFromCart(cmd.Context(), id)
			if err != nil {
				return sysError(fmt.Errorf("remove from cart: %w", err))
			}
			return a.printStatus(cmd, msg, 0)
		},
	})

	return cmd
}
