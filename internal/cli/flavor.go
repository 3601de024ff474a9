package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/parlor/internal/menu"
	"github.com/mesh-intelligence/parlor/pkg/types"
)

func (a *app) newFlavorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flavor",
		Short: "Add and search flavors",
	}
	cmd.AddCommand(a.newFlavorAddCmd())
	cmd.AddCommand(a.newFlavorSearchCmd())
	return cmd
}

func (a *app) newFlavorAddCmd() *cobra.Command {
	var seasonal bool

	cmd := &cobra.Command{
		Use:   "add <name> <description>",
		Short: "Add a flavor",
		Long: `Add a flavor to the catalog. Flavor names are unique; adding a name that
already exists reports it and changes nothing.

Example:
  parlor flavor add "Mango Mirage" "An exotic mango experience" --seasonal`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(args[0]) == "" {
				return userError(errors.New("flavor name must not be empty"))
			}

			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}

			f := &types.Flavor{Name: args[0], Description: args[1], Seasonal: seasonal}
			msg, err := store.AddFlavor(cmd.Context(), f)
			if err != nil {
				return sysError(fmt.Errorf("add flavor: %w", err))
			}
			return a.printStatus(cmd, msg, f.ID)
		},
	}
	cmd.Flags().BoolVar(&seasonal, "seasonal", false, "mark the flavor as seasonal")
	return cmd
}

func (a *app) newFlavorSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [keyword]",
		Short: "Search flavors by name",
		Long: `Search lists flavors whose name contains the keyword (ASCII
case-insensitive). Without a keyword every flavor is listed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword := ""
			if len(args) == 1 {
				keyword = args[0]
			}

			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}

			flavors, err := store.SearchFlavors(cmd.Context(), keyword)
			if err != nil {
				return sysError(fmt.Errorf("search flavors: %w", err))
			}

			if a.flags.jsonMode {
				return a.printJSON(cmd, flavors)
			}
			out := cmd.OutOrStdout()
			if len(flavors) == 0 {
				fmt.Fprintln(out, "No Flavors found.")
				return nil
			}
			for _, f := range flavors {
				fmt.Fprintln(out, menu.FormatFlavor(f))
			}
			return nil
		},
	}
}
