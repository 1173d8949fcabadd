package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the data directory and empty data files",
		Long:  "Create the data directory and empty products and sales files. Existing files are left untouched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureFiles(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "products: %s\nsales:    %s\n", a.products.Path(), a.sales.Path())
			return nil
		},
	}
}
