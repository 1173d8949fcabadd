package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newStockCommand(a *app) *cobra.Command {
	stockCmd := &cobra.Command{
		Use:   "stock",
		Short: "Stock level commands",
	}

	adjustCmd := &cobra.Command{
		Use:   "adjust <id>",
		Short: "Add a signed delta to a product's stock",
		Example: "  supermarket stock adjust A1 --delta 12\n" +
			"  supermarket stock adjust A1 --delta=-3",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, _ := cmd.Flags().GetInt("delta")
			p, err := a.svc.AdjustStock(args[0], delta)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s stock is now %d\n", p.ID, p.Stock)
			return nil
		},
	}
	adjustCmd.Flags().Int("delta", 0, "Units to add (negative to remove)")
	_ = adjustCmd.MarkFlagRequired("delta")

	setCmd := &cobra.Command{
		Use:   "set <id> <stock>",
		Short: "Set a product's stock",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stock, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid stock %q", args[1])
			}
			p, err := a.svc.SetStock(args[0], stock)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s stock is now %d\n", p.ID, p.Stock)
			return nil
		},
	}

	stockCmd.AddCommand(adjustCmd, setCmd)
	return stockCmd
}
