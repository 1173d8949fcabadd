package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSummaryCommand(a *app) *cobra.Command {
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print inventory and sales totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold := a.cfg.Analytics.LowStockThreshold
			if cmd.Flags().Changed("threshold") {
				threshold, _ = cmd.Flags().GetInt("threshold")
			}

			d, err := a.svc.Dashboard(threshold)
			if err != nil {
				return err
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintf(tw, "Products\t%d\n", d.Inventory.TotalProducts)
			fmt.Fprintf(tw, "Units in stock\t%d\n", d.Inventory.TotalStockUnits)
			fmt.Fprintf(tw, "Inventory value\t%s\n", money(d.Inventory.TotalInventoryValue))
			fmt.Fprintf(tw, "Low stock (<= %d)\t%d\n", d.LowStockThreshold, d.LowStockCount)
			fmt.Fprintf(tw, "Sales\t%d\n", d.Sales.TransactionCount)
			fmt.Fprintf(tw, "Revenue\t%s\n", money(d.Sales.TotalRevenue))
			if d.Sales.Empty() {
				fmt.Fprintln(tw, "Average sale\tn/a")
			} else {
				fmt.Fprintf(tw, "Average sale\t%s\n", money(d.Sales.AverageSaleValue.Decimal))
			}
			if d.BestSeller != nil {
				fmt.Fprintf(tw, "Best seller\t%s (%d units)\n", d.BestSeller.Name, d.BestSeller.UnitsSold)
			}
			return tw.Flush()
		},
	}
	summaryCmd.Flags().Int("threshold", 0, "Low stock threshold (default from config)")
	return summaryCmd
}
