package cli

import (
	"fmt"
	"time"

	"github.com/rogerio-castellano/supermarket-pro/internal/models"
	"github.com/rogerio-castellano/supermarket-pro/internal/repo"
	"github.com/spf13/cobra"
)

func newSaleCommand(a *app) *cobra.Command {
	saleCmd := &cobra.Command{
		Use:   "sale",
		Short: "Sales ledger commands",
	}

	recordCmd := &cobra.Command{
		Use:   "record <product-id>",
		Short: "Record a sale and take the units out of stock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, _ := cmd.Flags().GetInt("quantity")
			sale, err := a.svc.RecordSale(args[0], quantity)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sold %d x %s for %s\n", sale.Quantity, sale.ProductName, money(sale.Total))
			return nil
		},
	}
	recordCmd.Flags().Int("quantity", 1, "Units sold")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded sales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := saleFilterFromFlags(cmd)
			if err != nil {
				return err
			}

			sales, total, err := a.svc.ListSales(filter)
			if err != nil {
				return err
			}
			if err := printSales(cmd.OutOrStdout(), sales); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d sales\n", len(sales), total)
			return nil
		},
	}
	listCmd.Flags().String("product", "", "Only sales of this product id")
	listCmd.Flags().String("since", "", "Only sales at or after this time (RFC 3339)")
	listCmd.Flags().String("until", "", "Only sales at or before this time (RFC 3339)")
	addPagingFlags(listCmd)

	saleCmd.AddCommand(recordCmd, listCmd)
	return saleCmd
}

func saleFilterFromFlags(cmd *cobra.Command) (repo.SaleFilter, error) {
	var filter repo.SaleFilter
	filter.ProductID, _ = cmd.Flags().GetString("product")

	for flag, dst := range map[string]**time.Time{"since": &filter.Since, "until": &filter.Until} {
		s, _ := cmd.Flags().GetString(flag)
		if s == "" {
			continue
		}
		ts, err := models.ParseTimestamp(s)
		if err != nil {
			return filter, fmt.Errorf("invalid --%s %q", flag, s)
		}
		*dst = &ts
	}

	var err error
	filter.Offset, filter.Limit, err = pagingFromFlags(cmd)
	return filter, err
}
