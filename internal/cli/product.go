package cli

import (
	"fmt"
	"strings"

	"github.com/rogerio-castellano/supermarket-pro/internal/models"
	"github.com/rogerio-castellano/supermarket-pro/internal/repo"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newProductCommand(a *app) *cobra.Command {
	productCmd := &cobra.Command{
		Use:   "product",
		Short: "Product catalogue commands",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := cmd.Flags().GetString("id")
			name, _ := cmd.Flags().GetString("name")
			priceStr, _ := cmd.Flags().GetString("price")
			stock, _ := cmd.Flags().GetInt("stock")

			price, err := decimal.NewFromString(strings.TrimSpace(priceStr))
			if err != nil {
				return fmt.Errorf("invalid price %q", priceStr)
			}

			p, err := a.svc.AddProduct(id, name, price, stock)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s), stock %d at %s\n", p.ID, p.Name, p.Stock, money(p.Price))
			return nil
		},
	}
	addCmd.Flags().String("id", "", "Product id (required)")
	addCmd.Flags().String("name", "", "Product name (required)")
	addCmd.Flags().String("price", "0", "Unit price")
	addCmd.Flags().Int("stock", 0, "Initial stock")
	_ = addCmd.MarkFlagRequired("id")
	_ = addCmd.MarkFlagRequired("name")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := productFilterFromFlags(cmd)
			if err != nil {
				return err
			}

			products, total, err := a.svc.ListProducts(filter)
			if err != nil {
				return err
			}
			if err := printProducts(cmd.OutOrStdout(), products); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d products\n", len(products), total)
			return nil
		},
	}
	listCmd.Flags().String("query", "", "Case-insensitive match on name or id")
	listCmd.Flags().String("min-price", "", "Minimum price")
	listCmd.Flags().String("max-price", "", "Maximum price")
	listCmd.Flags().Int("min-stock", 0, "Minimum stock")
	listCmd.Flags().Int("max-stock", 0, "Maximum stock")
	addPagingFlags(listCmd)

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.svc.ProductByID(args[0])
			if err != nil {
				return err
			}
			return printProducts(cmd.OutOrStdout(), []models.Product{p})
		},
	}

	productCmd.AddCommand(addCmd, listCmd, getCmd)
	return productCmd
}

func productFilterFromFlags(cmd *cobra.Command) (repo.ProductFilter, error) {
	var filter repo.ProductFilter
	filter.Query, _ = cmd.Flags().GetString("query")

	for flag, dst := range map[string]**decimal.Decimal{"min-price": &filter.MinPrice, "max-price": &filter.MaxPrice} {
		s, _ := cmd.Flags().GetString(flag)
		if s == "" {
			continue
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return filter, fmt.Errorf("invalid --%s %q", flag, s)
		}
		*dst = &d
	}

	filter.MinStock = optionalInt(cmd, "min-stock")
	filter.MaxStock = optionalInt(cmd, "max-stock")

	var err error
	filter.Offset, filter.Limit, err = pagingFromFlags(cmd)
	return filter, err
}

func addPagingFlags(cmd *cobra.Command) {
	cmd.Flags().Int("offset", 0, "Skip this many results")
	cmd.Flags().Int("limit", 0, "Show at most this many results (0 = all)")
}

func pagingFromFlags(cmd *cobra.Command) (offset, limit *int, err error) {
	o, _ := cmd.Flags().GetInt("offset")
	l, _ := cmd.Flags().GetInt("limit")
	if o < 0 {
		return nil, nil, fmt.Errorf("--offset must be zero or positive")
	}
	if l < 0 {
		return nil, nil, fmt.Errorf("--limit must be zero or positive")
	}
	if o > 0 {
		offset = &o
	}
	if l > 0 {
		limit = &l
	}
	return offset, limit, nil
}

// optionalInt returns nil unless the flag was given on the command line.
func optionalInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}
