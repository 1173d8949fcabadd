package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/rogerio-castellano/supermarket-pro/internal/models"
	"github.com/shopspring/decimal"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func printProducts(w io.Writer, products []models.Product) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tSTOCK\tVALUE")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", p.ID, p.Name, money(p.Price), p.Stock, money(p.Value()))
	}
	return tw.Flush()
}

func printSales(w io.Writer, sales []models.Sale) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "TIMESTAMP\tPRODUCT\tNAME\tQTY\tTOTAL")
	for _, s := range sales {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			s.Timestamp.Format(time.RFC3339), s.ProductID, s.ProductName, s.Quantity, money(s.Total))
	}
	return tw.Flush()
}
