package inventory

import (
	"github.com/rogerio-castellano/supermarket-pro/internal/models"
	"github.com/shopspring/decimal"
)

type InventorySummary struct {
	TotalProducts       int             `json:"total_products"`
	TotalStockUnits     int             `json:"total_stock_units"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
}

// SalesSummary aggregates the ledger. AverageSaleValue is invalid (JSON null)
// when there are no sales.
type SalesSummary struct {
	TotalRevenue     decimal.Decimal     `json:"total_revenue"`
	TransactionCount int                 `json:"transaction_count"`
	AverageSaleValue decimal.NullDecimal `json:"average_sale_value"`
}

// Empty reports the no-data state.
func (s SalesSummary) Empty() bool {
	return s.TransactionCount == 0
}

func SummarizeInventory(products []models.Product) InventorySummary {
	sum := InventorySummary{TotalProducts: len(products), TotalInventoryValue: decimal.Zero}
	for _, p := range products {
		sum.TotalStockUnits += p.Stock
		sum.TotalInventoryValue = sum.TotalInventoryValue.Add(p.Value())
	}
	return sum
}

func SummarizeSales(sales []models.Sale) SalesSummary {
	sum := SalesSummary{TotalRevenue: decimal.Zero, TransactionCount: len(sales)}
	for _, s := range sales {
		sum.TotalRevenue = sum.TotalRevenue.Add(s.Total)
	}
	if sum.TransactionCount > 0 {
		sum.AverageSaleValue = decimal.NewNullDecimal(sum.TotalRevenue.Div(decimal.NewFromInt(int64(sum.TransactionCount))))
	}
	return sum
}

func (s *Service) InventorySummary() (InventorySummary, error) {
	products, err := s.loadProducts()
	if err != nil {
		return InventorySummary{}, err
	}
	return SummarizeInventory(products), nil
}

func (s *Service) SalesSummary() (SalesSummary, error) {
	sales, err := s.loadSales()
	if err != nil {
		return SalesSummary{}, err
	}
	return SummarizeSales(sales), nil
}
