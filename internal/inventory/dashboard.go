package inventory

import (
	"sort"

	"github.com/rogerio-castellano/supermarket-pro/internal/models"
	"github.com/shopspring/decimal"
)

type BestSeller struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitsSold int             `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

type ProductStock struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
}

type DailyRevenue struct {
	Date  string          `json:"date"` // YYYY-MM-DD in the sale's own zone
	Total decimal.Decimal `json:"total"`
}

// Dashboard is the analytics view: both summaries plus the series behind the
// stock-per-product and revenue-per-day charts.
type Dashboard struct {
	Inventory         InventorySummary `json:"inventory"`
	Sales             SalesSummary     `json:"sales"`
	LowStockThreshold int              `json:"low_stock_threshold"`
	LowStockCount     int              `json:"low_stock_count"`
	BestSeller        *BestSeller      `json:"best_seller"`
	StockByProduct    []ProductStock   `json:"stock_by_product"`
	DailyRevenue      []DailyRevenue   `json:"daily_revenue"`
}

func (s *Service) Dashboard(lowStockThreshold int) (Dashboard, error) {
	products, err := s.loadProducts()
	if err != nil {
		return Dashboard{}, err
	}
	sales, err := s.loadSales()
	if err != nil {
		return Dashboard{}, err
	}
	return BuildDashboard(products, sales, lowStockThreshold), nil
}

func BuildDashboard(products []models.Product, sales []models.Sale, lowStockThreshold int) Dashboard {
	d := Dashboard{
		Inventory:         SummarizeInventory(products),
		Sales:             SummarizeSales(sales),
		LowStockThreshold: lowStockThreshold,
		StockByProduct:    make([]ProductStock, 0, len(products)),
		DailyRevenue:      dailyRevenue(sales),
		BestSeller:        bestSeller(sales),
	}

	for _, p := range products {
		d.StockByProduct = append(d.StockByProduct, ProductStock{ProductID: p.ID, Name: p.Name, Stock: p.Stock})
		if p.Stock <= lowStockThreshold {
			d.LowStockCount++
		}
	}
	return d
}

func dailyRevenue(sales []models.Sale) []DailyRevenue {
	totals := map[string]decimal.Decimal{}
	for _, s := range sales {
		day := s.Timestamp.Format("2006-01-02")
		totals[day] = totals[day].Add(s.Total)
	}

	out := make([]DailyRevenue, 0, len(totals))
	for day, total := range totals {
		out = append(out, DailyRevenue{Date: day, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// bestSeller picks the product with the most units sold. Ties go to the
// product that appears first in the ledger.
func bestSeller(sales []models.Sale) *BestSeller {
	var order []string
	byID := map[string]*BestSeller{}
	for _, s := range sales {
		b, ok := byID[s.ProductID]
		if !ok {
			b = &BestSeller{ProductID: s.ProductID, Revenue: decimal.Zero}
			byID[s.ProductID] = b
			order = append(order, s.ProductID)
		}
		b.Name = s.ProductName
		b.UnitsSold += s.Quantity
		b.Revenue = b.Revenue.Add(s.Total)
	}

	var best *BestSeller
	for _, id := range order {
		if b := byID[id]; best == nil || b.UnitsSold > best.UnitsSold {
			best = b
		}
	}
	return best
}
