package repo

import (
	"time"

	"github.com/rogerio-castellano/supermarket-pro/internal/models"
)

// SaleFilter selects ledger entries. Since and Until are inclusive bounds.
type SaleFilter struct {
	ProductID string
	Since     *time.Time
	Until     *time.Time
	Offset    *int
	Limit     *int
}

func matchesSaleFilter(s models.Sale, sf SaleFilter) bool {
	if sf.ProductID != "" && s.ProductID != sf.ProductID {
		return false
	}
	if sf.Since != nil && s.Timestamp.Before(*sf.Since) {
		return false
	}
	if sf.Until != nil && s.Timestamp.After(*sf.Until) {
		return false
	}
	return true
}

// filterSales keeps ledger order (oldest first).
func filterSales(sales []models.Sale, sf SaleFilter) ([]models.Sale, int) {
	filtered := []models.Sale{}
	for _, s := range sales {
		if matchesSaleFilter(s, sf) {
			filtered = append(filtered, s)
		}
	}
	return paginate(filtered, sf.Offset, sf.Limit), len(filtered)
}
