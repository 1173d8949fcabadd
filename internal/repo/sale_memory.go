package repo

import (
	"fmt"
	"slices"
	"sync"

	"github.com/rogerio-castellano/supermarket-pro/internal/models"
)

type InMemorySaleRepository struct {
	mu    sync.RWMutex
	sales []models.Sale
}

func NewInMemorySaleRepository() *InMemorySaleRepository {
	return &InMemorySaleRepository{
		sales: []models.Sale{},
	}
}

// AddSale inserts a ledger entry without validation, for seeding fixtures.
func (r *InMemorySaleRepository) AddSale(sale models.Sale) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sales = append(r.sales, sale)
}

func (r *InMemorySaleRepository) Load() ([]models.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.sales), nil
}

// Append validates and appends a ledger entry.
func (r *InMemorySaleRepository) Append(sale models.Sale) error {
	if err := models.ValidateSale(sale); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSale, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sales = append(r.sales, sale)
	return nil
}

func (r *InMemorySaleRepository) Filter(sf SaleFilter) ([]models.Sale, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	page, total := filterSales(r.sales, sf)
	return page, total, nil
}

func (r *InMemorySaleRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sales = []models.Sale{}
}
