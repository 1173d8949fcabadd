package repo

import (
	"fmt"

	"github.com/rogerio-castellano/supermarket-pro/internal/models"
	"github.com/spf13/afero"
)

// JSONSaleRepository keeps the sales ledger in a single JSON array file.
type JSONSaleRepository struct {
	file *jsonFile
}

func NewJSONSaleRepository(fs afero.Fs, path string, opts ...Option) *JSONSaleRepository {
	return &JSONSaleRepository{file: newJSONFile(fs, path, opts...)}
}

// Path returns the backing file location.
func (r *JSONSaleRepository) Path() string {
	return r.file.path
}

// Load returns the whole ledger, oldest entry first.
func (r *JSONSaleRepository) Load() ([]models.Sale, error) {
	return loadJSON[models.Sale](r.file.fs, r.file.path)
}

// Append adds one entry at the end of the ledger and rewrites the file.
func (r *JSONSaleRepository) Append(sale models.Sale) error {
	if err := models.ValidateSale(sale); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSale, err)
	}

	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	sales, err := loadForUpdate[models.Sale](r.file)
	if err != nil {
		return err
	}
	return saveJSON(r.file.fs, r.file.path, append(sales, sale))
}

func (r *JSONSaleRepository) Filter(sf SaleFilter) ([]models.Sale, int, error) {
	sales, err := r.Load()
	page, total := filterSales(sales, sf)
	return page, total, err
}
