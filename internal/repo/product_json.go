package repo

import (
	"fmt"

	"github.com/rogerio-castellano/supermarket-pro/internal/models"
	"github.com/spf13/afero"
)

// JSONProductRepository keeps products in a single JSON array file. Each call
// reloads the file, so the file is the only source of truth.
type JSONProductRepository struct {
	file *jsonFile
}

func NewJSONProductRepository(fs afero.Fs, path string, opts ...Option) *JSONProductRepository {
	return &JSONProductRepository{file: newJSONFile(fs, path, opts...)}
}

// Path returns the backing file location.
func (r *JSONProductRepository) Path() string {
	return r.file.path
}

// Load returns every stored product. See loadJSON for the failure contract.
func (r *JSONProductRepository) Load() ([]models.Product, error) {
	return loadJSON[models.Product](r.file.fs, r.file.path)
}

// Save replaces the whole file with products.
func (r *JSONProductRepository) Save(products []models.Product) error {
	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	return saveJSON(r.file.fs, r.file.path, products)
}

// Add appends a new product. The file is not written when validation or the
// uniqueness check fails.
func (r *JSONProductRepository) Add(product models.Product) error {
	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	products, err := loadForUpdate[models.Product](r.file)
	if err != nil {
		return err
	}
	products, err = insertProduct(products, product)
	if err != nil {
		return err
	}
	return saveJSON(r.file.fs, r.file.path, products)
}

// GetByID retrieves a product by its ID.
func (r *JSONProductRepository) GetByID(id string) (models.Product, error) {
	products, err := r.Load()
	if err != nil && r.file.strict {
		return models.Product{}, err
	}
	if i := indexOfProduct(products, id); i >= 0 {
		return products[i], nil
	}
	return models.Product{}, fmt.Errorf("product %q: %w", id, ErrProductNotFound)
}

// SetStock overwrites the stock of a product.
func (r *JSONProductRepository) SetStock(id string, stock int) (models.Product, error) {
	return r.updateStock(id, setTo(stock))
}

// AdjustStock adds delta (which may be negative) to the stock of a product.
func (r *JSONProductRepository) AdjustStock(id string, delta int) (models.Product, error) {
	return r.updateStock(id, addDelta(delta))
}

func (r *JSONProductRepository) updateStock(id string, next func(int) int) (models.Product, error) {
	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	products, err := loadForUpdate[models.Product](r.file)
	if err != nil {
		return models.Product{}, err
	}
	updated, err := applyStock(products, id, next)
	if err != nil {
		return models.Product{}, err
	}
	if err := saveJSON(r.file.fs, r.file.path, products); err != nil {
		return models.Product{}, err
	}
	return updated, nil
}

// Filter returns the page of products matching pf and the total match count.
// A load failure is returned alongside the (empty) result.
func (r *JSONProductRepository) Filter(pf ProductFilter) ([]models.Product, int, error) {
	products, err := r.Load()
	page, total := filterProducts(products, pf)
	return page, total, err
}
