package repo

import (
	"fmt"
	"slices"
	"sync"

	"github.com/rogerio-castellano/supermarket-pro/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
	}
}

// Load returns a copy of all products.
func (r *InMemoryProductRepository) Load() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.products), nil
}

// Save replaces the stored products.
func (r *InMemoryProductRepository) Save(products []models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = slices.Clone(products)
	if r.products == nil {
		r.products = []models.Product{}
	}
	return nil
}

// Add adds a new product to the repository.
func (r *InMemoryProductRepository) Add(product models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := insertProduct(slices.Clone(r.products), product)
	if err != nil {
		return err
	}
	r.products = products
	return nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := indexOfProduct(r.products, id); i >= 0 {
		return r.products[i], nil
	}
	return models.Product{}, fmt.Errorf("product %q: %w", id, ErrProductNotFound)
}

// SetStock implements ProductRepository.
func (r *InMemoryProductRepository) SetStock(id string, stock int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return applyStock(r.products, id, setTo(stock))
}

// AdjustStock implements ProductRepository.
func (r *InMemoryProductRepository) AdjustStock(id string, delta int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return applyStock(r.products, id, addDelta(delta))
}

func (r *InMemoryProductRepository) Filter(pf ProductFilter) ([]models.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	page, total := filterProducts(r.products, pf)
	return page, total, nil
}

func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = []models.Product{}
}
