package repo

import "github.com/rogerio-castellano/supermarket-pro/internal/models"

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Load() ([]models.Product, error)
	Save(products []models.Product) error
	Add(product models.Product) error
	GetByID(id string) (models.Product, error)
	SetStock(id string, stock int) (models.Product, error)
	AdjustStock(id string, delta int) (models.Product, error)
	Filter(pf ProductFilter) ([]models.Product, int, error)
}
