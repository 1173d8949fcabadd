package inventory

import (
	"fmt"
	"strings"

	"github.com/rogerio-castellano/supermarket-pro/internal/models"
	"github.com/rogerio-castellano/supermarket-pro/internal/repo"
	"github.com/shopspring/decimal"
)

// AddProduct registers a new product. Id and name are trimmed before the
// uniqueness check.
func (s *Service) AddProduct(id, name string, price decimal.Decimal, stock int) (models.Product, error) {
	product := models.Product{
		ID:    strings.TrimSpace(id),
		Name:  strings.TrimSpace(name),
		Price: price,
		Stock: stock,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.products.Add(product); err != nil {
		return models.Product{}, err
	}

	s.log.Info().Str("product_id", product.ID).Str("price", product.Price.String()).Int("stock", product.Stock).Msg("product added")
	return product, nil
}

// AdjustStock adds delta to the stock of a product. The result may not be negative.
func (s *Service) AdjustStock(id string, delta int) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.products.AdjustStock(id, delta)
	if err != nil {
		return models.Product{}, err
	}

	s.log.Info().Str("product_id", id).Int("delta", delta).Int("stock", product.Stock).Msg("stock adjusted")
	return product, nil
}

// SetStock overwrites the stock of a product.
func (s *Service) SetStock(id string, stock int) (models.Product, error) {
	if stock < 0 {
		return models.Product{}, fmt.Errorf("product %q would have stock %d: %w", id, stock, repo.ErrNegativeStock)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.products.SetStock(id, stock)
	if err != nil {
		return models.Product{}, err
	}

	s.log.Info().Str("product_id", id).Int("stock", product.Stock).Msg("stock set")
	return product, nil
}

func (s *Service) ProductByID(id string) (models.Product, error) {
	return s.products.GetByID(id)
}

// ListProducts returns one page of products matching pf and the total number
// of matches.
func (s *Service) ListProducts(pf repo.ProductFilter) ([]models.Product, int, error) {
	products, total, err := s.products.Filter(pf)
	if err := s.tolerate(err, "products"); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
