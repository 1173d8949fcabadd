package repo

import (
	"fmt"

	"github.com/rogerio-castellano/supermarket-pro/internal/models"
)

func indexOfProduct(products []models.Product, id string) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// insertProduct validates p and appends it, rejecting an id that is already
// present (exact, case-sensitive match).
func insertProduct(products []models.Product, p models.Product) ([]models.Product, error) {
	if err := models.ValidateProduct(p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProduct, err)
	}
	if indexOfProduct(products, p.ID) >= 0 {
		return nil, fmt.Errorf("product %q: %w", p.ID, ErrDuplicateID)
	}
	return append(products, p), nil
}

// applyStock replaces the stock of product id with next(current stock). The
// slice is only modified when the result is non-negative.
func applyStock(products []models.Product, id string, next func(current int) int) (models.Product, error) {
	i := indexOfProduct(products, id)
	if i < 0 {
		return models.Product{}, fmt.Errorf("product %q: %w", id, ErrProductNotFound)
	}

	stock := next(products[i].Stock)
	if stock < 0 {
		return models.Product{}, fmt.Errorf("product %q would have stock %d: %w", id, stock, ErrNegativeStock)
	}

	products[i].Stock = stock
	return products[i], nil
}

func setTo(stock int) func(int) int {
	return func(int) int { return stock }
}

func addDelta(delta int) func(int) int {
	return func(current int) int { return current + delta }
}
