package inventory

import (
	"errors"
	"fmt"

	"github.com/rogerio-castellano/supermarket-pro/internal/models"
	"github.com/rogerio-castellano/supermarket-pro/internal/repo"
	"github.com/shopspring/decimal"
)

// RecordSale takes quantity units of a product out of stock and appends the
// sale to the ledger. The stock write happens first; if the ledger append
// then fails the units are put back.
func (s *Service) RecordSale(productID string, quantity int) (models.Sale, error) {
	if quantity < 1 {
		return models.Sale{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.products.GetByID(productID)
	if err != nil {
		return models.Sale{}, err
	}
	if quantity > product.Stock {
		return models.Sale{}, fmt.Errorf("%w: requested %d of %q, available %d", ErrInsufficientStock, quantity, productID, product.Stock)
	}

	updated, err := s.products.AdjustStock(productID, -quantity)
	if err != nil {
		if errors.Is(err, repo.ErrNegativeStock) {
			return models.Sale{}, fmt.Errorf("%w: %w", ErrInsufficientStock, err)
		}
		return models.Sale{}, err
	}

	sale := models.Sale{
		ProductID:   updated.ID,
		ProductName: updated.Name,
		Quantity:    quantity,
		Total:       updated.Price.Mul(decimal.NewFromInt(int64(quantity))),
		Timestamp:   models.NewTimestamp(s.now()),
	}

	if err := s.sales.Append(sale); err != nil {
		appendErr := fmt.Errorf("failed to record sale: %w", err)
		if _, rbErr := s.products.AdjustStock(productID, quantity); rbErr != nil {
			s.log.Error().Err(err).AnErr("restore_error", rbErr).Str("product_id", productID).Int("quantity", quantity).
				Msg("sale not recorded and stock not restored, stock and ledger now disagree")
			return models.Sale{}, errors.Join(appendErr, fmt.Errorf("failed to restore stock: %w", rbErr))
		}
		s.log.Warn().Err(err).Str("product_id", productID).Int("quantity", quantity).Msg("sale not recorded, stock restored")
		return models.Sale{}, appendErr
	}

	s.log.Info().Str("product_id", sale.ProductID).Int("quantity", quantity).Str("total", sale.Total.String()).Int("stock", updated.Stock).Msg("sale recorded")
	return sale, nil
}

// ListSales returns one page of ledger entries matching sf, oldest first.
func (s *Service) ListSales(sf repo.SaleFilter) ([]models.Sale, int, error) {
	sales, total, err := s.sales.Filter(sf)
	if err := s.tolerate(err, "sales"); err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}
