package models

import "github.com/shopspring/decimal"

// Product represents a product entity in the inventory system.
type Product struct {
	ID    string          `json:"id" validate:"required"`
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price" validate:"decimal_gte0"`
	Stock int             `json:"stock" validate:"gte=0"`
}

// Value returns the stock valued at the product's unit price.
func (p Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}
