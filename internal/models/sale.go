package models

import "github.com/shopspring/decimal"

// Sale is one entry of the sales ledger. ProductName is a snapshot taken
// when the sale was recorded.
type Sale struct {
	ProductID   string          `json:"product_id" validate:"required"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity" validate:"gte=1"`
	Total       decimal.Decimal `json:"total" validate:"decimal_gte0"`
	Timestamp   Timestamp       `json:"timestamp"`
}
