package handlers

import (
	"github.com/rogerio-castellano/supermarket-pro/internal/inventory"
	"github.com/rs/zerolog"
)

var (
	inventorySvc      *inventory.Service
	logger            = zerolog.Nop()
	lowStockThreshold = 5
)

func SetInventoryService(s *inventory.Service) {
	inventorySvc = s
}

func SetLogger(l zerolog.Logger) {
	logger = l
}

// SetLowStockThreshold sets the stock level at or below which a product is
// flagged as low.
func SetLowStockThreshold(n int) {
	lowStockThreshold = n
}
