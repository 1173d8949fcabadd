package repo

import (
	"github.com/rogerio-castellano/supermarket-pro/internal/models"
)

// SaleRepository is the append-only sales ledger.
type SaleRepository interface {
	Load() ([]models.Sale, error)
	Append(sale models.Sale) error
	Filter(sf SaleFilter) ([]models.Sale, int, error)
}
