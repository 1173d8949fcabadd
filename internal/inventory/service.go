// Package inventory holds the stock and sales use-cases. Every use-case is a
// fresh load, validate, mutate, save cycle against the repositories; the
// service keeps no copy of the data between calls.
package inventory

import (
	"errors"
	"sync"
	"time"

	"github.com/rogerio-castellano/supermarket-pro/internal/models"
	"github.com/rogerio-castellano/supermarket-pro/internal/repo"
	"github.com/rs/zerolog"
)

var (
	// ErrInsufficientStock is returned when a sale asks for more units than are in stock.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInvalidQuantity is returned when a sale quantity is below one.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

type Service struct {
	products repo.ProductRepository
	sales    repo.SaleRepository
	log      zerolog.Logger
	now      func() time.Time
	strict   bool

	// mu serializes mutating use-cases within this process.
	mu sync.Mutex
}

type Option func(*Service)

func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) {
		s.log = l
	}
}

// WithClock overrides the time source used to stamp sales.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithStrictLoad makes read-only use-cases return ErrMalformedStorage instead
// of reporting an unreadable store as empty.
func WithStrictLoad(strict bool) Option {
	return func(s *Service) {
		s.strict = strict
	}
}

func NewService(products repo.ProductRepository, sales repo.SaleRepository, opts ...Option) *Service {
	s := &Service{
		products: products,
		sales:    sales,
		log:      zerolog.Nop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// tolerate applies the load policy to a read error: malformed storage is
// logged and ignored unless the service is strict.
func (s *Service) tolerate(err error, store string) error {
	if err == nil {
		return nil
	}
	if s.strict || !errors.Is(err, repo.ErrMalformedStorage) {
		return err
	}
	s.log.Warn().Err(err).Str("store", store).Msg("store unreadable, reporting it as empty")
	return nil
}

func (s *Service) loadProducts() ([]models.Product, error) {
	products, err := s.products.Load()
	if err := s.tolerate(err, "products"); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Service) loadSales() ([]models.Sale, error) {
	sales, err := s.sales.Load()
	if err := s.tolerate(err, "sales"); err != nil {
		return nil, err
	}
	return sales, nil
}
