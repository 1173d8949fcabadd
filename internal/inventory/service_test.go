package inventory

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rogerio-castellano/supermarket-pro/internal/models"
	"github.com/rogerio-castellano/supermarket-pro/internal/repo"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *repo.InMemoryProductRepository, *repo.InMemorySaleRepository) {
	t.Helper()
	products := repo.NewInMemoryProductRepository()
	sales := repo.NewInMemorySaleRepository()
	svc := NewService(products, sales, WithClock(func() time.Time { return fixedNow }))
	return svc, products, sales
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// failingLedger accepts nothing.
type failingLedger struct {
	repo.SaleRepository
}

func (failingLedger) Append(models.Sale) error {
	return errors.New("disk full")
}

// brokenRestore fails any stock increase, simulating a crash-like second failure.
type brokenRestore struct {
	*repo.InMemoryProductRepository
}

func (b brokenRestore) AdjustStock(id string, delta int) (models.Product, error) {
	if delta > 0 {
		return models.Product{}, errors.New("read-only filesystem")
	}
	return b.InMemoryProductRepository.AdjustStock(id, delta)
}

func TestAddProduct(t *testing.T) {
	svc, products, _ := newTestService(t)

	p, err := svc.AddProduct("  A1 ", " Milk ", price("2.5"), 10)
	require.NoError(t, err)
	assert.Equal(t, "A1", p.ID)
	assert.Equal(t, "Milk", p.Name)

	_, err = svc.AddProduct("A1", "Milk again", price("1"), 1)
	assert.ErrorIs(t, err, repo.ErrDuplicateID)

	stored, _ := products.Load()
	require.Len(t, stored, 1)
	assert.Equal(t, "Milk", stored[0].Name)
}

func TestAddProduct_Invalid(t *testing.T) {
	svc, products, _ := newTestService(t)

	tests := []struct {
		name  string
		id    string
		pname string
		price string
		stock int
	}{
		{name: "blank id", id: "  ", pname: "Milk", price: "1", stock: 1},
		{name: "blank name", id: "A1", pname: "", price: "1", stock: 1},
		{name: "negative price", id: "A1", pname: "Milk", price: "-0.5", stock: 1},
		{name: "negative stock", id: "A1", pname: "Milk", price: "1", stock: -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddProduct(tt.id, tt.pname, price(tt.price), tt.stock)
			assert.ErrorIs(t, err, repo.ErrInvalidProduct)
		})
	}

	stored, _ := products.Load()
	assert.Empty(t, stored)
}

func TestAdjustStock_SucceedsIffNonNegative(t *testing.T) {
	for _, delta := range []int{-8, -7, -1, 0, 3} {
		svc, _, _ := newTestService(t)
		_, err := svc.AddProduct("A1", "Milk", price("1"), 7)
		require.NoError(t, err)

		p, err := svc.AdjustStock("A1", delta)
		if 7+delta < 0 {
			assert.ErrorIs(t, err, repo.ErrNegativeStock, "delta %d", delta)
			got, _ := svc.ProductByID("A1")
			assert.Equal(t, 7, got.Stock)
			continue
		}
		require.NoError(t, err, "delta %d", delta)
		assert.Equal(t, 7+delta, p.Stock)
	}
}

func TestSetStock(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.AddProduct("A1", "Milk", price("1"), 7)
	require.NoError(t, err)

	p, err := svc.SetStock("A1", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock)

	_, err = svc.SetStock("A1", -1)
	assert.ErrorIs(t, err, repo.ErrNegativeStock)

	_, err = svc.SetStock("nope", 1)
	assert.ErrorIs(t, err, repo.ErrProductNotFound)
}

func TestRecordSale(t *testing.T) {
	svc, _, sales := newTestService(t)
	_, err := svc.AddProduct("A1", "Milk", price("2.5"), 10)
	require.NoError(t, err)

	sale, err := svc.RecordSale("A1", 4)
	require.NoError(t, err)

	assert.Equal(t, "A1", sale.ProductID)
	assert.Equal(t, "Milk", sale.ProductName)
	assert.Equal(t, 4, sale.Quantity)
	assert.True(t, sale.Total.Equal(price("10")), "total %s", sale.Total)
	assert.True(t, sale.Timestamp.Equal(fixedNow))

	p, _ := svc.ProductByID("A1")
	assert.Equal(t, 6, p.Stock)

	ledger, _ := sales.Load()
	require.Len(t, ledger, 1)
	assert.Equal(t, sale, ledger[0])
}

func TestRecordSale_WholeStock(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.AddProduct("A1", "Milk", price("1"), 3)
	require.NoError(t, err)

	_, err = svc.RecordSale("A1", 3)
	require.NoError(t, err)

	p, _ := svc.ProductByID("A1")
	assert.Equal(t, 0, p.Stock)
}

func TestRecordSale_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		quantity int
		wantErr  error
	}{
		{name: "zero quantity", id: "A1", quantity: 0, wantErr: ErrInvalidQuantity},
		{name: "negative quantity", id: "A1", quantity: -2, wantErr: ErrInvalidQuantity},
		{name: "more than stock", id: "A1", quantity: 6, wantErr: ErrInsufficientStock},
		{name: "unknown product", id: "B2", quantity: 1, wantErr: repo.ErrProductNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, sales := newTestService(t)
			_, err := svc.AddProduct("A1", "Milk", price("1"), 5)
			require.NoError(t, err)

			_, err = svc.RecordSale(tt.id, tt.quantity)
			assert.ErrorIs(t, err, tt.wantErr)

			p, _ := svc.ProductByID("A1")
			assert.Equal(t, 5, p.Stock)
			ledger, _ := sales.Load()
			assert.Empty(t, ledger)
		})
	}
}

func TestRecordSale_LedgerFailureRestoresStock(t *testing.T) {
	products := repo.NewInMemoryProductRepository()
	svc := NewService(products, failingLedger{repo.NewInMemorySaleRepository()})
	_, err := svc.AddProduct("A1", "Milk", price("1"), 5)
	require.NoError(t, err)

	_, err = svc.RecordSale("A1", 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	p, _ := products.GetByID("A1")
	assert.Equal(t, 5, p.Stock)
}

func TestRecordSale_LedgerAndRestoreFailure(t *testing.T) {
	products := repo.NewInMemoryProductRepository()
	svc := NewService(brokenRestore{products}, failingLedger{repo.NewInMemorySaleRepository()})
	_, err := svc.AddProduct("A1", "Milk", price("1"), 5)
	require.NoError(t, err)

	_, err = svc.RecordSale("A1", 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, err.Error(), "read-only filesystem")

	p, _ := products.GetByID("A1")
	assert.Equal(t, 3, p.Stock, "the documented divergence: stock decremented without a ledger entry")
}

func TestInventorySummary(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.AddProduct("A1", "Milk", price("2.0"), 10)
	require.NoError(t, err)
	_, err = svc.AddProduct("B2", "Bread", price("4.0"), 5)
	require.NoError(t, err)

	sum, err := svc.InventorySummary()
	require.NoError(t, err)
	assert.Equal(t, 2, sum.TotalProducts)
	assert.Equal(t, 15, sum.TotalStockUnits)
	assert.True(t, sum.TotalInventoryValue.Equal(price("40")), "value %s", sum.TotalInventoryValue)
}

func TestSalesSummary(t *testing.T) {
	svc, _, sales := newTestService(t)
	sales.AddSale(models.Sale{ProductID: "A1", Quantity: 1, Total: price("10.0")})
	sales.AddSale(models.Sale{ProductID: "A1", Quantity: 2, Total: price("20.0")})

	sum, err := svc.SalesSummary()
	require.NoError(t, err)
	assert.False(t, sum.Empty())
	assert.True(t, sum.TotalRevenue.Equal(price("30")))
	assert.Equal(t, 2, sum.TransactionCount)
	require.True(t, sum.AverageSaleValue.Valid)
	assert.True(t, sum.AverageSaleValue.Decimal.Equal(price("15")))
}

func TestSalesSummary_Empty(t *testing.T) {
	svc, _, _ := newTestService(t)

	sum, err := svc.SalesSummary()
	require.NoError(t, err)
	assert.True(t, sum.Empty())
	assert.False(t, sum.AverageSaleValue.Valid)
	assert.True(t, sum.TotalRevenue.IsZero())
}

func TestSummaries_MalformedStorage(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "data/products.json", []byte("oops"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "data/sales.json", []byte("oops"), 0o644))
	products := repo.NewJSONProductRepository(fs, "data/products.json")
	sales := repo.NewJSONSaleRepository(fs, "data/sales.json")

	lenient := NewService(products, sales)
	inv, err := lenient.InventorySummary()
	require.NoError(t, err)
	assert.Zero(t, inv.TotalProducts)
	ss, err := lenient.SalesSummary()
	require.NoError(t, err)
	assert.True(t, ss.Empty())

	strict := NewService(products, sales, WithStrictLoad(true))
	_, err = strict.InventorySummary()
	assert.ErrorIs(t, err, repo.ErrMalformedStorage)
	_, err = strict.SalesSummary()
	assert.ErrorIs(t, err, repo.ErrMalformedStorage)
	_, _, err = strict.ListProducts(repo.ProductFilter{})
	assert.ErrorIs(t, err, repo.ErrMalformedStorage)
}

func TestRecordSale_JSONStores(t *testing.T) {
	fs := afero.NewMemMapFs()
	products := repo.NewJSONProductRepository(fs, "data/products.json")
	sales := repo.NewJSONSaleRepository(fs, "data/sales.json")
	svc := NewService(products, sales, WithClock(func() time.Time { return fixedNow }))

	_, err := svc.AddProduct("A1", "Milk", price("1.10"), 3)
	require.NoError(t, err)
	_, err = svc.RecordSale("A1", 3)
	require.NoError(t, err)

	raw, err := afero.ReadFile(fs, "data/sales.json")
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), `"total": 3.3`), string(raw))
	assert.True(t, strings.Contains(string(raw), `"timestamp": "2025-06-01T12:30:00Z"`), string(raw))

	p, err := products.GetByID("A1")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock)
}

func TestAddProduct_NegativePriceBelowFloatRange(t *testing.T) {
	svc, products, _ := newTestService(t)

	_, err := svc.AddProduct("N1", "Neg", price("-1e-400"), 3)
	assert.ErrorIs(t, err, repo.ErrInvalidProduct)

	stored, _ := products.Load()
	assert.Empty(t, stored)

	summary, err := svc.InventorySummary()
	require.NoError(t, err)
	assert.True(t, summary.TotalInventoryValue.IsZero())
}
