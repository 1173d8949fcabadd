package repo

import (
	"strings"
	"testing"

	"github.com/rogerio-castellano/supermarket-pro/internal/models"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productsPath = "data/products.json"

func newTestProductRepo(t *testing.T, opts ...Option) (*JSONProductRepository, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, EnsureFile(fs, productsPath))
	return NewJSONProductRepository(fs, productsPath, opts...), fs
}

func product(id, name, price string, stock int) models.Product {
	return models.Product{ID: id, Name: name, Price: decimal.RequireFromString(price), Stock: stock}
}

func TestEnsureFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, EnsureFile(fs, productsPath))
	data, err := afero.ReadFile(fs, productsPath)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	require.NoError(t, afero.WriteFile(fs, productsPath, []byte(`[{"id":"A1"}]`), 0o644))
	require.NoError(t, EnsureFile(fs, productsPath))
	data, err = afero.ReadFile(fs, productsPath)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"A1"}]`, string(data), "existing file must not be overwritten")
}

func TestJSONProductRepository_LoadMissingFile(t *testing.T) {
	r := NewJSONProductRepository(afero.NewMemMapFs(), "nowhere/products.json")

	products, err := r.Load()
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.NotNil(t, products)
}

func TestJSONProductRepository_LoadMalformed(t *testing.T) {
	for name, content := range map[string]string{
		"garbage":    "{not json",
		"object":     `{"id":"A1"}`,
		"empty file": "",
	} {
		t.Run(name, func(t *testing.T) {
			r, fs := newTestProductRepo(t)
			require.NoError(t, afero.WriteFile(fs, productsPath, []byte(content), 0o644))

			products, err := r.Load()
			assert.ErrorIs(t, err, ErrMalformedStorage)
			assert.Empty(t, products)
		})
	}
}

func TestJSONProductRepository_AddThenLoad(t *testing.T) {
	r, _ := newTestProductRepo(t)

	require.NoError(t, r.Add(product("A1", "Milk", "2.5", 10)))

	products, err := r.Load()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "A1", products[0].ID)
	assert.Equal(t, "Milk", products[0].Name)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("2.5")))
	assert.Equal(t, 10, products[0].Stock)
}

func TestJSONProductRepository_AddDuplicateLeavesStoreUnchanged(t *testing.T) {
	r, fs := newTestProductRepo(t)
	require.NoError(t, r.Add(product("A1", "Milk", "2.5", 10)))
	before, err := afero.ReadFile(fs, productsPath)
	require.NoError(t, err)

	err = r.Add(product("A1", "Other milk", "3", 1))
	assert.ErrorIs(t, err, ErrDuplicateID)

	after, err := afero.ReadFile(fs, productsPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// ids are case-sensitive
	require.NoError(t, r.Add(product("a1", "Lower milk", "1", 1)))
}

func TestJSONProductRepository_AddRejectsInvalid(t *testing.T) {
	r, _ := newTestProductRepo(t)

	err := r.Add(product("A1", "Milk", "-1", 1))
	assert.ErrorIs(t, err, ErrInvalidProduct)

	err = r.Add(product("A1", "", "1", 1))
	assert.ErrorIs(t, err, ErrInvalidProduct)

	products, _ := r.Load()
	assert.Empty(t, products)
}

func TestJSONProductRepository_AdjustStock(t *testing.T) {
	tests := []struct {
		name    string
		delta   int
		want    int
		wantErr error
	}{
		{name: "increase", delta: 5, want: 15},
		{name: "decrease", delta: -4, want: 6},
		{name: "to zero", delta: -10, want: 0},
		{name: "below zero", delta: -11, want: 10, wantErr: ErrNegativeStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestProductRepo(t)
			require.NoError(t, r.Add(product("A1", "Milk", "2", 10)))

			_, err := r.AdjustStock("A1", tt.delta)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			got, err := r.GetByID("A1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Stock)
		})
	}
}

func TestJSONProductRepository_AdjustStockNotFound(t *testing.T) {
	r, _ := newTestProductRepo(t)

	_, err := r.AdjustStock("missing", 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestJSONProductRepository_SetStock(t *testing.T) {
	r, _ := newTestProductRepo(t)
	require.NoError(t, r.Add(product("A1", "Milk", "2", 10)))

	updated, err := r.SetStock("A1", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Stock)

	_, err = r.SetStock("A1", -1)
	assert.ErrorIs(t, err, ErrNegativeStock)

	_, err = r.SetStock("B2", 1)
	assert.ErrorIs(t, err, ErrProductNotFound)

	got, _ := r.GetByID("A1")
	assert.Equal(t, 3, got.Stock)
}

func TestJSONProductRepository_SaveLoadIdempotent(t *testing.T) {
	r, fs := newTestProductRepo(t)
	require.NoError(t, r.Add(product("A1", "Milk", "2.5", 10)))
	require.NoError(t, r.Add(product("B2", "Bread", "1.25", 0)))

	first, err := afero.ReadFile(fs, productsPath)
	require.NoError(t, err)

	loaded, err := r.Load()
	require.NoError(t, err)
	require.NoError(t, r.Save(loaded))

	second, err := afero.ReadFile(fs, productsPath)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))

	reloaded, err := r.Load()
	require.NoError(t, err)
	assert.Equal(t, loaded, reloaded)
}

func TestJSONProductRepository_SavePrettyPrintsAndCleansUp(t *testing.T) {
	r, fs := newTestProductRepo(t)
	require.NoError(t, r.Save([]models.Product{product("A1", "Milk", "2.5", 10)}))

	data, err := afero.ReadFile(fs, productsPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "[\n    {\n        \"id\": \"A1\""), string(data))

	entries, err := afero.ReadDir(fs, "data")
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
	assert.Equal(t, "products.json", entries[0].Name())
}

func TestJSONProductRepository_SaveNil(t *testing.T) {
	r, fs := newTestProductRepo(t)
	require.NoError(t, r.Save(nil))

	data, err := afero.ReadFile(fs, productsPath)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestJSONProductRepository_LenientAddOverMalformedFile(t *testing.T) {
	r, fs := newTestProductRepo(t)
	require.NoError(t, afero.WriteFile(fs, productsPath, []byte("{broken"), 0o644))

	require.NoError(t, r.Add(product("A1", "Milk", "1", 1)))

	products, err := r.Load()
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestJSONProductRepository_StrictAddOverMalformedFile(t *testing.T) {
	r, fs := newTestProductRepo(t, WithStrictLoad(true))
	require.NoError(t, afero.WriteFile(fs, productsPath, []byte("{broken"), 0o644))

	err := r.Add(product("A1", "Milk", "1", 1))
	assert.ErrorIs(t, err, ErrMalformedStorage)

	_, err = r.AdjustStock("A1", 1)
	assert.ErrorIs(t, err, ErrMalformedStorage)

	data, _ := afero.ReadFile(fs, productsPath)
	assert.Equal(t, "{broken", string(data))
}

func TestJSONProductRepository_LoadsFilesWrittenByHand(t *testing.T) {
	r, fs := newTestProductRepo(t)
	raw := `[
    {
        "id": "A1",
        "name": "Milk",
        "price": 2.0,
        "stock": 10
    }
]`
	require.NoError(t, afero.WriteFile(fs, productsPath, []byte(raw), 0o644))

	products, err := r.Load()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.True(t, products[0].Price.Equal(decimal.NewFromInt(2)))

	require.NoError(t, r.Save(products))
	again, err := r.Load()
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.True(t, again[0].Price.Equal(products[0].Price))
	assert.Equal(t, products[0].Stock, again[0].Stock)
}

func TestJSONProductRepository_Filter(t *testing.T) {
	r, _ := newTestProductRepo(t)
	require.NoError(t, r.Add(product("MLK-1", "Whole Milk", "2.5", 10)))
	require.NoError(t, r.Add(product("MLK-2", "Skim Milk", "2.0", 2)))
	require.NoError(t, r.Add(product("BRD-1", "Bread", "1.25", 30)))

	minPrice := decimal.RequireFromString("2.1")
	maxStock := 5
	offset, limit := 1, 1

	tests := []struct {
		name      string
		filter    ProductFilter
		wantIDs   []string
		wantTotal int
	}{
		{name: "no filter", filter: ProductFilter{}, wantIDs: []string{"MLK-1", "MLK-2", "BRD-1"}, wantTotal: 3},
		{name: "name query is case-insensitive", filter: ProductFilter{Query: "milk"}, wantIDs: []string{"MLK-1", "MLK-2"}, wantTotal: 2},
		{name: "query matches id", filter: ProductFilter{Query: "brd"}, wantIDs: []string{"BRD-1"}, wantTotal: 1},
		{name: "min price", filter: ProductFilter{MinPrice: &minPrice}, wantIDs: []string{"MLK-1"}, wantTotal: 1},
		{name: "max stock", filter: ProductFilter{MaxStock: &maxStock}, wantIDs: []string{"MLK-2"}, wantTotal: 1},
		{name: "paged", filter: ProductFilter{Offset: &offset, Limit: &limit}, wantIDs: []string{"MLK-2"}, wantTotal: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, total, err := r.Filter(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)

			ids := make([]string, len(page))
			for i, p := range page {
				ids[i] = p.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
