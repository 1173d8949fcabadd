package http_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	api "github.com/rogerio-castellano/supermarket-pro/internal/http"
	handler "github.com/rogerio-castellano/supermarket-pro/internal/http/handlers"
	"github.com/rogerio-castellano/supermarket-pro/internal/inventory"
	"github.com/rogerio-castellano/supermarket-pro/internal/models"
	"github.com/rogerio-castellano/supermarket-pro/internal/repo"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type testEnv struct {
	router   http.Handler
	products *repo.InMemoryProductRepository
	sales    *repo.InMemorySaleRepository
}

func setup(t *testing.T) testEnv {
	t.Helper()
	products := repo.NewInMemoryProductRepository()
	sales := repo.NewInMemorySaleRepository()

	handler.SetInventoryService(inventory.NewService(products, sales,
		inventory.WithClock(func() time.Time { return fixedNow })))
	handler.SetLogger(zerolog.Nop())
	handler.SetLowStockThreshold(5)

	return testEnv{
		router:   api.NewRouter(api.RouterOptions{Logger: zerolog.Nop()}),
		products: products,
		sales:    sales,
	}
}

func (e testEnv) do(method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e testEnv) seed(t *testing.T, id, name, price string, stock int) {
	t.Helper()
	require.NoError(t, e.products.Add(models.Product{
		ID: id, Name: name, Price: decimal.RequireFromString(price), Stock: stock,
	}))
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v), w.Body.String())
	return v
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}
