package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/supermarket-pro/internal/repo"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the catalogue
// @Tags products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} []ProductValidationError
// @Failure 409 {object} ErrorResponse "Duplicate id"
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid input")
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		respond(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := inventorySvc.AddProduct(req.ID, req.Name, req.Price, req.Stock)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	logger.Debug().Str("product_id", created.ID).Msg("product created")
	respond(w, http.StatusCreated, toProductResponse(created))
}

// GetProductsHandler godoc
// @Summary Filter and paginate products
// @Tags products
// @Produce json
// @Param q query string false "Case-insensitive match on name or id"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param minStock query int false "Minimum stock"
// @Param maxStock query int false "Maximum stock"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	filter := repo.ProductFilter{Query: strings.TrimSpace(r.URL.Query().Get("q"))}

	var err error
	if filter.MinPrice, err = queryDecimal(r, "minPrice"); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.MaxPrice, err = queryDecimal(r, "maxPrice"); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.MinStock, err = queryInt(r, "minStock"); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.MaxStock, err = queryInt(r, "maxStock"); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.Offset, filter.Limit, err = pagination(r); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	products, total, err := inventorySvc.ListProducts(filter)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := ProductsSearchResult{
		Data: make([]ProductResponse, len(products)),
		Meta: Meta{TotalCount: total},
	}
	for i, p := range products {
		resp.Data[i] = toProductResponse(p)
	}
	respond(w, http.StatusOK, resp)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	product, err := inventorySvc.ProductByID(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respond(w, http.StatusOK, toProductResponse(product))
}

// AdjustStockHandler godoc
// @Summary Adjust product stock
// @Description Adds a signed delta to the stock; the result may not go below zero
// @Tags stock
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param adjustment body StockAdjustmentRequest true "Stock delta"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 409 {object} ErrorResponse "Stock would become negative"
// @Router /products/{id}/adjust [post]
func AdjustStockHandler(w http.ResponseWriter, r *http.Request) {
	var req StockAdjustmentRequest
	if err := readJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid input")
		return
	}

	id := chi.URLParam(r, "id")
	updated, err := inventorySvc.AdjustStock(id, req.Delta)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	logger.Debug().Str("product_id", id).Int("delta", req.Delta).Int("stock", updated.Stock).Msg("stock adjusted")
	respond(w, http.StatusOK, toProductResponse(updated))
}

// SetStockHandler godoc
// @Summary Set product stock
// @Tags stock
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param stock body StockSetRequest true "New stock level"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /products/{id}/stock [put]
func SetStockHandler(w http.ResponseWriter, r *http.Request) {
	var req StockSetRequest
	if err := readJSON(w, r, &req); err != nil || req.Stock == nil {
		respondError(w, http.StatusBadRequest, "invalid input")
		return
	}
	if *req.Stock < 0 {
		respondError(w, http.StatusBadRequest, "stock must be zero or positive")
		return
	}

	id := chi.URLParam(r, "id")
	updated, err := inventorySvc.SetStock(id, *req.Stock)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	logger.Debug().Str("product_id", id).Int("stock", updated.Stock).Msg("stock set")
	respond(w, http.StatusOK, toProductResponse(updated))
}
