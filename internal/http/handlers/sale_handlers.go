package handlers

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rogerio-castellano/supermarket-pro/internal/repo"
)

// RecordSaleHandler godoc
// @Summary Record a sale
// @Description Decrements stock and appends the sale to the ledger
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body SaleRequest true "Sale to record"
// @Success 201 {object} models.Sale
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Failure 409 {object} ErrorResponse "Insufficient stock"
// @Router /sales [post]
func RecordSaleHandler(w http.ResponseWriter, r *http.Request) {
	var req SaleRequest
	if err := readJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid input")
		return
	}
	if strings.TrimSpace(req.ProductID) == "" {
		respondError(w, http.StatusBadRequest, "product_id is required")
		return
	}

	sale, err := inventorySvc.RecordSale(req.ProductID, req.Quantity)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	logger.Debug().
		Str("product_id", sale.ProductID).
		Int("quantity", sale.Quantity).
		Str("total", sale.Total.String()).
		Msg("sale recorded")
	respond(w, http.StatusCreated, sale)
}

func saleFilterFromQuery(r *http.Request) (repo.SaleFilter, error) {
	filter := repo.SaleFilter{ProductID: strings.TrimSpace(r.URL.Query().Get("product_id"))}

	var err error
	if filter.Since, err = queryTime(r, "since"); err != nil {
		return filter, err
	}
	if filter.Until, err = queryTime(r, "until"); err != nil {
		return filter, err
	}
	filter.Offset, filter.Limit, err = pagination(r)
	return filter, err
}

// GetSalesHandler godoc
// @Summary List recorded sales
// @Tags sales
// @Produce json
// @Param product_id query string false "Only sales of this product"
// @Param since query string false "Start date (RFC 3339)"
// @Param until query string false "End date (RFC 3339)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} SalesSearchResult
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Router /sales [get]
func GetSalesHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := saleFilterFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sales, total, err := inventorySvc.ListSales(filter)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusOK, SalesSearchResult{Data: sales, Meta: Meta{TotalCount: total}})
}

// ExportSalesHandler godoc
// @Summary Export the sales ledger
// @Tags sales
// @Produce text/csv, application/json
// @Param format query string true "Export format (csv or json)"
// @Param product_id query string false "Only sales of this product"
// @Param since query string false "Start date (RFC 3339)"
// @Param until query string false "End date (RFC 3339)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Router /sales/export [get]
func ExportSalesHandler(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "csv" && format != "json" {
		respondError(w, http.StatusBadRequest, "format must be 'csv' or 'json'")
		return
	}

	filter, err := saleFilterFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sales, _, err := inventorySvc.ListSales(filter)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	switch format {
	case "json":
		w.Header().Set("Content-Disposition", `attachment; filename="sales.json"`)
		respond(w, http.StatusOK, sales)
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="sales.csv"`)

		csvWriter := csv.NewWriter(w)
		_ = csvWriter.Write([]string{"product_id", "product_name", "quantity", "total", "timestamp"})
		for _, s := range sales {
			_ = csvWriter.Write([]string{
				s.ProductID,
				s.ProductName,
				strconv.Itoa(s.Quantity),
				s.Total.String(),
				s.Timestamp.Format(time.RFC3339Nano),
			})
		}
		csvWriter.Flush()
		if err := csvWriter.Error(); err != nil {
			logger.Error().Err(err).Msg("failed to write csv export")
		}
	}
}
