package handlers

import (
	"net/http"
)

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Description Header must name id, name, price and stock columns; rows failing validation are reported and skipped
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} inventory.ImportResult
// @Failure 400 {object} ErrorResponse "Invalid file"
// @Router /products/import [post]
func ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	result, err := inventorySvc.ImportProducts(file)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	logger.Debug().Int("imported", result.Imported).Int("rejected", len(result.Errors)).Msg("products imported")
	respond(w, http.StatusOK, result)
}
