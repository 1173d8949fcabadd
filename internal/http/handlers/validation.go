package handlers

import (
	"sort"
	"strings"

	"github.com/rogerio-castellano/supermarket-pro/internal/models"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	product := models.Product{
		ID:    strings.TrimSpace(p.ID),
		Name:  strings.TrimSpace(p.Name),
		Price: p.Price,
		Stock: p.Stock,
	}

	errs := []ProductValidationError{}
	for field, tag := range models.FieldErrors(models.ValidateProduct(product)) {
		errs = append(errs, ProductValidationError{Field: field, Description: models.Describe(field, tag)})
	}
	sort.Slice(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
	return errs
}
