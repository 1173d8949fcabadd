package models

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func init() {
	// Prices and totals are JSON numbers in the data files.
	decimal.MarshalJSONWithoutQuotes = true
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	_ = v.RegisterValidation("decimal_gte0", decimalNonNegative)
	return v
}

// decimalValue hands decimal fields to the validator in their exact string
// form so no precision is lost on the way to the decimal_* rules.
func decimalValue(field reflect.Value) any {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}
	return d.String()
}

func decimalNonNegative(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return !d.IsNegative()
}

// ValidateProduct checks the product invariants that hold at the store
// boundary: non-empty id and name, non-negative price and stock.
func ValidateProduct(p Product) error {
	return validate.Struct(p)
}

// ValidateSale checks a ledger entry before it is appended.
func ValidateSale(s Sale) error {
	return validate.Struct(s)
}

// FieldErrors flattens a validation error into field -> tag pairs. Any other
// error yields nil.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		tag := fe.Tag()
		if fe.Param() != "" {
			tag += "=" + fe.Param()
		}
		out[fe.Field()] = tag
	}
	return out
}

// Describe renders a validation tag as a short human message.
func Describe(field, tag string) string {
	switch tag {
	case "required":
		return field + " is required"
	case "gte=0", "decimal_gte0":
		return field + " cannot be negative"
	case "gte=1":
		return field + " must be at least 1"
	default:
		return field + " is invalid (" + tag + ")"
	}
}
