// internal/checkout/validate.go
package checkout

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/trendyshop/storefront/internal/api"
)

var validate = validator.New()

// FieldError names one shipping field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateShipping checks the address block and folds any failures into a
// single ValidationFailure error listing the offending fields.
func ValidateShipping(d ShippingDetails) error {
	// Whitespace-only fields count as empty.
	d.City = strings.TrimSpace(d.City)
	d.SubRegion = strings.TrimSpace(d.SubRegion)
	d.FullAddress = strings.TrimSpace(d.FullAddress)

	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	fields := fieldErrors(err)
	if len(fields) == 0 {
		return api.WrapError(api.KindValidationFailure, err)
	}

	names := make([]string, 0, len(fields))
	for _, fe := range fields {
		names = append(names, fe.Field)
	}
	return api.NewError(api.KindValidationFailure,
		"please complete your shipping address details: "+strings.Join(names, ", "))
}

func fieldErrors(err error) []FieldError {
	var out []FieldError
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range verrs {
			out = append(out, FieldError{
				Field:   strings.ToLower(e.Field()),
				Message: e.Field() + " is " + e.Tag(),
			})
		}
	}
	return out
}
