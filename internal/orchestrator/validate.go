package orchestrator

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateForm trims the form and checks location, crop type and quantity in
// that order. It returns the parsed quantity in tons.
func validateForm(f *Form) (float64, error) {
	f.Location = strings.TrimSpace(f.Location)
	f.CropType = strings.TrimSpace(f.CropType)
	f.Quantity = strings.TrimSpace(f.Quantity)

	if err := validate.Struct(f); err != nil {
		field := ""
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			field = verrs[0].Field()
		}
		return 0, &ValidationError{Field: field, Reason: reasonMissingFields}
	}

	qty, err := strconv.ParseFloat(f.Quantity, 64)
	if err != nil || math.IsNaN(qty) || math.IsInf(qty, 0) || qty <= 0 {
		return 0, &ValidationError{Field: "Quantity", Reason: reasonInvalidQuantity}
	}
	return qty, nil
}
