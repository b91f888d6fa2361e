package pricing

import "github.com/i474232898/crop-advisor/internal/common"

// DefaultBasePrice is used when the crop or city is missing from the table.
const DefaultBasePrice = 30.00

var supportedCrops = []string{"Wheat", "Rice", "Sugarcane", "Cotton", "Maize"}

// rupees per kg, keyed by normalized crop then normalized city
var basePrices = map[string]map[string]float64{
	"wheat": {
		"delhi": 25.50, "mumbai": 27.00, "bangalore": 26.25, "chennai": 24.75,
		"kolkata": 25.00, "hyderabad": 26.50, "pune": 26.00, "jaipur": 24.50,
	},
	"rice": {
		"delhi": 45.00, "mumbai": 48.50, "bangalore": 46.75, "chennai": 44.25,
		"kolkata": 43.00, "hyderabad": 45.50, "pune": 47.00, "jaipur": 42.75,
	},
	"sugarcane": {
		"delhi": 3.50, "mumbai": 3.75, "bangalore": 3.60, "chennai": 3.40,
		"kolkata": 3.45, "hyderabad": 3.65, "pune": 3.70, "jaipur": 3.35,
	},
	"cotton": {
		"delhi": 58.00, "mumbai": 62.50, "bangalore": 59.75, "chennai": 57.25,
		"kolkata": 56.00, "hyderabad": 60.50, "pune": 61.00, "jaipur": 55.75,
	},
	"maize": {
		"delhi": 22.50, "mumbai": 24.00, "bangalore": 23.25, "chennai": 21.75,
		"kolkata": 22.00, "hyderabad": 23.50, "pune": 23.75, "jaipur": 21.50,
	},
}

// Crops lists the crop types offered by the estimate form.
func Crops() []string {
	return append([]string(nil), supportedCrops...)
}

// BasePrice looks up the table price for crop at location. The second result
// is false when either key is missing, in which case DefaultBasePrice applies.
func BasePrice(crop, location string) (float64, bool) {
	byCity, ok := basePrices[common.NormalizeKey(crop)]
	if !ok {
		return DefaultBasePrice, false
	}
	p, ok := byCity[common.NormalizeKey(location)]
	if !ok {
		return DefaultBasePrice, false
	}
	return p, true
}
