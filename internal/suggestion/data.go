package suggestion

var builtinLocations = []string{"Delhi", "Mumbai", "Bangalore", "Chennai", "Kolkata", "Hyderabad", "Pune", "Jaipur"}

// Locations outside this table have no suggestions.
var builtinSuggestions = map[string][]CropSuggestion{
	"delhi": {
		{
			CropName:         "Wheat",
			Suitability:      SuitabilityExcellent,
			Season:           "Rabi (Oct-Mar)",
			ExpectedYield:    "4.0-4.5 tons/hectare",
			WaterRequirement: WaterMedium,
			SoilType:         "Alluvial",
			GrowthPeriod:     "120-150 days",
			MarketDemand:     DemandHigh,
			Description:      "Ideal for Delhi's climate with good market demand and stable prices.",
		},
		{
			CropName:         "Mustard",
			Suitability:      SuitabilityExcellent,
			Season:           "Rabi (Oct-Feb)",
			ExpectedYield:    "1.5-2.0 tons/hectare",
			WaterRequirement: WaterLow,
			SoilType:         "Alluvial",
			GrowthPeriod:     "90-120 days",
			MarketDemand:     DemandHigh,
			Description:      "Perfect for winter season with excellent oil content and market value.",
		},
		{
			CropName:         "Maize",
			Suitability:      SuitabilityGood,
			Season:           "Kharif (Jun-Oct)",
			ExpectedYield:    "5.0-6.0 tons/hectare",
			WaterRequirement: WaterMedium,
			SoilType:         "Alluvial",
			GrowthPeriod:     "90-120 days",
			MarketDemand:     DemandMedium,
			Description:      "Suitable for monsoon season with good yield potential.",
		},
	},
	"mumbai": {
		{
			CropName:         "Rice",
			Suitability:      SuitabilityExcellent,
			Season:           "Kharif (Jun-Nov)",
			ExpectedYield:    "3.5-4.0 tons/hectare",
			WaterRequirement: WaterHigh,
			SoilType:         "Coastal alluvial",
			GrowthPeriod:     "120-150 days",
			MarketDemand:     DemandHigh,
			Description:      "Perfect for high rainfall and humidity conditions of Mumbai region.",
		},
		{
			CropName:         "Sugarcane",
			Suitability:      SuitabilityExcellent,
			Season:           "Year-round",
			ExpectedYield:    "80-100 tons/hectare",
			WaterRequirement: WaterHigh,
			SoilType:         "Coastal alluvial",
			GrowthPeriod:     "12-18 months",
			MarketDemand:     DemandHigh,
			Description:      "Thrives in tropical climate with abundant water availability.",
		},
		{
			CropName:         "Cotton",
			Suitability:      SuitabilityModerate,
			Season:           "Kharif (May-Oct)",
			ExpectedYield:    "1.5-2.0 tons/hectare",
			WaterRequirement: WaterMedium,
			SoilType:         "Coastal alluvial",
			GrowthPeriod:     "180-200 days",
			MarketDemand:     DemandMedium,
			Description:      "Moderate suitability due to high humidity but good market potential.",
		},
	},
	"bangalore": {
		{
			CropName:         "Coffee",
			Suitability:      SuitabilityExcellent,
			Season:           "Year-round",
			ExpectedYield:    "0.8-1.2 tons/hectare",
			WaterRequirement: WaterMedium,
			SoilType:         "Red laterite",
			GrowthPeriod:     "3-4 years (perennial)",
			MarketDemand:     DemandHigh,
			Description:      "Ideal climate and soil conditions for premium coffee cultivation.",
		},
		{
			CropName:         "Ragi",
			Suitability:      SuitabilityExcellent,
			Season:           "Kharif (Jun-Oct)",
			ExpectedYield:    "2.5-3.0 tons/hectare",
			WaterRequirement: WaterLow,
			SoilType:         "Red laterite",
			GrowthPeriod:     "90-120 days",
			MarketDemand:     DemandHigh,
			Description:      "Perfect for red soil and moderate rainfall conditions.",
		},
		{
			CropName:         "Maize",
			Suitability:      SuitabilityGood,
			Season:           "Kharif (Jun-Oct)",
			ExpectedYield:    "4.5-5.5 tons/hectare",
			WaterRequirement: WaterMedium,
			SoilType:         "Red laterite",
			GrowthPeriod:     "90-120 days",
			MarketDemand:     DemandMedium,
			Description:      "Good adaptation to Bangalore's climate with decent market demand.",
		},
	},
	"chennai": {
		{
			CropName:         "Rice",
			Suitability:      SuitabilityExcellent,
			Season:           "Kharif & Rabi",
			ExpectedYield:    "4.0-5.0 tons/hectare",
			WaterRequirement: WaterHigh,
			SoilType:         "Alluvial",
			GrowthPeriod:     "120-150 days",
			MarketDemand:     DemandHigh,
			Description:      "Traditional crop with excellent adaptation to Tamil Nadu climate.",
		},
		{
			CropName:         "Groundnut",
			Suitability:      SuitabilityExcellent,
			Season:           "Kharif (Jun-Oct)",
			ExpectedYield:    "2.0-2.5 tons/hectare",
			WaterRequirement: WaterMedium,
			SoilType:         "Alluvial",
			GrowthPeriod:     "100-120 days",
			MarketDemand:     DemandHigh,
			Description:      "Excellent for tropical climate with strong market demand for oil.",
		},
		{
			CropName:         "Cotton",
			Suitability:      SuitabilityGood,
			Season:           "Kharif (May-Oct)",
			ExpectedYield:    "1.8-2.2 tons/hectare",
			WaterRequirement: WaterMedium,
			SoilType:         "Alluvial",
			GrowthPeriod:     "180-200 days",
			MarketDemand:     DemandHigh,
			Description:      "Good potential with proper irrigation and pest management.",
		},
	},
	"kolkata": {
		{
			CropName:         "Rice",
			Suitability:      SuitabilityExcellent,
			Season:           "Kharif (Jun-Dec)",
			ExpectedYield:    "4.5-5.5 tons/hectare",
			WaterRequirement: WaterHigh,
			SoilType:         "Alluvial",
			GrowthPeriod:     "120-150 days",
			MarketDemand:     DemandHigh,
			Description:      "Perfect for Bengal's high rainfall and alluvial soil conditions.",
		},
		{
			CropName:         "Jute",
			Suitability:      SuitabilityExcellent,
			Season:           "Kharif (Apr-Jul)",
			ExpectedYield:    "2.5-3.0 tons/hectare",
			WaterRequirement: WaterHigh,
			SoilType:         "Alluvial",
			GrowthPeriod:     "120-150 days",
			MarketDemand:     DemandMedium,
			Description:      "Traditional fiber crop ideal for humid conditions and alluvial soil.",
		},
		{
			CropName:         "Potato",
			Suitability:      SuitabilityGood,
			Season:           "Rabi (Nov-Mar)",
			ExpectedYield:    "20-25 tons/hectare",
			WaterRequirement: WaterMedium,
			SoilType:         "Alluvial",
			GrowthPeriod:     "90-120 days",
			MarketDemand:     DemandHigh,
			Description:      "Good winter crop with excellent market demand and storage potential.",
		},
	},
	"hyderabad": {
		{
			CropName:         "Cotton",
			Suitability:      SuitabilityExcellent,
			Season:           "Kharif (May-Oct)",
			ExpectedYield:    "2.0-2.5 tons/hectare",
			WaterRequirement: WaterMedium,
			SoilType:         "Black cotton",
			GrowthPeriod:     "180-200 days",
			MarketDemand:     DemandHigh,
			Description:      "Ideal for black cotton soil with excellent fiber quality and market value.",
		},
		{
			CropName:         "Sorghum",
			Suitability:      SuitabilityExcellent,
			Season:           "Kharif (Jun-Oct)",
			ExpectedYield:    "3.0-3.5 tons/hectare",
			WaterRequirement: WaterLow,
			SoilType:         "Black cotton",
			GrowthPeriod:     "90-120 days",
			MarketDemand:     DemandMedium,
			Description:      "Drought-resistant crop perfect for semi-arid conditions.",
		},
		{
			CropName:         "Maize",
			Suitability:      SuitabilityGood,
			Season:           "Kharif (Jun-Oct)",
			ExpectedYield:    "4.0-5.0 tons/hectare",
			WaterRequirement: WaterMedium,
			SoilType:         "Black cotton",
			GrowthPeriod:     "90-120 days",
			MarketDemand:     DemandMedium,
			Description:      "Good adaptation with proper irrigation and nutrient management.",
		},
	},
	"pune": {
		{
			CropName:         "Sugarcane",
			Suitability:      SuitabilityExcellent,
			Season:           "Year-round",
			ExpectedYield:    "90-120 tons/hectare",
			WaterRequirement: WaterHigh,
			SoilType:         "Black",
			GrowthPeriod:     "12-18 months",
			MarketDemand:     DemandHigh,
			Description:      "Excellent for Maharashtra's black soil with strong sugar industry support.",
		},
		{
			CropName:         "Grapes",
			Suitability:      SuitabilityExcellent,
			Season:           "Year-round (perennial)",
			ExpectedYield:    "15-20 tons/hectare",
			WaterRequirement: WaterMedium,
			SoilType:         "Black",
			GrowthPeriod:     "2-3 years (perennial)",
			MarketDemand:     DemandHigh,
			Description:      "Premium fruit crop with excellent export potential and high returns.",
		},
		{
			CropName:         "Onion",
			Suitability:      SuitabilityGood,
			Season:           "Rabi (Nov-Apr)",
			ExpectedYield:    "30-40 tons/hectare",
			WaterRequirement: WaterMedium,
			SoilType:         "Black",
			GrowthPeriod:     "120-150 days",
			MarketDemand:     DemandHigh,
			Description:      "High-value crop with excellent market demand and storage potential.",
		},
	},
	"jaipur": {
		{
			CropName:         "Bajra",
			Suitability:      SuitabilityExcellent,
			Season:           "Kharif (Jun-Oct)",
			ExpectedYield:    "2.0-2.5 tons/hectare",
			WaterRequirement: WaterLow,
			SoilType:         "Sandy loam",
			GrowthPeriod:     "75-90 days",
			MarketDemand:     DemandMedium,
			Description:      "Perfect drought-resistant crop for arid conditions of Rajasthan.",
		},
		{
			CropName:         "Mustard",
			Suitability:      SuitabilityExcellent,
			Season:           "Rabi (Oct-Feb)",
			ExpectedYield:    "1.2-1.8 tons/hectare",
			WaterRequirement: WaterLow,
			SoilType:         "Sandy loam",
			GrowthPeriod:     "90-120 days",
			MarketDemand:     DemandHigh,
			Description:      "Ideal winter crop with excellent oil content and market value.",
		},
		{
			CropName:         "Wheat",
			Suitability:      SuitabilityGood,
			Season:           "Rabi (Nov-Apr)",
			ExpectedYield:    "2.5-3.5 tons/hectare",
			WaterRequirement: WaterMedium,
			SoilType:         "Sandy loam",
			GrowthPeriod:     "120-150 days",
			MarketDemand:     DemandHigh,
			Description:      "Good potential with proper irrigation in winter season.",
		},
	},
}
