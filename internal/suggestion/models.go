package suggestion

// Suitability rates how well a crop fits a location.
type Suitability string

const (
	SuitabilityExcellent Suitability = "excellent"
	SuitabilityGood      Suitability = "good"
	SuitabilityModerate  Suitability = "moderate"
)

// Valid reports whether s is one of the known ratings.
func (s Suitability) Valid() bool {
	switch s {
	case SuitabilityExcellent, SuitabilityGood, SuitabilityModerate:
		return true
	default:
		return false
	}
}

// Tone is the presentation hint a client uses to colour the rating.
// Unknown values map to "neutral".
func (s Suitability) Tone() string {
	switch s {
	case SuitabilityExcellent:
		return "positive"
	case SuitabilityGood:
		return "info"
	case SuitabilityModerate:
		return "warning"
	default:
		return "neutral"
	}
}

// WaterRequirement is the irrigation need of a crop.
type WaterRequirement string

const (
	WaterLow    WaterRequirement = "low"
	WaterMedium WaterRequirement = "medium"
	WaterHigh   WaterRequirement = "high"
)

func (w WaterRequirement) Valid() bool {
	switch w {
	case WaterLow, WaterMedium, WaterHigh:
		return true
	default:
		return false
	}
}

func (w WaterRequirement) Tone() string {
	switch w {
	case WaterHigh:
		return "info"
	case WaterMedium:
		return "warning"
	case WaterLow:
		return "positive"
	default:
		return "neutral"
	}
}

// MarketDemand is the expected demand for a crop's produce.
type MarketDemand string

const (
	DemandHigh   MarketDemand = "high"
	DemandMedium MarketDemand = "medium"
	DemandLow    MarketDemand = "low"
)

func (d MarketDemand) Valid() bool {
	switch d {
	case DemandHigh, DemandMedium, DemandLow:
		return true
	default:
		return false
	}
}

func (d MarketDemand) Tone() string {
	switch d {
	case DemandHigh:
		return "positive"
	case DemandMedium:
		return "warning"
	case DemandLow:
		return "negative"
	default:
		return "neutral"
	}
}

// CropSuggestion describes one crop recommended for a location.
type CropSuggestion struct {
	CropName         string           `json:"cropName"`
	Suitability      Suitability      `json:"suitability"`
	Season           string           `json:"season"`
	ExpectedYield    string           `json:"expectedYield"`
	WaterRequirement WaterRequirement `json:"waterRequirement"`
	SoilType         string           `json:"soilType"`
	GrowthPeriod     string           `json:"growthPeriod"`
	MarketDemand     MarketDemand     `json:"marketDemand"`
	Description      string           `json:"description"`
}

// Archetype is one of the fixed regional climate profiles.
type Archetype string

const (
	ArchetypeNorth Archetype = "north"
	ArchetypeWest  Archetype = "west"
	ArchetypeSouth Archetype = "south"
	ArchetypeEast  Archetype = "east"
)

// ClimateRecord is the climate profile derived for a city.
type ClimateRecord struct {
	Location    string    `json:"location"`
	Temperature string    `json:"temperature"`
	Humidity    string    `json:"humidity"`
	Rainfall    string    `json:"rainfall"`
	Season      string    `json:"season"`
	SoilType    string    `json:"soilType"`
	Archetype   Archetype `json:"archetype"`
}

// LocationView bundles everything the suggestions page shows for one location.
type LocationView struct {
	Location    string           `json:"location"`
	Region      string           `json:"region,omitempty"`
	Climate     *ClimateRecord   `json:"climate,omitempty"`
	Suggestions []CropSuggestion `json:"suggestions"`
}
