package suggestion

import (
	"fmt"

	"github.com/i474232898/crop-advisor/internal/common"
)

// CityIndex is the part of the location catalog the suggestion catalog needs.
type CityIndex interface {
	AllCities() []string
	RegionOf(city string) (string, bool)
}

// Catalog serves crop suggestions and climate profiles. Both tables are built
// once in NewCatalog and never change afterwards.
type Catalog struct {
	cities      CityIndex
	suggestions map[string][]CropSuggestion
	climate     map[string]ClimateRecord
	locations   []string
}

// NewCatalog builds the climate table for every city in cities and indexes the
// built-in suggestion table.
func NewCatalog(cities CityIndex) (*Catalog, error) {
	return newCatalog(cities, builtinLocations, builtinSuggestions)
}

func newCatalog(cities CityIndex, locations []string, table map[string][]CropSuggestion) (*Catalog, error) {
	c := &Catalog{
		cities:      cities,
		suggestions: make(map[string][]CropSuggestion, len(table)),
		climate:     generateClimate(cities.AllCities()),
		locations:   append([]string(nil), locations...),
	}

	for loc, list := range table {
		for _, s := range list {
			if !s.Suitability.Valid() || !s.WaterRequirement.Valid() || !s.MarketDemand.Valid() {
				return nil, fmt.Errorf("suggestion %q for %q has an unknown rating", s.CropName, loc)
			}
		}
		c.suggestions[common.NormalizeKey(loc)] = append([]CropSuggestion(nil), list...)
	}

	return c, nil
}

// Locations lists the locations offered on the suggestions view.
func (c *Catalog) Locations() []string {
	return append([]string(nil), c.locations...)
}

// SuggestionsFor returns the suggestions for location. Unknown locations yield
// an empty, non-nil slice.
func (c *Catalog) SuggestionsFor(location string) []CropSuggestion {
	list := c.suggestions[common.NormalizeKey(location)]
	return append([]CropSuggestion{}, list...)
}

// ClimateFor returns the derived climate profile for location.
func (c *Catalog) ClimateFor(location string) (ClimateRecord, bool) {
	rec, ok := c.climate[common.NormalizeKey(location)]
	return rec, ok
}

// View assembles suggestions, climate and region for one location.
func (c *Catalog) View(location string) LocationView {
	v := LocationView{
		Location:    location,
		Suggestions: c.SuggestionsFor(location),
	}
	if rec, ok := c.ClimateFor(location); ok {
		v.Climate = &rec
	}
	if region, ok := c.cities.RegionOf(location); ok {
		v.Region = region
	}
	return v
}
