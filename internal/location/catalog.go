package location

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidCatalog is returned when region data breaks the catalog invariants.
var ErrInvalidCatalog = errors.New("invalid location catalog")

// Region is an administrative area (a state) and its cities, in display order.
type Region struct {
	Name   string   `json:"name"`
	Cities []string `json:"cities"`
}

// Catalog resolves regions and cities. It is read-only after construction.
type Catalog struct {
	regions []Region
	byName  map[string]int // region name -> index into regions
	all     []string
}

// NewCatalog copies regions into a Catalog. Every region needs a non-empty
// city list and region names must be unique.
func NewCatalog(regions []Region) (*Catalog, error) {
	c := &Catalog{
		regions: make([]Region, 0, len(regions)),
		byName:  make(map[string]int, len(regions)),
	}

	for _, r := range regions {
		if r.Name == "" {
			return nil, fmt.Errorf("%w: region with empty name", ErrInvalidCatalog)
		}
		if len(r.Cities) == 0 {
			return nil, fmt.Errorf("%w: region %q has no cities", ErrInvalidCatalog, r.Name)
		}
		if _, dup := c.byName[r.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate region %q", ErrInvalidCatalog, r.Name)
		}

		cities := append([]string(nil), r.Cities...)
		c.byName[r.Name] = len(c.regions)
		c.regions = append(c.regions, Region{Name: r.Name, Cities: cities})
		c.all = append(c.all, cities...)
	}

	return c, nil
}

var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
)

// Default returns the built-in catalog of Indian states and cities.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := NewCatalog(builtinRegions)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Regions returns region names in catalog order.
func (c *Catalog) Regions() []string {
	names := make([]string, 0, len(c.regions))
	for _, r := range c.regions {
		names = append(names, r.Name)
	}
	return names
}

// CitiesOf returns the cities of region in order, or nil if the region is unknown.
func (c *Catalog) CitiesOf(region string) []string {
	i, ok := c.byName[region]
	if !ok {
		return nil
	}
	return append([]string(nil), c.regions[i].Cities...)
}

// RegionOf returns the region a city belongs to. The second result is false
// when no region lists the city.
func (c *Catalog) RegionOf(city string) (string, bool) {
	for _, r := range c.regions {
		for _, name := range r.Cities {
			if name == city {
				return r.Name, true
			}
		}
	}
	return "", false
}

// AllCities flattens every region's cities, keeping region order and then
// in-region order.
func (c *Catalog) AllCities() []string {
	return append([]string(nil), c.all...)
}
