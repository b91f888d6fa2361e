package suggestion

import "github.com/i474232898/crop-advisor/internal/common"

type climateProfile struct {
	temperature string
	humidity    string
	rainfall    string
	season      string
	soilType    string
}

var archetypeProfiles = map[Archetype]climateProfile{
	ArchetypeNorth: {"20-35°C", "50-70%", "500-800mm", "Semi-arid", "Alluvial"},
	ArchetypeWest:  {"22-32°C", "60-75%", "600-1200mm", "Semi-arid to Tropical", "Black cotton"},
	ArchetypeSouth: {"24-34°C", "65-80%", "800-1500mm", "Tropical", "Red laterite"},
	ArchetypeEast:  {"22-32°C", "70-85%", "1200-2000mm", "Tropical", "Alluvial"},
}

// Fragments are matched against normalized city names, checked in this order.
var archetypeFragments = []struct {
	archetype Archetype
	fragments []string
}{
	{ArchetypeWest, []string{"mumbai", "pune", "nagpur", "nashik", "aurangabad", "ahmedabad", "surat", "vadodara", "rajkot"}},
	{ArchetypeSouth, []string{"chennai", "bangalore", "mysore", "coimbatore", "madurai", "thiruvananthapuram", "kochi", "kozhikode", "hyderabad", "warangal", "visakhapatnam", "vijayawada"}},
	{ArchetypeEast, []string{"kolkata", "howrah", "durgapur", "asansol", "siliguri", "bhubaneswar", "cuttack", "rourkela"}},
}

// archetypeFor picks the archetype for a normalized city key, defaulting to north.
func archetypeFor(key string) Archetype {
	for _, a := range archetypeFragments {
		if common.HasAny(key, a.fragments...) {
			return a.archetype
		}
	}
	return ArchetypeNorth
}

// generateClimate builds the climate table for every city, keyed by normalized name.
func generateClimate(cities []string) map[string]ClimateRecord {
	out := make(map[string]ClimateRecord, len(cities))
	for _, city := range cities {
		key := common.NormalizeKey(city)
		a := archetypeFor(key)
		p := archetypeProfiles[a]
		out[key] = ClimateRecord{
			Location:    city,
			Temperature: p.temperature,
			Humidity:    p.humidity,
			Rainfall:    p.rainfall,
			Season:      p.season,
			SoilType:    p.soilType,
			Archetype:   a,
		}
	}
	return out
}
