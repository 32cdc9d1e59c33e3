package engine

import (
	"strconv"

	"github.com/city-rec/dropin-cli/internal/model"
)

// MapLocation is one unique pin for the map view: a named location with
// coordinates, decorated with its registry address and facility URL.
type MapLocation struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
	URL     string  `json:"url,omitempty"`
}

// MapLocations deduplicates a result set by location name and joins each
// against the facility layer for coordinates. Locations without
// coordinates are omitted: they cannot be placed. city/province feed the
// display address line.
func MapLocations(results []Result, locations []model.Location, facilities map[string]model.Facility, city, province string) []MapLocation {
	byID := make(map[int]model.Location, len(locations))
	for _, loc := range locations {
		byID[loc.LocationID] = loc
	}

	var out []MapLocation
	seen := make(map[string]bool)
	for _, r := range results {
		if seen[r.Location] {
			continue
		}
		fac, ok := facilities[strconv.Itoa(r.LocationID)]
		if !ok || !fac.HasCoords {
			continue
		}
		seen[r.Location] = true

		pin := MapLocation{
			Name: r.Location,
			Lat:  fac.Lat,
			Lng:  fac.Lng,
			URL:  fac.URL,
		}
		if loc, ok := byID[r.LocationID]; ok {
			pin.Address = loc.FormatAddress(city, province)
		}
		out = append(out, pin)
	}
	return out
}
