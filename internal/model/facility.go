package model

// Facility is one record from the external facility GeoJSON layer. It keys
// by the string form of the location ID and only decorates search results;
// nothing filters on it.
type Facility struct {
	LocationID string  `json:"location_id"`
	Name       string  `json:"name,omitempty"`
	URL        string  `json:"url,omitempty"`
	Address    string  `json:"address,omitempty"`
	Phone      string  `json:"phone,omitempty"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	HasCoords  bool    `json:"has_coords"`
}
