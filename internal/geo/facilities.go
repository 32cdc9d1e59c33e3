// Package geo parses the municipal facility GeoJSON layer into lookup
// records keyed by location ID. The layer only decorates search results
// with URLs, addresses, and map coordinates; nothing filters on it.
package geo

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/city-rec/dropin-cli/internal/model"
)

// noneSentinel marks absent property values in the source layer.
const noneSentinel = "None"

// ParseFacilities decodes a GeoJSON FeatureCollection into facility
// records. Features without a LOCATIONID are skipped; malformed geometry
// is tolerated (the record simply carries no coordinates). A feature never
// fails the whole parse.
func ParseFacilities(r io.Reader) ([]model.Facility, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, eris.Wrap(err, "geo: read facility layer")
	}

	var fc geojson.FeatureCollection
	if err := json.Unmarshal(raw, &fc); err != nil {
		return nil, eris.Wrap(err, "geo: decode facility layer")
	}

	facilities := make([]model.Facility, 0, len(fc.Features))
	skipped := 0
	for _, feature := range fc.Features {
		if feature == nil {
			continue
		}
		id := propString(feature.Properties, "LOCATIONID")
		if id == "" {
			skipped++
			continue
		}

		fac := model.Facility{
			LocationID: id,
			Name:       propString(feature.Properties, "ASSET_NAME"),
			URL:        propString(feature.Properties, "URL"),
			Address:    propString(feature.Properties, "ADDRESS"),
			Phone:      propString(feature.Properties, "PHONE"),
		}

		// First coordinate pair of whatever geometry the feature carries
		// (Point, LineString, or Polygon ring).
		if feature.Geometry != nil {
			if flat := feature.Geometry.FlatCoords(); len(flat) >= 2 {
				fac.Lng = flat[0]
				fac.Lat = flat[1]
				fac.HasCoords = true
			}
		}

		facilities = append(facilities, fac)
	}

	if skipped > 0 {
		zap.L().Debug("facility features without LOCATIONID skipped",
			zap.Int("skipped", skipped),
		)
	}
	return facilities, nil
}

// Index keys facilities by location ID for projection-time lookups.
func Index(facilities []model.Facility) map[string]model.Facility {
	idx := make(map[string]model.Facility, len(facilities))
	for _, fac := range facilities {
		if _, ok := idx[fac.LocationID]; !ok {
			idx[fac.LocationID] = fac
		}
	}
	return idx
}

// propString extracts a string property, treating the "None" sentinel as
// absent and stringifying numeric IDs.
func propString(props map[string]interface{}, key string) string {
	v, ok := props[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		if s == noneSentinel {
			return ""
		}
		return s
	case float64:
		if s == float64(int64(s)) {
			return fmt.Sprintf("%d", int64(s))
		}
		return fmt.Sprintf("%v", s)
	default:
		return fmt.Sprintf("%v", v)
	}
}
