package source

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"vicimap/internal/feature"
)

// ParseGeoJSON extracts LineString and MultiLineString features from a
// GeoJSON FeatureCollection. String-valued properties become tags, so an
// OSM-derived collection classifies the same as a live Overpass result.
func ParseGeoJSON(data []byte) ([]RawFeature, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}
	var raws []RawFeature
	for i, f := range fc.Features {
		tags := feature.Tags{}
		for k, v := range f.Properties {
			if s, ok := v.(string); ok {
				tags[k] = s
			}
		}
		id := geojsonID(f, i)
		switch g := f.Geometry.(type) {
		case orb.LineString:
			raws = append(raws, RawFeature{ID: id, Tags: tags, Geometry: g})
		case orb.MultiLineString:
			for part, ls := range g {
				raws = append(raws, RawFeature{
					ID:       fmt.Sprintf("%s/%d", id, part),
					Tags:     tags,
					Geometry: ls,
				})
			}
		}
	}
	return raws, nil
}

func geojsonID(f *geojson.Feature, idx int) string {
	switch v := f.ID.(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("feature/%d", idx)
	}
}
