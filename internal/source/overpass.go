package source

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"

	"vicimap/internal/feature"
)

// Overpass export structures: the JSON a `[out:json]` Overpass query
// yields when saved to disk. Only ways with inline geometry are of
// interest here.
type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Type     string            `json:"type"`
	ID       int64             `json:"id"`
	Tags     map[string]string `json:"tags"`
	Geometry []overpassCoord   `json:"geometry"`
}

type overpassCoord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ParseOverpass reads a saved Overpass JSON export. Non-way elements and
// ways without geometry are skipped silently.
func ParseOverpass(data []byte) ([]RawFeature, error) {
	var resp overpassResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	var raws []RawFeature
	for _, el := range resp.Elements {
		if el.Type != "way" || len(el.Geometry) == 0 {
			continue
		}
		ls := make(orb.LineString, len(el.Geometry))
		for i, c := range el.Geometry {
			ls[i] = orb.Point{c.Lon, c.Lat}
		}
		tags := feature.Tags{}
		for k, v := range el.Tags {
			tags[k] = v
		}
		raws = append(raws, RawFeature{
			ID:       fmt.Sprintf("way/%d", el.ID),
			Tags:     tags,
			Geometry: ls,
		})
	}
	return raws, nil
}
