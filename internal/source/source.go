package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb"

	"vicimap/internal/feature"
	"vicimap/internal/geo"
)

// RawFeature is one tagged polyline as delivered by a data source, still
// in geographic lon/lat coordinates.
type RawFeature struct {
	ID       string
	Tags     feature.Tags
	Geometry orb.LineString
}

// Load reads raw features from a file, dispatching on extension. Plain
// .json is sniffed: a GeoJSON FeatureCollection or an Overpass export
// both work.
func Load(path string) ([]RawFeature, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".geojson":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return ParseGeoJSON(data)
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if strings.Contains(string(data), `"FeatureCollection"`) {
			return ParseGeoJSON(data)
		}
		return ParseOverpass(data)
	case ".shp":
		return LoadShapefile(path)
	default:
		return nil, errors.New("source: unsupported file type " + ext)
	}
}

// UnionBounds is the fallback query region when the caller has none: the
// union bounding box of all input geometry.
func UnionBounds(raws []RawFeature) geo.Bounds {
	var bound orb.Bound
	first := true
	for _, r := range raws {
		if len(r.Geometry) == 0 {
			continue
		}
		if first {
			bound = r.Geometry.Bound()
			first = false
		} else {
			bound = bound.Union(r.Geometry.Bound())
		}
	}
	return geo.BoundsFromOrb(bound)
}

// Build classifies raw features, applies the default inclusion filter,
// and transforms geometry into a width×height drawing space. A degenerate
// region fails with geo.ErrInvalidBounds before anything is transformed.
func Build(raws []RawFeature, b geo.Bounds, width, height float64) ([]*feature.LineFeature, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	var out []*feature.LineFeature
	for i, r := range raws {
		cls := feature.Classify(r.Tags)
		if !cls.IncludeByDefault {
			continue
		}
		pts := make([]geo.Point, len(r.Geometry))
		for j, p := range r.Geometry {
			pts[j] = geo.ToDrawing(p, b, width, height)
		}
		id := r.ID
		if id == "" {
			id = fmt.Sprintf("feature/%d", i)
		}
		out = append(out, &feature.LineFeature{
			ID:       id,
			Name:     r.Tags.Name(),
			Category: cls.Category,
			Group:    cls.Group,
			Geometry: pts,
			Visible:  true,
			ShowName: true,
		})
	}
	return out, nil
}
