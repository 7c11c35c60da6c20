package source

import (
	"fmt"
	"strings"

	shp "github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"

	"vicimap/internal/feature"
)

// LoadShapefile reads polyline records from an ESRI shapefile. DBF
// attributes become tags under their lowercased field names, so a
// shapefile with a "highway" column classifies exactly like OSM data;
// NAME-style columns feed the display name.
func LoadShapefile(path string) ([]RawFeature, error) {
	shape, err := shp.Open(path)
	if err != nil {
		return nil, err
	}
	defer shape.Close()

	fields := shape.Fields()
	var raws []RawFeature
	for shape.Next() {
		n, p := shape.Shape()
		line, ok := p.(*shp.PolyLine)
		if !ok {
			continue
		}
		tags := feature.Tags{}
		for i, field := range fields {
			// field names are fixed-size byte arrays padded with NULs
			key := strings.ToLower(strings.TrimRight(string(field.Name[:]), "\x00 "))
			if key == "" {
				continue
			}
			if v := strings.TrimSpace(shape.ReadAttribute(n, i)); v != "" {
				tags[key] = v
			}
		}
		if v, ok := tags["name_en"]; ok && tags["name"] == "" {
			tags["name"] = v
		}
		ls := make(orb.LineString, len(line.Points))
		for i, pt := range line.Points {
			ls[i] = orb.Point{pt.X, pt.Y}
		}
		if len(ls) < 2 {
			continue
		}
		raws = append(raws, RawFeature{
			ID:       fmt.Sprintf("shp/%d", n),
			Tags:     tags,
			Geometry: ls,
		})
	}
	return raws, nil
}
