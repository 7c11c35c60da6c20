package source

import (
	"math"
	"testing"

	"github.com/paulmach/orb"

	"vicimap/internal/feature"
	"vicimap/internal/geo"
	"vicimap/internal/label"
)

const overpassSample = `{
  "version": 0.6,
  "elements": [
    {
      "type": "way", "id": 42,
      "tags": {"highway": "motorway", "name": "Test Rd"},
      "geometry": [{"lat": 1, "lon": 1}, {"lat": 5, "lon": 5}, {"lat": 9, "lon": 9}]
    },
    {
      "type": "way", "id": 43,
      "tags": {"highway": "residential"},
      "geometry": [{"lat": 2, "lon": 2}, {"lat": 3, "lon": 3}]
    },
    {
      "type": "node", "id": 44, "tags": {"name": "ignored"}
    }
  ]
}`

const geojsonSample = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "id": "way/7",
      "properties": {"waterway": "river", "name": "Old Canal", "width": "12"},
      "geometry": {"type": "LineString", "coordinates": [[0, 0], [4, 4], [8, 8]]}
    },
    {
      "type": "Feature",
      "properties": {"railway": "rail"},
      "geometry": {"type": "MultiLineString", "coordinates": [[[0, 1], [1, 2]], [[2, 3], [3, 4]]]}
    }
  ]
}`

func TestParseOverpass(t *testing.T) {
	raws, err := ParseOverpass([]byte(overpassSample))
	if err != nil {
		t.Fatalf("ParseOverpass: %v", err)
	}
	if len(raws) != 2 {
		t.Fatalf("expected 2 ways, got %d", len(raws))
	}
	if raws[0].ID != "way/42" || raws[0].Tags["name"] != "Test Rd" {
		t.Errorf("first way = %+v", raws[0])
	}
	if raws[0].Geometry[0] != (orb.Point{1, 1}) {
		t.Errorf("lon/lat order wrong: %v", raws[0].Geometry[0])
	}
}

func TestParseGeoJSON(t *testing.T) {
	raws, err := ParseGeoJSON([]byte(geojsonSample))
	if err != nil {
		t.Fatalf("ParseGeoJSON: %v", err)
	}
	// one LineString + two MultiLineString parts
	if len(raws) != 3 {
		t.Fatalf("expected 3 raw features, got %d", len(raws))
	}
	if raws[0].ID != "way/7" || raws[0].Tags["name"] != "Old Canal" {
		t.Errorf("first feature = %+v", raws[0])
	}
	if raws[1].ID != raws[2].ID {
		if raws[1].Tags["railway"] != "rail" || raws[2].Tags["railway"] != "rail" {
			t.Error("multilinestring parts must share tags")
		}
	} else {
		t.Error("multilinestring parts must get distinct ids")
	}
}

func TestBuildFiltersAndClassifies(t *testing.T) {
	raws, _ := ParseOverpass([]byte(overpassSample))
	b := geo.Bounds{West: 0, South: 0, East: 10, North: 10}
	features, err := Build(raws, b, 800, 600)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// the unnamed residential way fails the inclusion filter
	if len(features) != 1 {
		t.Fatalf("expected 1 feature after filtering, got %d", len(features))
	}
	f := features[0]
	if f.Category != feature.Motorway || f.Group != feature.GroupHighway {
		t.Errorf("classification = %v/%v", f.Category, f.Group)
	}
	if !f.Visible || !f.ShowName {
		t.Error("new features start visible with names shown")
	}
}

func TestBuildRejectsDegenerateBounds(t *testing.T) {
	raws, _ := ParseOverpass([]byte(overpassSample))
	_, err := Build(raws, geo.Bounds{West: 3, East: 3, South: 0, North: 10}, 800, 600)
	if err != geo.ErrInvalidBounds {
		t.Errorf("expected ErrInvalidBounds, got %v", err)
	}
}

// End-to-end: geographic input through transform, classification and
// placement, checking the concrete coordinates the export will see.
func TestPipelineScenario(t *testing.T) {
	raws, _ := ParseOverpass([]byte(overpassSample))
	b := geo.Bounds{West: 0, South: 0, East: 10, North: 10}
	features, err := Build(raws, b, 800, 600)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	f := features[0]
	want := []geo.Point{{X: 80, Y: 540}, {X: 400, Y: 300}, {X: 720, Y: 60}}
	for i, p := range f.Geometry {
		if math.Abs(p.X-want[i].X) > 1e-9 || math.Abs(p.Y-want[i].Y) > 1e-9 {
			t.Errorf("point %d = %+v, want %+v", i, p, want[i])
		}
	}

	plans := label.Place(features, label.DefaultMinSeparation)
	if len(plans) != 1 {
		t.Fatalf("expected one label plan, got %d", len(plans))
	}
	p := plans[0]
	if p.Suppressed {
		t.Error("single label must not be suppressed")
	}
	if math.Abs(p.Anchor.X-400) > 1e-9 || math.Abs(p.Anchor.Y-300) > 1e-9 {
		t.Errorf("anchor = %+v, want (400, 300)", p.Anchor)
	}
	// slope of the transformed line: atan2(-480, 640) ≈ -36.87°,
	// already inside (-90, 90]
	wantAngle := math.Atan2(-480, 640) * 180 / math.Pi
	if math.Abs(p.Angle-wantAngle) > 1e-9 {
		t.Errorf("angle = %v, want %v", p.Angle, wantAngle)
	}
}

func TestUnionBounds(t *testing.T) {
	raws, _ := ParseGeoJSON([]byte(geojsonSample))
	b := UnionBounds(raws)
	want := geo.Bounds{West: 0, South: 0, East: 8, North: 8}
	if b != want {
		t.Errorf("UnionBounds = %+v, want %+v", b, want)
	}
}
