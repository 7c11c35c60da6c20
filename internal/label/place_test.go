package label

import (
	"reflect"
	"testing"

	"vicimap/internal/feature"
	"vicimap/internal/geo"
)

func namedRoad(id, name string, cat feature.Category, pts ...geo.Point) *feature.LineFeature {
	return &feature.LineFeature{
		ID:       id,
		Name:     name,
		Category: cat,
		Group:    feature.GroupHighway,
		Geometry: pts,
		Visible:  true,
		ShowName: true,
	}
}

func planByID(plans []Plan, id string) (Plan, bool) {
	for _, p := range plans {
		if p.FeatureID == id {
			return p, true
		}
	}
	return Plan{}, false
}

func TestPlaceFiltersInvisibleAndUnnamed(t *testing.T) {
	hidden := namedRoad("a", "Main St", feature.Primary, geo.Point{X: 0, Y: 0}, geo.Point{X: 10, Y: 0})
	hidden.Visible = false
	muted := namedRoad("b", "Main St", feature.Primary, geo.Point{X: 0, Y: 0}, geo.Point{X: 10, Y: 0})
	muted.ShowName = false
	unnamed := namedRoad("c", "", feature.Primary, geo.Point{X: 0, Y: 0}, geo.Point{X: 10, Y: 0})

	plans := Place([]*feature.LineFeature{hidden, muted, unnamed}, DefaultMinSeparation)
	if len(plans) != 0 {
		t.Fatalf("expected empty plan, got %d entries", len(plans))
	}
}

func TestPlaceDedupRadius(t *testing.T) {
	a := namedRoad("a", "Main St", feature.Primary, geo.Point{X: 0, Y: 0}, geo.Point{X: 100, Y: 0}, geo.Point{X: 200, Y: 0})
	b := namedRoad("b", "Main St", feature.Primary, geo.Point{X: 0, Y: 40}, geo.Point{X: 100, Y: 40}, geo.Point{X: 200, Y: 40})

	plans := Place([]*feature.LineFeature{a, b}, 150)
	if len(plans) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(plans))
	}
	pa, _ := planByID(plans, "a")
	pb, _ := planByID(plans, "b")
	if pa.Suppressed {
		t.Error("first placed label must not be suppressed")
	}
	if !pb.Suppressed {
		t.Error("same name within radius must be suppressed")
	}
}

func TestPlaceAtExactSeparationBothPlaced(t *testing.T) {
	// anchors at (100,0) and (100,150): distance exactly minSeparation
	a := namedRoad("a", "Main St", feature.Primary, geo.Point{X: 0, Y: 0}, geo.Point{X: 100, Y: 0}, geo.Point{X: 200, Y: 0})
	b := namedRoad("b", "Main St", feature.Primary, geo.Point{X: 0, Y: 150}, geo.Point{X: 100, Y: 150}, geo.Point{X: 200, Y: 150})

	plans := Place([]*feature.LineFeature{a, b}, 150)
	for _, p := range plans {
		if p.Suppressed {
			t.Errorf("label %s suppressed at exactly the separation distance", p.FeatureID)
		}
	}
}

func TestPlaceDifferentNamesNeverCollide(t *testing.T) {
	a := namedRoad("a", "Main St", feature.Primary, geo.Point{X: 0, Y: 0}, geo.Point{X: 10, Y: 0}, geo.Point{X: 20, Y: 0})
	b := namedRoad("b", "Oak Ave", feature.Primary, geo.Point{X: 0, Y: 5}, geo.Point{X: 10, Y: 5}, geo.Point{X: 20, Y: 5})

	plans := Place([]*feature.LineFeature{a, b}, 150)
	for _, p := range plans {
		if p.Suppressed {
			t.Errorf("label %q suppressed despite unique name", p.Text)
		}
	}
}

func TestPlaceCustomPositionExemption(t *testing.T) {
	auto := namedRoad("auto", "Main St", feature.Primary, geo.Point{X: 0, Y: 0}, geo.Point{X: 100, Y: 0}, geo.Point{X: 200, Y: 0})
	custom := namedRoad("custom", "Main St", feature.Motorway, geo.Point{X: 0, Y: 10}, geo.Point{X: 100, Y: 10}, geo.Point{X: 200, Y: 10})
	custom.LabelOffset = geo.Point{X: 5, Y: 0}

	// custom sorts first (motorway) but must not register against auto
	plans := Place([]*feature.LineFeature{auto, custom}, 150)
	pc, _ := planByID(plans, "custom")
	pa, _ := planByID(plans, "auto")
	if pc.Suppressed {
		t.Error("custom-positioned label must always be placed")
	}
	if pa.Suppressed {
		t.Error("custom-positioned label must not suppress an automatic one")
	}
	if want := (geo.Point{X: 105, Y: 10}); pc.Anchor != want {
		t.Errorf("custom anchor = %+v, want %+v", pc.Anchor, want)
	}
}

func TestPlaceCustomPositionNeverSuppressed(t *testing.T) {
	a := namedRoad("a", "Main St", feature.Motorway, geo.Point{X: 0, Y: 0}, geo.Point{X: 100, Y: 0}, geo.Point{X: 200, Y: 0})
	b := namedRoad("b", "Main St", feature.Residential, geo.Point{X: 0, Y: 10}, geo.Point{X: 100, Y: 10}, geo.Point{X: 200, Y: 10})
	b.LabelOffset = geo.Point{X: 1, Y: 1}

	plans := Place([]*feature.LineFeature{a, b}, 150)
	pb, _ := planByID(plans, "b")
	if pb.Suppressed {
		t.Error("custom position must exempt the label from suppression")
	}
}

func TestPlaceCategoryPriorityBeatsPointCount(t *testing.T) {
	residential := namedRoad("res", "Main St", feature.Residential,
		geo.Point{X: 0, Y: 0}, geo.Point{X: 10, Y: 0}, geo.Point{X: 20, Y: 0},
		geo.Point{X: 30, Y: 0}, geo.Point{X: 40, Y: 0})
	motorway := namedRoad("mot", "Main St", feature.Motorway,
		geo.Point{X: 0, Y: 10}, geo.Point{X: 40, Y: 10})

	plans := Place([]*feature.LineFeature{residential, motorway}, 150)
	pm, _ := planByID(plans, "mot")
	pr, _ := planByID(plans, "res")
	if pm.Suppressed {
		t.Error("motorway label should win the deduplication race")
	}
	if !pr.Suppressed {
		t.Error("residential label should lose to the motorway")
	}
}

func TestPlacePointCountBreaksTies(t *testing.T) {
	short := namedRoad("short", "Main St", feature.Primary,
		geo.Point{X: 0, Y: 0}, geo.Point{X: 40, Y: 0})
	long := namedRoad("long", "Main St", feature.Primary,
		geo.Point{X: 0, Y: 10}, geo.Point{X: 10, Y: 10}, geo.Point{X: 20, Y: 10}, geo.Point{X: 40, Y: 10})

	plans := Place([]*feature.LineFeature{short, long}, 150)
	pl, _ := planByID(plans, "long")
	ps, _ := planByID(plans, "short")
	if pl.Suppressed || !ps.Suppressed {
		t.Error("longer geometry should win a same-category tie")
	}
}

func TestPlaceIdempotent(t *testing.T) {
	features := []*feature.LineFeature{
		namedRoad("a", "Main St", feature.Primary, geo.Point{X: 0, Y: 0}, geo.Point{X: 100, Y: 0}, geo.Point{X: 200, Y: 0}),
		namedRoad("b", "Main St", feature.Residential, geo.Point{X: 0, Y: 40}, geo.Point{X: 100, Y: 40}, geo.Point{X: 200, Y: 40}),
		namedRoad("c", "River Rd", feature.Tertiary, geo.Point{X: 300, Y: 300}, geo.Point{X: 400, Y: 300}),
	}
	first := Place(features, DefaultMinSeparation)
	second := Place(features, DefaultMinSeparation)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated place() diverged:\n%+v\n%+v", first, second)
	}
}

func TestPlaceDegenerateGeometry(t *testing.T) {
	empty := namedRoad("empty", "Ghost Rd", feature.Primary)
	single := namedRoad("single", "Dot Rd", feature.Primary, geo.Point{X: 7, Y: 9})

	plans := Place([]*feature.LineFeature{empty, single}, 150)
	pe, ok := planByID(plans, "empty")
	if !ok || !pe.Suppressed {
		t.Error("zero-point feature should yield a suppressed no-op entry")
	}
	ps, ok := planByID(plans, "single")
	if !ok || ps.Suppressed {
		t.Error("one-point feature should still be placed")
	}
	if ps.Anchor != (geo.Point{X: 7, Y: 9}) || ps.Angle != 0 {
		t.Errorf("one-point feature: anchor %+v angle %v", ps.Anchor, ps.Angle)
	}
}
