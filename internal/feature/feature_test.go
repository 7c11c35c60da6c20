package feature

import (
	"testing"

	"vicimap/internal/geo"
)

func TestHasCustomPosition(t *testing.T) {
	f := &LineFeature{}
	if f.HasCustomPosition() {
		t.Error("zero offset must not count as a custom position")
	}
	f.LabelOffset = geo.Point{X: 0, Y: 0}
	if f.HasCustomPosition() {
		t.Error("explicit (0,0) offset must not count as a custom position")
	}
	f.LabelOffset = geo.Point{X: 0, Y: -3}
	if !f.HasCustomPosition() {
		t.Error("non-zero offset on one axis is a custom position")
	}
}

func TestSnapshotCloneIsDeep(t *testing.T) {
	angle := 30.0
	snap := Snapshot{
		Features: []*LineFeature{{
			ID:          "w1",
			Name:        "Main St",
			Geometry:    []geo.Point{{X: 1, Y: 2}, {X: 3, Y: 4}},
			Visible:     true,
			ShowName:    true,
			CustomAngle: &angle,
		}},
		Labels: []*StandaloneLabel{{ID: "t1", Text: "note", Visible: true}},
	}
	clone := snap.Clone()

	clone.Features[0].Visible = false
	clone.Features[0].Geometry[0] = geo.Point{X: 99, Y: 99}
	*clone.Features[0].CustomAngle = -45
	clone.Labels[0].Text = "edited"

	if !snap.Features[0].Visible {
		t.Error("clone shares Visible with original")
	}
	if snap.Features[0].Geometry[0].X == 99 {
		t.Error("clone shares geometry backing array with original")
	}
	if *snap.Features[0].CustomAngle != 30 {
		t.Error("clone shares CustomAngle pointer with original")
	}
	if snap.Labels[0].Text != "note" {
		t.Error("clone shares label with original")
	}
}

func TestEffectiveFontSize(t *testing.T) {
	f := &LineFeature{}
	if f.EffectiveFontSize() != DefaultFontSize {
		t.Errorf("zero font size should resolve to default, got %v", f.EffectiveFontSize())
	}
	f.FontSize = 18
	if f.EffectiveFontSize() != 18 {
		t.Errorf("explicit font size ignored, got %v", f.EffectiveFontSize())
	}
}
