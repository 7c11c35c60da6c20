package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		b       Bounds
		wantErr bool
	}{
		{"ok", Bounds{West: 0, South: 0, East: 10, North: 10}, false},
		{"negative span ok", Bounds{West: -5, South: -5, East: 5, North: 5}, false},
		{"zero width", Bounds{West: 3, South: 0, East: 3, North: 10}, true},
		{"zero height", Bounds{West: 0, South: 7, East: 10, North: 7}, true},
	}
	for _, c := range cases {
		err := c.b.Validate()
		if c.wantErr && err != ErrInvalidBounds {
			t.Errorf("%s: expected ErrInvalidBounds, got %v", c.name, err)
		}
		if !c.wantErr && err != nil {
			t.Errorf("%s: unexpected error %v", c.name, err)
		}
	}
}

func TestForwardFormula(t *testing.T) {
	b := Bounds{West: 0, South: 0, East: 10, North: 10}
	got := ToDrawing(orb.Point{1, 1}, b, 800, 600)
	if math.Abs(got.X-80) > 1e-9 || math.Abs(got.Y-540) > 1e-9 {
		t.Errorf("ToDrawing(1,1) = (%v, %v), want (80, 540)", got.X, got.Y)
	}
	got = ToDrawing(orb.Point{9, 9}, b, 800, 600)
	if math.Abs(got.X-720) > 1e-9 || math.Abs(got.Y-60) > 1e-9 {
		t.Errorf("ToDrawing(9,9) = (%v, %v), want (720, 60)", got.X, got.Y)
	}
}

func TestRoundTrip(t *testing.T) {
	bounds := []Bounds{
		{West: 0, South: 0, East: 10, North: 10},
		{West: -122.52, South: 37.70, East: -122.35, North: 37.83},
		{West: 139.6, South: 35.5, East: 139.9, North: 35.8},
	}
	pts := []orb.Point{
		{0, 0}, {1, 1}, {9.999, 0.001}, {-122.4, 37.77}, {139.75, 35.68},
	}
	for _, b := range bounds {
		for _, p := range pts {
			got := ToSource(ToDrawing(p, b, 800, 600), b, 800, 600)
			if math.Abs(got[0]-p[0]) > 1e-9 || math.Abs(got[1]-p[1]) > 1e-9 {
				t.Errorf("round trip %v via %+v = %v", p, b, got)
			}
		}
	}
}

func TestBoundsFromOrb(t *testing.T) {
	b := BoundsFromOrb(orb.Bound{Min: orb.Point{1, 2}, Max: orb.Point{3, 4}})
	want := Bounds{West: 1, South: 2, East: 3, North: 4}
	if b != want {
		t.Errorf("BoundsFromOrb = %+v, want %+v", b, want)
	}
}
