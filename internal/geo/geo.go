package geo

import (
	"errors"

	"github.com/paulmach/orb"
)

// ErrInvalidBounds reports a degenerate geographic bounding box: zero
// width or zero height would make the drawing-space scale factors
// infinite. Callers must reject such a region before transforming.
var ErrInvalidBounds = errors.New("geo: degenerate bounds")

// Point is a position in drawing space. Y grows downward, matching the
// screen/SVG convention.
type Point struct {
	X float64
	Y float64
}

// IsZero reports whether p is exactly the origin. A zero label offset is
// treated the same as no offset at all.
func (p Point) IsZero() bool { return p.X == 0 && p.Y == 0 }

// Add returns p shifted by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p minus q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Bounds is a geographic query region in lon/lat degrees.
type Bounds struct {
	West  float64
	South float64
	East  float64
	North float64
}

// Validate rejects regions the coordinate transform cannot handle.
func (b Bounds) Validate() error {
	if b.East == b.West || b.North == b.South {
		return ErrInvalidBounds
	}
	return nil
}

// BoundsFromOrb converts an orb bounding box (as accumulated from input
// geometry) into a query region.
func BoundsFromOrb(bound orb.Bound) Bounds {
	return Bounds{
		West:  bound.Min[0],
		South: bound.Min[1],
		East:  bound.Max[0],
		North: bound.Max[1],
	}
}

// ToDrawing maps a geographic lon/lat point into a width×height drawing
// space. North maps to smaller Y. The caller is responsible for having
// validated the bounds.
func ToDrawing(p orb.Point, b Bounds, width, height float64) Point {
	scaleX := width / (b.East - b.West)
	scaleY := height / (b.North - b.South)
	return Point{
		X: (p[0] - b.West) * scaleX,
		Y: height - (p[1]-b.South)*scaleY,
	}
}

// ToSource is the exact inverse of ToDrawing. Interactive dragging reads
// drawing-space positions and must map back losslessly.
func ToSource(pt Point, b Bounds, width, height float64) orb.Point {
	scaleX := width / (b.East - b.West)
	scaleY := height / (b.North - b.South)
	return orb.Point{
		pt.X/scaleX + b.West,
		(height-pt.Y)/scaleY + b.South,
	}
}
