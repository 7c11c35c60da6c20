package render

import (
	"math"

	"vicimap/internal/feature"
	"vicimap/internal/geo"
	"vicimap/internal/label"
)

// LineOp is one logical line segment of a visible feature. Railway
// segments are expanded into their multi-primitive form by the consuming
// backend, not here, since only visual backends need the expansion.
type LineOp struct {
	Group    feature.Group
	Category feature.Category
	From     geo.Point
	To       geo.Point
}

// TextOp is one label to draw: either a non-suppressed plan entry or a
// visible standalone label. Suppression was decided upstream by the
// placer; no backend re-derives it.
type TextOp struct {
	Text  string
	At    geo.Point
	Angle float64
	Size  float64
}

// Scene is the shared draw list all three backends consume. Building it
// once per export keeps the backends geometrically consistent.
type Scene struct {
	Lines []LineOp
	Texts []TextOp

	GeomMin geo.Point
	GeomMax geo.Point
	hasGeom bool
}

// HasGeometry reports whether any visible point contributed to the
// bounding box.
func (s Scene) HasGeometry() bool { return s.hasGeom }

// MidY is the vertical midline of the visible geometry's bounding box,
// the axis the DXF backend mirrors about.
func (s Scene) MidY() float64 { return (s.GeomMin.Y + s.GeomMax.Y) / 2 }

func (s *Scene) grow(p geo.Point) {
	if !s.hasGeom {
		s.GeomMin, s.GeomMax = p, p
		s.hasGeom = true
		return
	}
	s.GeomMin.X = math.Min(s.GeomMin.X, p.X)
	s.GeomMin.Y = math.Min(s.GeomMin.Y, p.Y)
	s.GeomMax.X = math.Max(s.GeomMax.X, p.X)
	s.GeomMax.Y = math.Max(s.GeomMax.Y, p.Y)
}

// BuildScene flattens a snapshot plus its label plan into draw
// primitives. Features with fewer than two points draw no lines; their
// single point still counts toward the bounding box since a label can
// anchor there.
func BuildScene(snap feature.Snapshot, plan []label.Plan) Scene {
	var sc Scene
	for _, f := range snap.Features {
		if !f.Visible {
			continue
		}
		for _, p := range f.Geometry {
			sc.grow(p)
		}
		for i := 1; i < len(f.Geometry); i++ {
			sc.Lines = append(sc.Lines, LineOp{
				Group:    f.Group,
				Category: f.Category,
				From:     f.Geometry[i-1],
				To:       f.Geometry[i],
			})
		}
	}
	for _, p := range plan {
		if p.Suppressed {
			continue
		}
		sc.Texts = append(sc.Texts, TextOp{Text: p.Text, At: p.Anchor, Angle: p.Angle, Size: p.FontSize})
	}
	for _, l := range snap.Labels {
		if !l.Visible {
			continue
		}
		sc.Texts = append(sc.Texts, TextOp{Text: l.Text, At: l.Position, Angle: l.Angle, Size: l.EffectiveFontSize()})
	}
	return sc
}

// Segment is a primitive line piece after railway expansion.
type Segment struct {
	From geo.Point
	To   geo.Point
}

const (
	railHalfGauge = 1.5
	railTieStep   = 8.0
	railTieHalf   = 2.5
)

// RailSegments expands one logical railway segment into two parallel
// offset lines plus perpendicular cross-ties at a fixed spacing. Segments
// too short to carry a tie still get the parallels.
func RailSegments(from, to geo.Point) []Segment {
	dx := to.X - from.X
	dy := to.Y - from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	ux, uy := dx/length, dy/length
	nx, ny := -uy, ux

	off := func(p geo.Point, d float64) geo.Point {
		return geo.Point{X: p.X + nx*d, Y: p.Y + ny*d}
	}
	segs := []Segment{
		{From: off(from, railHalfGauge), To: off(to, railHalfGauge)},
		{From: off(from, -railHalfGauge), To: off(to, -railHalfGauge)},
	}
	for s := railTieStep / 2; s < length; s += railTieStep {
		p := geo.Point{X: from.X + ux*s, Y: from.Y + uy*s}
		segs = append(segs, Segment{From: off(p, railTieHalf), To: off(p, -railTieHalf)})
	}
	return segs
}

// Expand resolves one LineOp into its primitive segments for a visual
// backend: railways get the parallel-and-ties treatment, everything else
// is a single segment.
func Expand(op LineOp) []Segment {
	if op.Group == feature.GroupRailway {
		return RailSegments(op.From, op.To)
	}
	return []Segment{{From: op.From, To: op.To}}
}
