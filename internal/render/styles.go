package render

import "vicimap/internal/feature"

// Style carries the per-group attributes both file backends need: stroke
// for SVG, layer name and ACI color for DXF.
type Style struct {
	Stroke string
	Width  float64
	Layer  string
	Color  int
}

// StyleSet maps feature groups to styles. Label text has its own entry.
type StyleSet struct {
	Highway  Style
	Railway  Style
	Waterway Style
	Other    Style
	Labels   Style
}

// DefaultStyles is the stock look: solid roads, brown railways, blue
// waterways.
func DefaultStyles() StyleSet {
	return StyleSet{
		Highway:  Style{Stroke: "#444444", Width: 2, Layer: "Roads", Color: 7},
		Railway:  Style{Stroke: "#8b4513", Width: 1, Layer: "Railways", Color: 1},
		Waterway: Style{Stroke: "#1e90ff", Width: 2, Layer: "Waterways", Color: 5},
		Other:    Style{Stroke: "#999999", Width: 1, Layer: "Roads", Color: 8},
		Labels:   Style{Stroke: "#111111", Width: 1, Layer: "Labels", Color: 2},
	}
}

// For returns the style for a feature group.
func (s StyleSet) For(g feature.Group) Style {
	switch g {
	case feature.GroupHighway:
		return s.Highway
	case feature.GroupRailway:
		return s.Railway
	case feature.GroupWaterway:
		return s.Waterway
	default:
		return s.Other
	}
}

// Layers lists the distinct DXF layers in emission order.
func (s StyleSet) Layers() []Style {
	return []Style{s.Highway, s.Railway, s.Waterway, s.Labels}
}
