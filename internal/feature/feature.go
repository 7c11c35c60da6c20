package feature

import "vicimap/internal/geo"

// DefaultFontSize is used when a feature or standalone label carries no
// explicit size.
const DefaultFontSize = 12.0

// Group is the coarse classification driving render style.
type Group int

const (
	GroupHighway Group = iota
	GroupRailway
	GroupWaterway
	GroupOther
)

func (g Group) String() string {
	switch g {
	case GroupHighway:
		return "highway"
	case GroupRailway:
		return "railway"
	case GroupWaterway:
		return "waterway"
	default:
		return "other"
	}
}

// Category is the fine-grained feature type used for styling and label
// priority.
type Category int

const (
	Motorway Category = iota
	Trunk
	Primary
	Secondary
	Tertiary
	Residential
	Service
	Track
	Path
	Footway
	Cycleway
	Steps
	Unclassified
	RailwayMajor
	RailwayMinor
	WaterwayMajor
	WaterwayMinor
	Other
)

func (c Category) String() string {
	names := [...]string{
		"motorway", "trunk", "primary", "secondary", "tertiary",
		"residential", "service", "track", "path", "footway", "cycleway",
		"steps", "unclassified", "railway_major", "railway_minor",
		"waterway_major", "waterway_minor", "other",
	}
	if int(c) < len(names) {
		return names[c]
	}
	return "other"
}

// LineFeature is a named or unnamed linear geographic entity, already
// transformed into drawing space. ID, Name, Category, Group and Geometry
// are fixed at creation; the presentation fields are mutated by the
// editor between committed snapshots.
type LineFeature struct {
	ID       string
	Name     string
	Category Category
	Group    Group
	Geometry []geo.Point

	Visible  bool
	ShowName bool

	// LabelOffset shifts the computed anchor. A strictly non-zero offset
	// marks the label as custom-positioned, which opts it out of
	// proximity deduplication in both directions.
	LabelOffset geo.Point
	// FontSize zero means DefaultFontSize.
	FontSize float64
	// CustomAngle, when set, replaces the tangent-derived label angle.
	CustomAngle *float64
}

// HasCustomPosition reports whether the label was manually placed.
func (f *LineFeature) HasCustomPosition() bool { return !f.LabelOffset.IsZero() }

// EffectiveFontSize resolves the zero-means-default convention.
func (f *LineFeature) EffectiveFontSize() float64 {
	if f.FontSize > 0 {
		return f.FontSize
	}
	return DefaultFontSize
}

// Clone copies the feature, including presentation state.
func (f *LineFeature) Clone() *LineFeature {
	c := *f
	c.Geometry = append([]geo.Point(nil), f.Geometry...)
	if f.CustomAngle != nil {
		a := *f.CustomAngle
		c.CustomAngle = &a
	}
	return &c
}

// StandaloneLabel is a free-floating annotation. It never participates in
// name deduplication; each visible one is placed unconditionally.
type StandaloneLabel struct {
	ID       string
	Text     string
	Position geo.Point
	FontSize float64
	Angle    float64
	Visible  bool
}

// EffectiveFontSize resolves the zero-means-default convention.
func (l *StandaloneLabel) EffectiveFontSize() float64 {
	if l.FontSize > 0 {
		return l.FontSize
	}
	return DefaultFontSize
}

// Clone copies the label.
func (l *StandaloneLabel) Clone() *StandaloneLabel {
	c := *l
	return &c
}

// Snapshot is an immutable captured state of all features and labels: the
// unit of undo and of export. Both orderings are preserved.
type Snapshot struct {
	Features []*LineFeature
	Labels   []*StandaloneLabel
}

// Clone deep-copies the snapshot so later edits never alias it.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Features: make([]*LineFeature, len(s.Features)),
		Labels:   make([]*StandaloneLabel, len(s.Labels)),
	}
	for i, f := range s.Features {
		out.Features[i] = f.Clone()
	}
	for i, l := range s.Labels {
		out.Labels[i] = l.Clone()
	}
	return out
}
