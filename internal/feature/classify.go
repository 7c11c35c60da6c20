package feature

import "strings"

// TagSource is the narrow lookup the classifier needs from a raw tagged
// element. A plain map satisfies it.
type TagSource interface {
	Get(key string) (string, bool)
}

// Tags is a raw OSM-style tag dictionary.
type Tags map[string]string

// Get implements TagSource.
func (t Tags) Get(key string) (string, bool) {
	v, ok := t[key]
	return v, ok
}

// Name returns the display name tag, or "".
func (t Tags) Name() string { return t["name"] }

// Classification is the result of categorizing a raw tagged element.
type Classification struct {
	Category         Category
	Group            Group
	IncludeByDefault bool
}

// highwayPrefixes is the fixed ordered prefix list for highway values that
// do not match an exact category name. Order matters: first match wins.
var highwayPrefixes = []struct {
	prefix   string
	category Category
}{
	{"motorway", Motorway},
	{"trunk", Trunk},
	{"primary", Primary},
	{"secondary", Secondary},
	{"tertiary", Tertiary},
	{"residential", Residential},
	{"service", Service},
	{"track", Track},
	{"path", Path},
	{"footway", Footway},
	{"pedestrian", Footway},
	{"cycleway", Cycleway},
	{"steps", Steps},
	{"unclassified", Unclassified},
}

var highwayExact = map[string]Category{
	"motorway":     Motorway,
	"trunk":        Trunk,
	"primary":      Primary,
	"secondary":    Secondary,
	"tertiary":     Tertiary,
	"residential":  Residential,
	"service":      Service,
	"track":        Track,
	"path":         Path,
	"footway":      Footway,
	"pedestrian":   Footway,
	"cycleway":     Cycleway,
	"steps":        Steps,
	"unclassified": Unclassified,
}

var railwayMajor = map[string]bool{
	"rail":       true,
	"light_rail": true,
	"subway":     true,
	"tram":       true,
}

var waterwayMajor = map[string]bool{
	"river": true,
	"canal": true,
}

// significant categories are included even when unnamed.
var significant = map[Category]bool{
	Motorway:      true,
	Trunk:         true,
	Primary:       true,
	Secondary:     true,
	Tertiary:      true,
	RailwayMajor:  true,
	WaterwayMajor: true,
}

// Classify maps a raw tagged element to its category, group, and default
// inclusion. When an element carries more than one of the highway,
// railway and waterway keys, highway wins, then railway, then waterway;
// this ordering is a deliberate fixed rule.
func Classify(tags TagSource) Classification {
	var c Classification
	if v, ok := tags.Get("highway"); ok {
		c.Group = GroupHighway
		c.Category = highwayCategory(v)
	} else if v, ok := tags.Get("railway"); ok {
		c.Group = GroupRailway
		if railwayMajor[v] {
			c.Category = RailwayMajor
		} else {
			c.Category = RailwayMinor
		}
	} else if v, ok := tags.Get("waterway"); ok {
		c.Group = GroupWaterway
		if waterwayMajor[v] {
			c.Category = WaterwayMajor
		} else {
			c.Category = WaterwayMinor
		}
	} else {
		c.Group = GroupOther
		c.Category = Other
	}
	name, _ := tags.Get("name")
	c.IncludeByDefault = significant[c.Category] || name != ""
	return c
}

func highwayCategory(v string) Category {
	if cat, ok := highwayExact[v]; ok {
		return cat
	}
	for _, p := range highwayPrefixes {
		if strings.HasPrefix(v, p.prefix) {
			return p.category
		}
	}
	return Other
}

// priorityRanks orders categories for label placement: lower rank wins
// the deduplication race. The table is fixed so re-exports of the same
// input are reproducible.
var priorityRanks = map[Category]int{
	Motorway:      1,
	Trunk:         2,
	Primary:       3,
	RailwayMajor:  4,
	WaterwayMajor: 5,
	Secondary:     6,
	Tertiary:      7,
	Residential:   8,
	RailwayMinor:  9,
	WaterwayMinor: 10,
	Service:       11,
	Track:         12,
	Path:          13,
	Footway:       14,
	Cycleway:      15,
	Steps:         16,
	Unclassified:  17,
}

// PriorityRank returns the placement rank for a category; unknown
// categories sort last.
func PriorityRank(c Category) int {
	if r, ok := priorityRanks[c]; ok {
		return r
	}
	return 18
}
