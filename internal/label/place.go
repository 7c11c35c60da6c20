package label

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"vicimap/internal/feature"
	"vicimap/internal/geo"
)

// DefaultMinSeparation is the radius, in drawing units, inside which two
// labels of the same name collapse into one.
const DefaultMinSeparation = 150.0

// Plan is the placement decision for one feature's label. Suppressed
// entries are returned too so the decision trail stays inspectable;
// renderers skip them.
type Plan struct {
	FeatureID  string
	Text       string
	Anchor     geo.Point
	Angle      float64
	FontSize   float64
	Suppressed bool
}

// placed is one registered anchor in the spatial registry.
type placed struct {
	name   string
	at     geo.Point
	bounds rtreego.Rect
}

func (p *placed) Bounds() rtreego.Rect { return p.bounds }

// registry tracks already-placed anchors per name. It lives for one Place
// call only, so repeated exports never leak state into each other.
type registry struct {
	tree *rtreego.Rtree
}

func newRegistry() *registry {
	return &registry{tree: rtreego.NewTree(2, 8, 16)}
}

// pointRect builds a degenerate query-safe rect; rtreego requires
// strictly positive edge lengths.
func pointRect(p geo.Point, half float64) rtreego.Rect {
	if half <= 0 {
		half = 1e-6
	}
	r, err := rtreego.NewRect(rtreego.Point{p.X - half, p.Y - half}, []float64{2 * half, 2 * half})
	if err != nil {
		// only reachable with non-finite coordinates; fall back to a unit
		// rect at the origin rather than panic inside an export
		r, _ = rtreego.NewRect(rtreego.Point{0, 0}, []float64{1, 1})
	}
	return r
}

func (r *registry) add(name string, at geo.Point) {
	r.tree.Insert(&placed{name: name, at: at, bounds: pointRect(at, 1e-6)})
}

// collides reports whether a same-named anchor sits strictly closer than
// minSeparation to at.
func (r *registry) collides(name string, at geo.Point, minSeparation float64) bool {
	for _, item := range r.tree.SearchIntersect(pointRect(at, minSeparation)) {
		p := item.(*placed)
		if p.name != name {
			continue
		}
		dx := p.at.X - at.X
		dy := p.at.Y - at.Y
		if dx*dx+dy*dy < minSeparation*minSeparation {
			return true
		}
	}
	return false
}

// Place computes the label plan for one export pass.
//
// Features are filtered to visible, named ones whose name display is on,
// then ordered by category priority (point count breaking ties, longer
// first). That order decides which of several nearby same-named labels
// wins; it is stable for a fixed input. A custom-positioned label is
// always placed and never registered, so it can neither vanish nor block
// an automatic placement elsewhere.
func Place(features []*feature.LineFeature, minSeparation float64) []Plan {
	candidates := make([]*feature.LineFeature, 0, len(features))
	for _, f := range features {
		if f.Visible && f.ShowName && f.Name != "" {
			candidates = append(candidates, f)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		ri := feature.PriorityRank(candidates[i].Category)
		rj := feature.PriorityRank(candidates[j].Category)
		if ri != rj {
			return ri < rj
		}
		return len(candidates[i].Geometry) > len(candidates[j].Geometry)
	})

	reg := newRegistry()
	plans := make([]Plan, 0, len(candidates))
	for _, f := range candidates {
		n := len(f.Geometry)
		if n == 0 {
			// no anchor to place; keep a suppressed entry so the plan
			// covers every candidate
			plans = append(plans, Plan{
				FeatureID:  f.ID,
				Text:       f.Name,
				FontSize:   f.EffectiveFontSize(),
				Suppressed: true,
			})
			continue
		}
		anchor := f.Geometry[n/2].Add(f.LabelOffset)
		plan := Plan{
			FeatureID: f.ID,
			Text:      f.Name,
			Anchor:    anchor,
			Angle:     AngleFor(f.Geometry, f.CustomAngle),
			FontSize:  f.EffectiveFontSize(),
		}
		switch {
		case f.HasCustomPosition():
			// manually placed: exempt from suppression in both directions
		case reg.collides(f.Name, anchor, minSeparation):
			plan.Suppressed = true
		default:
			reg.add(f.Name, anchor)
		}
		plans = append(plans, plan)
	}
	return plans
}
