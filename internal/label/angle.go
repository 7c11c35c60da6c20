package label

import (
	"math"

	"vicimap/internal/geo"
)

// AngleFor derives a label rotation in degrees from the polyline's local
// tangent around its midpoint sample. A custom angle, when present, is
// returned unmodified. Results always land in (-90, 90] so text is never
// upside down. Deterministic: identical inputs yield identical output,
// which the three renderers rely on.
func AngleFor(geometry []geo.Point, custom *float64) float64 {
	if custom != nil {
		return *custom
	}
	n := len(geometry)
	if n <= 1 {
		return 0
	}
	mid := n / 2
	// lookback/lookahead window: a tenth of the line capped at 3, but
	// never zero or short lines would degenerate to atan2(0,0)
	span := n / 10
	if span > 3 {
		span = 3
	}
	if span < 1 {
		span = 1
	}
	i := mid - span
	if i < 0 {
		i = 0
	}
	j := mid + span
	if j > n-1 {
		j = n - 1
	}
	p1, p2 := geometry[i], geometry[j]
	angle := math.Atan2(p2.Y-p1.Y, p2.X-p1.X) * 180 / math.Pi
	if angle > 90 {
		angle -= 180
	} else if angle <= -90 {
		angle += 180
	}
	return angle
}
