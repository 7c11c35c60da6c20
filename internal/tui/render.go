package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vicimap/internal/feature"
	"vicimap/internal/geo"
	"vicimap/internal/label"
	"vicimap/internal/render"
)

// drawingToMicro maps a drawing-space point into the 2x4 microgrid,
// applying zoom about the viewport center and the pan offset. Drawing
// space is already Y-down, so no flip happens here.
func (m Model) drawingToMicro(p geo.Point, w, h int) (int, int) {
	nx := p.X / m.settings.DrawingWidth
	ny := p.Y / m.settings.DrawingHeight
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int(zy*float64(hMic-1)) + m.offsetY*4
	return sx, sy
}

// cellToDrawing is the inverse of drawingToMicro at cell resolution. It
// is what makes pointer gestures land where the cursor is.
func (m Model) cellToDrawing(cx, cy, w, h int) (geo.Point, bool) {
	if w <= 1 || h <= 1 || m.zoom == 0 {
		return geo.Point{}, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := float64(cy-m.offsetY) / float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	return geo.Point{
		X: nx * m.settings.DrawingWidth,
		Y: ny * m.settings.DrawingHeight,
	}, true
}

// currentPlan runs label placement over the working snapshot. Placement
// is pure, so recomputing per frame keeps the preview honest after every
// edit without any cache invalidation.
func (m Model) currentPlan() []label.Plan {
	return label.Place(m.snap.Features, m.settings.MinSeparation)
}

// groupOrder is the compositing order; later groups draw on top.
var groupOrder = []feature.Group{
	feature.GroupOther,
	feature.GroupWaterway,
	feature.GroupRailway,
	feature.GroupHighway,
}

func (m Model) renderMap(w, h int) string {
	plan := m.currentPlan()
	sc := render.BuildScene(m.snap, plan)

	// one braille layer per group so each keeps its stroke color
	layers := map[feature.Group]*brailleBuf{}
	for _, g := range groupOrder {
		layers[g] = newBrailleBuf(w, h)
	}
	for _, op := range sc.Lines {
		buf := layers[op.Group]
		if buf == nil {
			buf = layers[feature.GroupOther]
		}
		for _, seg := range render.Expand(op) {
			x0, y0 := m.drawingToMicro(seg.From, w, h)
			x1, y1 := m.drawingToMicro(seg.To, w, h)
			buf.drawLineMicro(x0, y0, x1, y1)
		}
	}

	// selection rectangle outline on its own layer
	var rectBuf *brailleBuf
	if sess, ok := m.sess.(drawingSelectionSession); ok {
		rectBuf = newBrailleBuf(w, h)
		x0, y0 := m.drawingToMicro(sess.start, w, h)
		x1, y1 := m.drawingToMicro(sess.current, w, h)
		rectBuf.drawLineMicro(x0, y0, x1, y0)
		rectBuf.drawLineMicro(x1, y0, x1, y1)
		rectBuf.drawLineMicro(x1, y1, x0, y1)
		rectBuf.drawLineMicro(x0, y1, x0, y0)
	}

	grid := make([][]rune, h)
	color := make([][]lipgloss.Style, h)
	for y := 0; y < h; y++ {
		grid[y] = make([]rune, w)
		color[y] = make([]lipgloss.Style, w)
		for x := 0; x < w; x++ {
			grid[y][x] = ' '
		}
	}
	put := func(x, y int, r rune, st lipgloss.Style) {
		if y < 0 || y >= h || x < 0 || x >= w {
			return
		}
		grid[y][x] = r
		color[y][x] = st
	}

	for _, g := range groupOrder {
		st := groupStyle(m.styles.For(g))
		buf := layers[g]
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if r := buf.cell(x, y); r != ' ' {
					put(x, y, r, st)
				}
			}
		}
	}
	if rectBuf != nil {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if r := rectBuf.cell(x, y); r != ' ' {
					put(x, y, r, selectionRectStyle)
				}
			}
		}
	}

	// labels on top, centered on their anchors; the terminal cannot
	// rotate text, so angles only show in exports and the status line
	labelStyle := groupStyle(m.styles.Labels)
	drawText := func(text string, at geo.Point, st lipgloss.Style) {
		mx, my := m.drawingToMicro(at, w, h)
		cx, cy := mx/2, my/4
		start := cx - len([]rune(text))/2
		for i, r := range []rune(text) {
			put(start+i, cy, r, st)
		}
	}
	for _, p := range plan {
		if p.Suppressed {
			continue
		}
		st := labelStyle
		if m.active != nil && !m.active.standalone && m.active.id == p.FeatureID {
			st = activeLabelStyle
		}
		drawText(p.Text, p.Anchor, st)
	}
	for _, l := range m.snap.Labels {
		if !l.Visible {
			continue
		}
		st := labelStyle
		if m.active != nil && m.active.standalone && m.active.id == l.ID {
			st = activeLabelStyle
		}
		drawText(l.Text, l.Position, st)
	}

	lines := make([]string, h)
	for y := 0; y < h; y++ {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			r := grid[y][x]
			if r == ' ' {
				sb.WriteRune(' ')
				continue
			}
			sb.WriteString(color[y][x].Render(string(r)))
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

type anchorRef struct {
	ref labelRef
	at  geo.Point
}

// labelAnchors lists every draggable label with its current anchor.
func (m Model) labelAnchors(plan []label.Plan) []anchorRef {
	var out []anchorRef
	for _, p := range plan {
		if p.Suppressed {
			continue
		}
		out = append(out, anchorRef{labelRef{id: p.FeatureID}, p.Anchor})
	}
	for _, l := range m.snap.Labels {
		if !l.Visible {
			continue
		}
		out = append(out, anchorRef{labelRef{standalone: true, id: l.ID}, l.Position})
	}
	return out
}

// hitLabel finds the nearest label anchor within tolerance of a
// drawing-space point. Tolerance shrinks with zoom so picking stays
// roughly constant on screen.
func (m Model) hitLabel(at geo.Point) (labelRef, geo.Point, bool) {
	tol := 20.0 / m.zoom
	best := tol * tol
	var ref labelRef
	var anchor geo.Point
	found := false
	for _, c := range m.labelAnchors(m.currentPlan()) {
		d := c.at.Sub(at)
		dist := d.X*d.X + d.Y*d.Y
		if dist < best {
			best = dist
			ref = c.ref
			anchor = c.at
			found = true
		}
	}
	return ref, anchor, found
}
