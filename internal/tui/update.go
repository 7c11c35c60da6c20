package tui

import (
	"fmt"
	"math"
	"os"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"vicimap/internal/feature"
	"vicimap/internal/geo"
	"vicimap/internal/label"
	"vicimap/internal/render"
)

// screenLayout is the terminal geometry shared by Update and View. Both
// must compute it identically or pointer hits drift off the map.
type screenLayout struct {
	sidebarWidth  int
	headerHeight  int
	footerHeight  int
	contentWidth  int
	contentHeight int
	mapW          int
	mapH          int
	mapOriginX    int
	mapOriginY    int
}

func (m Model) screenLayout() screenLayout {
	ly := screenLayout{headerHeight: 1, footerHeight: 2}
	if m.showSidebar {
		ly.sidebarWidth = 30
	}
	ly.contentHeight = m.height - ly.headerHeight - ly.footerHeight
	if ly.contentHeight < 4 {
		ly.contentHeight = 4
	}
	ly.contentWidth = max(10, m.width)
	ly.mapW = ly.contentWidth - ly.sidebarWidth - 1
	if ly.mapW < 10 {
		ly.mapW = 10
	}
	ly.mapH = ly.contentHeight
	ly.mapOriginX = ly.sidebarWidth
	if m.showSidebar {
		ly.mapOriginX++
	}
	ly.mapOriginY = ly.headerHeight
	return ly
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			ly := m.screenLayout()
			m.l.SetSize(ly.sidebarWidth-2, ly.contentHeight-2)
		}
	case tea.KeyMsg:
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.textEntry {
			return m.updateTextEntry(msg)
		}
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateTextEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.textEntry = false
		m.ta.Blur()
		m.status = "text cancelled"
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.ta.Value())
		if text == "" {
			m.status = "text: empty"
			return m, nil
		}
		id := fmt.Sprintf("label/%d", m.nextLabelID)
		m.nextLabelID++
		m.snap.Labels = append(m.snap.Labels, &feature.StandaloneLabel{
			ID:       id,
			Text:     text,
			Position: m.pendingText,
			FontSize: m.labelFontSize(),
			Visible:  true,
		})
		m.commit()
		m.textEntry = false
		m.ta.Blur()
		m.status = fmt.Sprintf("placed %q at (%.0f, %.0f)", text, m.pendingText.X, m.pendingText.Y)
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m Model) labelFontSize() float64 {
	if m.settings.DefaultFontSize > 0 {
		return m.settings.DefaultFontSize
	}
	return feature.DefaultFontSize
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.refreshSidebar()
			ly := m.screenLayout()
			m.l.SetSize(ly.sidebarWidth-2, ly.contentHeight-2)
		}
	case "m":
		m.enterMode((m.mode + 1) % 3)
	case "s":
		m.enterMode(modeSelection)
		m.subMode = subModeSelect
		m.status = "selection: select"
	case "d":
		m.enterMode(modeSelection)
		m.subMode = subModeDeselect
		m.status = "selection: deselect"
	case "g":
		m.enterMode(modeLabelEdit)
	case "t":
		m.enterMode(modeTextAdd)
	case "esc":
		m.sess = idleSession{}
		m.subMode = subModeNone
		m.active = nil
		m.selected = map[string]bool{}
		m.status = "cleared"
	case "v":
		m.toggleTargets(func(f *feature.LineFeature) {
			f.Visible = !f.Visible
		}, "visibility")
	case "n":
		m.toggleTargets(func(f *feature.LineFeature) {
			f.ShowName = !f.ShowName
		}, "labels")
	case "enter":
		if m.showSidebar {
			if it, ok := m.l.SelectedItem().(featureItem); ok {
				if f := m.findFeature(it.id); f != nil {
					f.Visible = !f.Visible
					m.commit()
					m.refreshSidebar()
					m.status = fmt.Sprintf("%s visible: %v", it.name, f.Visible)
				}
			}
		}
	case "[":
		m.rotateActive(-5)
	case "]":
		m.rotateActive(5)
	case "<", ",":
		m.resizeActive(-1)
	case ">", ".":
		m.resizeActive(1)
	case "backspace", "delete":
		m.deleteActive()
	case "u":
		if snap, ok := m.hist.Undo(); ok {
			m.snap = snap
			m.active = nil
			m.refreshSidebar()
			m.status = "undo"
		} else {
			m.status = "nothing to undo"
		}
	case "U":
		if snap, ok := m.hist.Redo(); ok {
			m.snap = snap
			m.active = nil
			m.refreshSidebar()
			m.status = "redo"
		} else {
			m.status = "nothing to redo"
		}
	case "e":
		m.exportSVG()
	case "x":
		m.exportDXF()
	case "a":
		m.showAttrs = !m.showAttrs
		if m.showAttrs {
			m.refreshAttrs()
		}
	case "+", "=":
		if m.zoom < 64 {
			m.zoom *= 1.2
			m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
		}
	case "-", "_":
		if m.zoom > 0.05 {
			m.zoom /= 1.2
			m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
		}
	case "h":
		m.helpVisible = !m.helpVisible
	case "up":
		m.offsetY--
	case "down":
		m.offsetY++
	case "left":
		m.offsetX -= 2
	case "right":
		m.offsetX += 2
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// enterMode switches the editor mode and drops state that belongs to the
// mode being left, so a stale rectangle or label selection never leaks
// into the next gesture.
func (m *Model) enterMode(mode editorMode) {
	if m.textEntry {
		m.textEntry = false
		m.ta.Blur()
	}
	m.sess = idleSession{}
	m.mode = mode
	switch mode {
	case modeSelection:
		m.active = nil
	case modeLabelEdit:
		m.subMode = subModeNone
		m.selected = map[string]bool{}
	case modeTextAdd:
		m.subMode = subModeNone
		m.active = nil
		m.selected = map[string]bool{}
	}
	m.status = "mode: " + mode.String()
}

// toggleTargets applies an edit to the rectangle selection, or to the
// highlighted sidebar feature when nothing is rectangle-selected.
func (m *Model) toggleTargets(apply func(*feature.LineFeature), what string) {
	n := 0
	if len(m.selected) > 0 {
		for id := range m.selected {
			if f := m.findFeature(id); f != nil {
				apply(f)
				n++
			}
		}
	} else if m.showSidebar {
		if it, ok := m.l.SelectedItem().(featureItem); ok {
			if f := m.findFeature(it.id); f != nil {
				apply(f)
				n++
			}
		}
	}
	if n == 0 {
		m.status = "no features selected"
		return
	}
	m.commit()
	m.refreshSidebar()
	m.status = fmt.Sprintf("toggled %s on %d feature(s)", what, n)
}

func (m *Model) rotateActive(delta float64) {
	if m.active == nil {
		m.status = "no label selected"
		return
	}
	if m.active.standalone {
		if l := m.findLabel(m.active.id); l != nil {
			l.Angle = normalizeAngle(l.Angle + delta)
			m.commit()
			m.status = fmt.Sprintf("angle: %.1f", l.Angle)
		}
		return
	}
	if f := m.findFeature(m.active.id); f != nil {
		a := normalizeAngle(label.AngleFor(f.Geometry, f.CustomAngle) + delta)
		f.CustomAngle = &a
		m.commit()
		m.status = fmt.Sprintf("angle: %.1f", a)
	}
}

func (m *Model) resizeActive(delta float64) {
	if m.active == nil {
		m.status = "no label selected"
		return
	}
	if m.active.standalone {
		if l := m.findLabel(m.active.id); l != nil {
			l.FontSize = math.Max(1, l.FontSize+delta)
			m.commit()
			m.status = fmt.Sprintf("font: %.0f", l.FontSize)
		}
		return
	}
	if f := m.findFeature(m.active.id); f != nil {
		f.FontSize = math.Max(1, f.EffectiveFontSize()+delta)
		m.commit()
		m.status = fmt.Sprintf("font: %.0f", f.FontSize)
	}
}

// deleteActive removes the active standalone label. Feature labels are
// part of the feature; they hide via ShowName instead.
func (m *Model) deleteActive() {
	if m.active == nil || !m.active.standalone {
		return
	}
	for i, l := range m.snap.Labels {
		if l.ID == m.active.id {
			m.snap.Labels = append(m.snap.Labels[:i], m.snap.Labels[i+1:]...)
			m.commit()
			m.active = nil
			m.status = "label deleted"
			return
		}
	}
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ly := m.screenLayout()
	if m.showSidebar {
		m.l.SetSize(ly.sidebarWidth-2, ly.contentHeight-2)
	}

	cx, cy := msg.X, msg.Y
	inMap := cx >= ly.mapOriginX && cx < ly.mapOriginX+ly.mapW &&
		cy >= ly.mapOriginY && cy < ly.mapOriginY+ly.mapH
	var pt geo.Point
	var ptOK bool
	if inMap {
		m.hovering = true
		m.hoverCellX = cx - ly.mapOriginX
		m.hoverCellY = cy - ly.mapOriginY
		pt, ptOK = m.cellToDrawing(m.hoverCellX, m.hoverCellY, ly.mapW, ly.mapH)
		m.hoverPt, m.hoverOK = pt, ptOK
	} else {
		m.hovering = false
		m.hoverOK = false
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if m.zoom < 64 {
				m.zoom *= 1.1
			}
		case tea.MouseButtonWheelDown:
			if m.zoom > 0.05 {
				m.zoom /= 1.1
			}
		case tea.MouseButtonLeft:
			if ptOK {
				m.beginLeftPress(pt)
			}
		case tea.MouseButtonRight:
			if ptOK && m.mode == modeLabelEdit {
				m.beginRotate(pt)
			}
		}
	case tea.MouseActionMotion:
		if ptOK {
			m.moveSession(pt)
		} else if _, idle := m.sess.(idleSession); !idle {
			// leaving the canvas ends the session like a release
			m.endSession()
		}
	case tea.MouseActionRelease:
		m.endSession()
	}
	return m, nil
}

func (m *Model) beginLeftPress(pt geo.Point) {
	switch m.mode {
	case modeTextAdd:
		m.pendingText = pt
		m.textEntry = true
		m.ta.SetValue("")
		m.ta.Focus()
		m.status = fmt.Sprintf("text at (%.0f, %.0f)", pt.X, pt.Y)
	case modeLabelEdit:
		ref, _, ok := m.hitLabel(pt)
		if !ok {
			m.active = nil
			m.status = "no label there"
			return
		}
		m.active = &ref
		m.sess = draggingLabelSession{
			ref:          ref,
			startPointer: pt,
			originOffset: m.labelOrigin(ref),
		}
		m.status = "dragging " + ref.id
	case modeSelection:
		if m.subMode == subModeNone {
			m.status = "press s or d to choose a selection action"
			return
		}
		m.sess = drawingSelectionSession{start: pt, current: pt}
	}
}

// labelOrigin returns the value the drag mutates: the feature's label
// offset, or the standalone label's position.
func (m *Model) labelOrigin(ref labelRef) geo.Point {
	if ref.standalone {
		if l := m.findLabel(ref.id); l != nil {
			return l.Position
		}
		return geo.Point{}
	}
	if f := m.findFeature(ref.id); f != nil {
		return f.LabelOffset
	}
	return geo.Point{}
}

func (m *Model) beginRotate(pt geo.Point) {
	ref, anchor, ok := m.hitLabel(pt)
	if !ok {
		return
	}
	m.active = &ref
	origin := 0.0
	if ref.standalone {
		if l := m.findLabel(ref.id); l != nil {
			origin = l.Angle
		}
	} else if f := m.findFeature(ref.id); f != nil {
		origin = label.AngleFor(f.Geometry, f.CustomAngle)
	}
	m.sess = rotatingSession{
		ref:          ref,
		anchor:       anchor,
		originAngle:  origin,
		pointerAngle: bearing(anchor, pt),
	}
	m.status = "rotating " + ref.id
}

// moveSession recomputes the session's subject from its press-time
// origin, so motion is stateless and a dropped event never skews the
// result.
func (m *Model) moveSession(pt geo.Point) {
	switch sess := m.sess.(type) {
	case draggingLabelSession:
		delta := pt.Sub(sess.startPointer)
		target := sess.originOffset.Add(delta)
		if sess.ref.standalone {
			if l := m.findLabel(sess.ref.id); l != nil {
				l.Position = target
			}
		} else if f := m.findFeature(sess.ref.id); f != nil {
			f.LabelOffset = target
		}
	case rotatingSession:
		delta := bearing(sess.anchor, pt) - sess.pointerAngle
		a := normalizeAngle(sess.originAngle + delta)
		if sess.ref.standalone {
			if l := m.findLabel(sess.ref.id); l != nil {
				l.Angle = a
			}
		} else if f := m.findFeature(sess.ref.id); f != nil {
			f.CustomAngle = &a
		}
	case drawingSelectionSession:
		sess.current = pt
		m.sess = sess
	}
}

// endSession commits finished gestures. This is the single history
// write per interaction.
func (m *Model) endSession() {
	switch sess := m.sess.(type) {
	case draggingLabelSession:
		m.commit()
		m.status = "moved " + sess.ref.id
	case rotatingSession:
		m.commit()
		m.status = "rotated " + sess.ref.id
	case drawingSelectionSession:
		n := m.applySelection(sess)
		m.status = fmt.Sprintf("%s: %d feature(s), %d selected", m.subMode, n, len(m.selected))
	default:
		return
	}
	m.sess = idleSession{}
}

// applySelection adds or removes every feature with a vertex inside the
// rectangle, depending on the sub-mode.
func (m *Model) applySelection(sess drawingSelectionSession) int {
	minX := math.Min(sess.start.X, sess.current.X)
	maxX := math.Max(sess.start.X, sess.current.X)
	minY := math.Min(sess.start.Y, sess.current.Y)
	maxY := math.Max(sess.start.Y, sess.current.Y)
	n := 0
	for _, f := range m.snap.Features {
		hit := false
		for _, p := range f.Geometry {
			if p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY {
				hit = true
				break
			}
		}
		if !hit {
			continue
		}
		n++
		if m.subMode == subModeDeselect {
			delete(m.selected, f.ID)
		} else {
			m.selected[f.ID] = true
		}
	}
	return n
}

func (m *Model) exportSVG() {
	sc := render.BuildScene(m.snap, m.currentPlan())
	f, err := os.Create(m.settings.SVGPath)
	if err != nil {
		m.status = "svg: " + err.Error()
		return
	}
	defer f.Close()
	if err := render.WriteSVG(f, sc, int(m.settings.DrawingWidth), int(m.settings.DrawingHeight), m.styles); err != nil {
		m.status = "svg: " + err.Error()
		return
	}
	m.status = "wrote " + m.settings.SVGPath
}

func (m *Model) exportDXF() {
	sc := render.BuildScene(m.snap, m.currentPlan())
	f, err := os.Create(m.settings.DXFPath)
	if err != nil {
		m.status = "dxf: " + err.Error()
		return
	}
	defer f.Close()
	if err := render.WriteDXF(f, sc, m.styles); err != nil {
		m.status = "dxf: " + err.Error()
		return
	}
	m.status = "wrote " + m.settings.DXFPath
}

// bearing is the pointer's angle about an anchor, in degrees, measured
// in drawing space where Y grows downward.
func bearing(anchor, pt geo.Point) float64 {
	d := pt.Sub(anchor)
	return math.Atan2(d.Y, d.X) * 180 / math.Pi
}

// normalizeAngle folds an angle into the upright range (-90, 90].
func normalizeAngle(a float64) float64 {
	for a > 90 {
		a -= 180
	}
	for a <= -90 {
		a += 180
	}
	return a
}
