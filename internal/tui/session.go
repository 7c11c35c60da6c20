package tui

import "vicimap/internal/geo"

// editorMode is the top-level editing mode.
type editorMode int

const (
	modeSelection editorMode = iota
	modeLabelEdit
	modeTextAdd
)

func (m editorMode) String() string {
	switch m {
	case modeLabelEdit:
		return "label edit"
	case modeTextAdd:
		return "add text"
	default:
		return "selection"
	}
}

// selectionSubMode refines what a selection rectangle does.
type selectionSubMode int

const (
	subModeNone selectionSubMode = iota
	subModeSelect
	subModeDeselect
)

func (s selectionSubMode) String() string {
	switch s {
	case subModeSelect:
		return "select"
	case subModeDeselect:
		return "deselect"
	default:
		return "none"
	}
}

// labelRef identifies a draggable label: either a feature's name label or
// a standalone annotation.
type labelRef struct {
	standalone bool
	id         string
}

// interactionSession is the single modal pointer session. Exactly one
// variant is live at a time, which rules out the impossible flag
// combinations a pile of booleans would allow. Every variant keeps its
// press-time origin so pointer-move recomputes from session start rather
// than accumulating per-frame deltas.
type interactionSession interface{ session() }

type idleSession struct{}

type draggingLabelSession struct {
	ref          labelRef
	startPointer geo.Point // drawing space at press
	originOffset geo.Point // feature offset or standalone position at press
}

type rotatingSession struct {
	ref          labelRef
	anchor       geo.Point
	originAngle  float64
	pointerAngle float64 // pointer bearing from anchor at press, degrees
}

type drawingSelectionSession struct {
	start   geo.Point
	current geo.Point
}

func (idleSession) session()             {}
func (draggingLabelSession) session()    {}
func (rotatingSession) session()         {}
func (drawingSelectionSession) session() {}
